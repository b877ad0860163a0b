package render

import (
	"net/http/httptest"
	"strings"
	"testing"
)

type renderUser struct {
	ID       int    `xml:"id"`
	Username string `xml:"username"`
}

func TestXMLRenderStruct(t *testing.T) {
	w := httptest.NewRecorder()
	r := &XML{Data: renderUser{ID: 1, Username: "psy"}}
	if err := r.RenderData(w, 200); err != nil {
		t.Fatal(err)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/xml" {
		t.Fatalf("content type = %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<username>psy</username>") {
		t.Fatalf("body = %s", body)
	}
}

func TestXMLRenderIndent(t *testing.T) {
	w := httptest.NewRecorder()
	r := &XML{Data: renderUser{ID: 1, Username: "psy"}, Indent: "  "}
	if err := r.RenderData(w, 200); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(w.Body.String(), "\n  <id>1</id>") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestXMLRenderMap(t *testing.T) {
	w := httptest.NewRecorder()
	r := &XML{Data: map[string]any{"message": "pong"}}
	if err := r.RenderData(w, 200); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(w.Body.String(), "<message>pong</message>") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestXMLRenderFailure(t *testing.T) {
	w := httptest.NewRecorder()
	//encoding/xml不支持编码map[string]string，应该报错且响应原封不动
	r := &XML{Data: map[string]string{"k": "v"}}
	if err := r.RenderData(w, 200); err == nil {
		t.Fatal("expected marshal error")
	}
	if w.Body.Len() != 0 {
		t.Fatalf("body written on failure: %s", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "" {
		t.Fatalf("content type written on failure: %q", ct)
	}
}

func TestJSONRender(t *testing.T) {
	w := httptest.NewRecorder()
	r := &JSON{Data: map[string]any{"message": "pong"}}
	if err := r.RenderData(w, 200); err != nil {
		t.Fatal(err)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), `"message":"pong"`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestDataRender(t *testing.T) {
	w := httptest.NewRecorder()
	r := Data{ContentType: "text/plain; charset=utf-8", Data: []byte("hello")}
	if err := r.RenderData(w, 400); err != nil {
		t.Fatal(err)
	}
	if w.Code != 400 {
		t.Fatalf("code = %d", w.Code)
	}
	if w.Body.String() != "hello" {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestRedirect(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r := Redirect{Code: 302, Request: req, Location: "/ping"}
	if err := r.RenderData(w, 302); err != nil {
		t.Fatal(err)
	}
	if loc := w.Header().Get("Location"); loc != "/ping" {
		t.Fatalf("location = %q", loc)
	}
}
