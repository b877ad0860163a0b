package logger

import (
	"bytes"
	"os"
	"path"
	"strings"
	"testing"
)

func TestJsonFormatter(t *testing.T) {
	f := &JsonFormatter{}
	got := f.Format(&LogFormatterParam{
		Level: LevelInfo,
		Msg:   "user login",
	})
	if !strings.Contains(got, `"level":"INFO"`) {
		t.Fatalf("level missing in %s", got)
	}
	if !strings.Contains(got, `"msg":"user login"`) {
		t.Fatalf("msg missing in %s", got)
	}
}

func TestTextFormatter(t *testing.T) {
	f := &TextFormatter{}
	got := f.Format(&LogFormatterParam{
		Level:        LevelError,
		Msg:          "boom",
		LoggerFields: Fields{"name": "psy"},
	})
	if !strings.Contains(got, "level=ERROR") {
		t.Fatalf("level missing in %s", got)
	}
	if !strings.Contains(got, "boom") {
		t.Fatalf("msg missing in %s", got)
	}
	if !strings.Contains(got, "fields=") {
		t.Fatalf("fields missing in %s", got)
	}
}

func TestPrintLevelGate(t *testing.T) {
	l := New()
	l.Level = LevelError
	l.Formatter = &JsonFormatter{}
	var buf bytes.Buffer
	if err := l.SetLogWriter(LevelAny, &buf); err != nil {
		t.Fatal(err)
	}
	if err := l.Debug("should not pass"); err == nil {
		t.Fatal("debug log below logger level should be rejected")
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected output: %s", buf.String())
	}
	if err := l.Error("should pass"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "should pass") {
		t.Fatalf("error log missing: %s", buf.String())
	}
}

func TestLevelAnyWriter(t *testing.T) {
	l := New()
	l.Level = LevelDebug
	l.Formatter = &JsonFormatter{}
	var buf bytes.Buffer
	if err := l.SetLogWriter(LevelAny, &buf); err != nil {
		t.Fatal(err)
	}
	l.Debug("one")
	l.Info("two")
	l.Error("three")
	out := buf.String()
	for _, want := range []string{"one", "two", "three"} {
		if !strings.Contains(out, want) {
			t.Fatalf("%s missing in %s", want, out)
		}
	}
}

func TestSetLogWriterOnFile(t *testing.T) {
	dir := t.TempDir()
	l := New()
	l.Level = LevelDebug
	l.Formatter = &TextFormatter{}
	l.SetLogWriterOnFile(dir, "info.log", LevelInfo)
	if err := l.Info("written to file"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path.Join(dir, "info.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Fatalf("file content = %s", data)
	}
}

func TestLogFileRollover(t *testing.T) {
	dir := t.TempDir()
	l := New()
	l.Level = LevelDebug
	l.Formatter = &TextFormatter{}
	l.LogFileSize = 1 //一条日志就超限，下一条要写进带时间戳的新文件
	l.SetLogPath(dir)
	if err := l.SetLogWriter(LevelAny); err != nil {
		t.Fatal(err)
	}
	if err := l.Info("first entry"); err != nil {
		t.Fatal(err)
	}
	if err := l.Info("second entry"); err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(path.Join(dir, "default.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(first), "first entry") || strings.Contains(string(first), "second entry") {
		t.Fatalf("default.log content = %s", first)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, e := range entries {
		name := e.Name()
		if name == "default.log" || !strings.HasSuffix(name, ".log") {
			continue
		}
		if !strings.HasPrefix(name, "default.") {
			t.Fatalf("unexpected log file %s", name)
		}
		data, err := os.ReadFile(path.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(data), "second entry") {
			found = true
		}
	}
	if !found {
		t.Fatal("second entry not written to a rollover file")
	}
}

func TestSetLogWriterNoPath(t *testing.T) {
	l := New()
	if err := l.SetLogWriter(LevelInfo); err == nil {
		t.Fatal("expected error when LogPath unset")
	}
}
