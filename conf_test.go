package psyxml

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/Psychopath-H/psyxml/binding"
	"github.com/Psychopath-H/psyxml/config"
	"github.com/Psychopath-H/psyxml/logger"
)

func TestSetLogPathWithConf(t *testing.T) {
	if err := SetLogPathWithConf(); err == nil {
		t.Fatal("expected error when config not set")
	}
	dir := t.TempDir()
	config.Conf.Log["path"] = dir
	SetMode(DebugMode)
	defer func() {
		SetMode(TestMode)
		delete(config.Conf.Log, "path")
		DebugLogger = logger.Default()
	}()
	if err := SetLogPathWithConf(); err != nil {
		t.Fatal(err)
	}
	debugPrint("debug log routed to %s", dir)
	data, err := os.ReadFile(path.Join(dir, "default.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "debug log routed to") {
		t.Fatalf("default.log content = %s", data)
	}
}

func TestSetMaxBodyBytesWithConf(t *testing.T) {
	if err := SetMaxBodyBytesWithConf(); err == nil {
		t.Fatal("expected error when config not set")
	}
	config.Conf.Binding["maxBodyBytes"] = int64(1024)
	defer func() {
		delete(config.Conf.Binding, "maxBodyBytes")
		SetMaxBodyBytes(4 << 20)
	}()
	if err := SetMaxBodyBytesWithConf(); err != nil {
		t.Fatal(err)
	}
	if binding.MaxBodyBytes != 1024 {
		t.Fatalf("MaxBodyBytes = %d", binding.MaxBodyBytes)
	}
}

func TestSetRenderIndentWithConf(t *testing.T) {
	if err := SetRenderIndentWithConf(); err == nil {
		t.Fatal("expected error when config not set")
	}
	config.Conf.Render["indent"] = "  "
	defer func() {
		delete(config.Conf.Render, "indent")
		RenderIndent = ""
	}()
	if err := SetRenderIndentWithConf(); err != nil {
		t.Fatal(err)
	}
	if RenderIndent != "  " {
		t.Fatalf("RenderIndent = %q", RenderIndent)
	}
}
