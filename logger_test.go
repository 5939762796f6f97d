package mdplain

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSetLogger(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	var buf bytes.Buffer
	SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))

	if _, err := Process(context.Background(), "**hello**", WithMode(ModeAST)); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "processed document") || !strings.Contains(out, "mode=ast") {
		t.Errorf("debug log missing: %q", out)
	}

	// nil 丢弃日志，Process 仍可正常使用
	SetLogger(nil)
	buf.Reset()
	if _, err := Process(context.Background(), "text"); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("discarded logger wrote %q", buf.String())
	}
	if Logger == nil {
		t.Error("SetLogger(nil) left Logger nil")
	}
}
