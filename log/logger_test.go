package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelForVerbosity(t *testing.T) {
	type spec struct {
		v, vv bool
		exp   Level
	}
	specs := []spec{
		{false, false, Notice},
		{true, false, Info},
		{false, true, Debug},
		{true, true, Debug},
	}

	for index, s := range specs {
		if got := LevelForVerbosity(s.v, s.vv); got != s.exp {
			t.Fatalf("[spec %d] expected level %d; got %d", index, s.exp, got)
		}
	}
}

func TestSinkAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer func() {
		SetLevel(Notice)
		SetSink(os.Stdout)
	}()

	logger := New("test")

	SetLevel(Notice)
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug output to be filtered; got %q", buf.String())
	}

	logger.Error("shader failed")
	out := buf.String()
	if !strings.Contains(out, "[test]") || !strings.Contains(out, "shader failed") {
		t.Fatalf("expected module name and message in output; got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("frame %d", 1)
	if !strings.Contains(buf.String(), "frame 1") {
		t.Fatalf("expected debug output after raising verbosity; got %q", buf.String())
	}
}
