package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, true, &buf)

	Info("test message", "key", "value")

	output := buf.String()
	// JSON output should contain braces
	if !strings.Contains(output, "{") {
		t.Errorf("Expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_VerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	if !Verbose {
		t.Error("Verbose flag should be true after Setup(true, ...)")
	}

	Debug("debug message")

	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Errorf("Debug message should appear in verbose mode, got: %s", output)
	}
}

func TestSetup_NonVerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	if Verbose {
		t.Error("Verbose flag should be false after Setup(false, ...)")
	}

	Debug("debug message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Errorf("Debug message should NOT appear in non-verbose mode, got: %s", output)
	}
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	Debug("debug test", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "debug test") {
		t.Errorf("Expected 'debug test' in output, got: %s", output)
	}
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Info("info test", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "info test") {
		t.Errorf("Expected 'info test' in output, got: %s", output)
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Warn("warn test", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "warn test") {
		t.Errorf("Expected 'warn test' in output, got: %s", output)
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Error("error test", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "error test") {
		t.Errorf("Expected 'error test' in output, got: %s", output)
	}
}

func TestNew_InjectedHandle(t *testing.T) {
	var buf bytes.Buffer
	log := New(false, false, &buf)

	log.Info("Run command", "cmd", "ip -4 addr show br0")
	log.Debug("hidden")

	output := buf.String()
	if !strings.Contains(output, "ip -4 addr show br0") {
		t.Errorf("Expected command in output, got: %s", output)
	}
	if strings.Contains(output, "hidden") {
		t.Errorf("Debug record should be filtered at info level, got: %s", output)
	}
}

func TestNew_DoesNotTouchProcessLogger(t *testing.T) {
	var global, local bytes.Buffer
	Setup(false, false, &global)

	New(false, false, &local).Info("local only")

	if strings.Contains(global.String(), "local only") {
		t.Errorf("injected handle leaked into process logger: %s", global.String())
	}
}

func TestOrDiscard(t *testing.T) {
	if OrDiscard(nil) == nil {
		t.Fatal("OrDiscard(nil) returned nil")
	}

	var buf bytes.Buffer
	l := New(false, false, &buf)
	if OrDiscard(l) != l {
		t.Error("OrDiscard should return the given logger")
	}
}

func TestUserOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	oldOut, oldErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	defer func() { Stdout, Stderr = oldOut, oldErr }()

	UserInfo("free ports: %d", 3)
	UserSuccess("allocated %d", 8000)
	UserWarning("bridge %s empty", "br0")
	UserError("failed: %v", "boom")

	if !strings.Contains(out.String(), "free ports: 3") || !strings.Contains(out.String(), "allocated 8000") {
		t.Errorf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "bridge br0 empty") || !strings.Contains(errOut.String(), "failed: boom") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if strings.Contains(out.String(), "boom") {
		t.Errorf("error output leaked to stdout: %q", out.String())
	}
}

func TestSetup_NilWriter(t *testing.T) {
	// Should not panic with nil writer
	Setup(false, false, nil)

	// Logger should still work (writes to stderr)
	if Logger == nil {
		t.Error("Logger should not be nil after Setup with nil writer")
	}
}
