package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/firefly-engineering/vbmc-host/internal/errors"
	"github.com/firefly-engineering/vbmc-host/internal/logging"
	"github.com/firefly-engineering/vbmc-host/internal/system"
)

func newTestRunner(t *testing.T) (*Runner, *system.MockExecutor, *bytes.Buffer) {
	t.Helper()
	exec := system.NewMockExecutor()
	var buf bytes.Buffer
	r := New(WithExecutor(exec), WithLogger(logging.New(false, false, &buf)))
	return r, exec, &buf
}

func TestRender(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"ip", "-4", "addr", "show", "br0"}, "ip -4 addr show br0"},
		{[]string{"echo", "two words"}, "echo two words"},
		{[]string{"true"}, "true"},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := Render(tt.args); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestRun_Success(t *testing.T) {
	r, exec, logs := newTestRunner(t)
	exec.AddResponse("ipmitool", []byte("  Chassis Power is on  \n"), nil)

	out, err := r.Run(context.Background(), "ipmitool", "power", "status")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if string(out) != "  Chassis Power is on  \n" {
		t.Errorf("Run output = %q, want untrimmed stdout", out)
	}

	cmd, _ := exec.LastCommand()
	if cmd.Name != "ipmitool" || len(cmd.Args) != 2 || cmd.Args[1] != "status" {
		t.Errorf("executed %+v, want discrete argument vector", cmd)
	}

	if !strings.Contains(logs.String(), "Run command") || !strings.Contains(logs.String(), "ipmitool power status") {
		t.Errorf("missing info log line, got: %s", logs.String())
	}
	if strings.Contains(logs.String(), "level=ERROR") {
		t.Errorf("unexpected error log on success: %s", logs.String())
	}
}

func TestRun_Failure(t *testing.T) {
	r, exec, logs := newTestRunner(t)
	exec.AddFailure("virsh", 1, "error: failed to get domain 'vm1'\n")

	out, err := r.Run(context.Background(), "virsh", "start", "vm1")
	if err == nil {
		t.Fatal("Run should fail")
	}
	if out != nil {
		t.Errorf("output = %q, want nil on failure", out)
	}

	msg := err.Error()
	if !strings.Contains(msg, "virsh start vm1") {
		t.Errorf("error %q missing command text", msg)
	}
	if !strings.Contains(msg, "exit status 1") || !strings.Contains(msg, "failed to get domain") {
		t.Errorf("error %q missing cause", msg)
	}
	if !errors.Is(err, errors.ErrCommandFailed) {
		t.Error("error should match ErrCommandFailed")
	}
	if errors.GetExitCode(err) != errors.ExitCommandFailed {
		t.Errorf("exit code = %d, want %d", errors.GetExitCode(err), errors.ExitCommandFailed)
	}

	output := logs.String()
	if strings.Count(output, "Run command") < 1 || !strings.Contains(output, "level=ERROR") {
		t.Errorf("expected info and error log lines, got: %s", output)
	}
}

func TestRun_SpawnFailure(t *testing.T) {
	r, exec, _ := newTestRunner(t)
	exec.DefaultResponse = system.MockResponse{Err: stderrors.New("executable file not found in $PATH")}

	_, err := r.Run(context.Background(), "missing-tool", "--flag")
	if err == nil {
		t.Fatal("Run should fail")
	}
	if !strings.Contains(err.Error(), "missing-tool --flag") || !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestRun_EmptyCommand(t *testing.T) {
	r, exec, _ := newTestRunner(t)

	_, err := r.Run(context.Background())
	if !errors.Is(err, errors.ErrCommandFailed) {
		t.Errorf("err = %v, want CommandFailed", err)
	}
	if len(exec.Commands) != 0 {
		t.Errorf("executor called %d times, want 0", len(exec.Commands))
	}
}

func TestRunLine_SplitsWithoutShell(t *testing.T) {
	r, exec, _ := newTestRunner(t)
	exec.DefaultResponse = system.MockResponse{Output: []byte("ok")}

	if _, err := r.RunLine(context.Background(), `qemu-img create "disk one.qcow2" 10G`); err != nil {
		t.Fatalf("RunLine error: %v", err)
	}

	cmd, _ := exec.LastCommand()
	want := []string{"create", "disk one.qcow2", "10G"}
	if cmd.Name != "qemu-img" || len(cmd.Args) != len(want) {
		t.Fatalf("executed %+v", cmd)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, cmd.Args[i], want[i])
		}
	}
}

func TestRunLine_UnbalancedQuotes(t *testing.T) {
	r, exec, _ := newTestRunner(t)

	_, err := r.RunLine(context.Background(), `echo "unterminated`)
	if !errors.Is(err, errors.ErrCommandFailed) {
		t.Fatalf("err = %v, want CommandFailed", err)
	}
	if !strings.Contains(err.Error(), `echo "unterminated`) {
		t.Errorf("error %q missing command text", err.Error())
	}
	if len(exec.Commands) != 0 {
		t.Error("executor should not run on a parse failure")
	}
}

func TestRun_RealProcess(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithLogger(logging.New(false, false, &buf)))

	out, err := r.Run(context.Background(), "printf", "a\\nb\\n")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if string(out) != "a\nb\n" {
		t.Errorf("Run output = %q", out)
	}

	_, err = r.Run(context.Background(), "sh", "-c", "exit 7")
	if err == nil || !strings.Contains(err.Error(), "sh -c exit 7") || !strings.Contains(err.Error(), "exit status 7") {
		t.Errorf("err = %v", err)
	}
}

func TestNew_NilLoggerDiscards(t *testing.T) {
	var process bytes.Buffer
	old := logging.Logger
	logging.Logger = logging.New(false, false, &process)
	t.Cleanup(func() { logging.Logger = old })

	exec := system.NewMockExecutor()
	exec.AddFailure("false", 1, "")
	r := New(WithExecutor(exec), WithLogger(nil))

	if _, err := r.Run(context.Background(), "false"); err == nil {
		t.Fatal("expected error")
	}
	if process.Len() != 0 {
		t.Errorf("nil logger should discard, process logger got: %s", process.String())
	}
}
