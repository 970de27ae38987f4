package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/complexkit/foundation/core/error"
	"github.com/msto63/complexkit/foundation/utils/complexx"
	"github.com/msto63/complexkit/pkg/core/version"
)

func writeConfig(t *testing.T, history bool, style string) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`[general]
log_level = "error"

[output]
style = %q

[history]
enabled = %t
path = %q
default_limit = 10
`, style, history, filepath.Join(dir, "history.db"))

	path := filepath.Join(dir, "complexkit.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	a := &app{openStore: openSQLiteStore}
	root := newRootCmd(a)
	defer a.teardown()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestCalcCommands(t *testing.T) {
	cfg := writeConfig(t, false, "plain")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"plus", "3,4", "1,-2"}, "(4.0 + 2.0i)"},
		{[]string{"add", "3,4", "1,-2"}, "(4.0 + 2.0i)"},
		{[]string{"minus", "(3.0 + 4.0i)", "(1.0 + -2.0i)"}, "(2.0 + 6.0i)"},
		{[]string{"times", "3,4", "1,-2"}, "(11.0 + -2.0i)"},
		{[]string{"times", "0,1", "0,1"}, "(-1.0 + 0.0i)"},
		{[]string{"div", "3,4", "1,-2"}, "(-1.0 + 2.0i)"},
		{[]string{"dividedBy", "1,0", "0,0"}, "(NaN + NaNi)"},
		{[]string{"times", "--", "-1,2", "3,4"}, "(-11.0 + 2.0i)"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, cfg, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.TrimSpace(out) != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestCalc_InvalidOperand(t *testing.T) {
	cfg := writeConfig(t, false, "plain")

	_, err := run(t, cfg, "plus", "3+4i", "1,1")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}

	if _, err := run(t, cfg, "plus", "1,1"); err == nil {
		t.Error("expected error for missing operand")
	}
}

func TestShow(t *testing.T) {
	cfg := writeConfig(t, false, "plain")

	out, err := run(t, cfg, "show", "3,4")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"real:      3.0",
		"imaginary: 4.0",
		fmt.Sprintf("hash:      %d", complexx.New(3, 4).Hash()),
		"string:    (3.0 + 4.0i)",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestStyledOutput(t *testing.T) {
	cfg := writeConfig(t, false, "styled")

	out, err := run(t, cfg, "plus", "3,4", "1,-2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "(4.0 + 2.0i)") {
		t.Errorf("styled output missing result:\n%s", out)
	}

	plain, err := run(t, cfg, "--style", "plain", "plus", "3,4", "1,-2")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(plain) != "(4.0 + 2.0i)" {
		t.Errorf("--style plain output = %q", plain)
	}

	if _, err := run(t, cfg, "--style", "fancy", "show", "1,1"); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("--style fancy error = %v, want INVALID_CONFIG", err)
	}
}

func TestHistory(t *testing.T) {
	cfg := writeConfig(t, true, "plain")

	for _, args := range [][]string{
		{"plus", "1,1", "2,2"},
		{"times", "0,1", "0,1"},
		{"plus", "5,0", "0,5"},
		{"minus", "9,9", "1,1"},
	} {
		if _, err := run(t, cfg, args...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}
	if _, err := run(t, cfg, "plus", "7,7", "7,7", "--no-history"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, cfg, "history")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("history has %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasSuffix(lines[0], "(9.0 + 9.0i) - (1.0 + 1.0i) = (8.0 + 8.0i)") {
		t.Errorf("newest entry = %q", lines[0])
	}

	out, err = run(t, cfg, "history", "--op", "+")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, " + ("); n != 2 {
		t.Errorf("--op plus returned %d entries:\n%s", n, out)
	}

	out, err = run(t, cfg, "history", "-n", "1")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 1 {
		t.Errorf("--limit 1 returned %d lines", n)
	}

	id := strings.Fields(lines[1])[0]
	out, err = run(t, cfg, "history", "get", id)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "(5.0 + 5.0i)" {
		t.Errorf("history get output = %q", out)
	}

	if _, err := run(t, cfg, "history", "get", "missing"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("history get missing error = %v, want NOT_FOUND", err)
	}

	out, err = run(t, cfg, "history", "clear")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "4 calculation(s) deleted" {
		t.Errorf("clear output = %q", out)
	}

	out, err = run(t, cfg, "history")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "no calculations recorded" {
		t.Errorf("history after clear = %q", out)
	}
}

func TestHistory_Disabled(t *testing.T) {
	cfg := writeConfig(t, false, "plain")

	_, err := run(t, cfg, "history")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidOperation) {
		t.Errorf("error = %v, want INVALID_OPERATION", err)
	}
}

func TestHistory_UnknownOp(t *testing.T) {
	cfg := writeConfig(t, true, "plain")

	if _, err := run(t, cfg, "history", "--op", "pow"); !mdwerror.HasCode(err, mdwerror.CodeInvalidOperation) {
		t.Errorf("error = %v, want INVALID_OPERATION", err)
	}
}

func TestStatus(t *testing.T) {
	cfg := writeConfig(t, true, "plain")
	if _, err := run(t, cfg, "plus", "1,1", "1,1"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, cfg, "status")
	if err != nil {
		t.Fatalf("status error: %v\n%s", err, out)
	}
	for _, want := range []string{
		"[+] arithmetic   identities hold",
		"[+] config       " + cfg,
		"[+] history      1 calculation(s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}

	out, err = run(t, writeConfig(t, false, "plain"), "status")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "[ ] history      disabled") {
		t.Errorf("disabled history not reported as skipped:\n%s", out)
	}
}

func TestConfigNotFound(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "missing.toml"), "show", "1,1")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestVersion(t *testing.T) {
	// version must work even with a broken config path
	out, err := run(t, filepath.Join(t.TempDir(), "missing.toml"), "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, version.Short()) {
		t.Errorf("version output = %q", out)
	}
}
