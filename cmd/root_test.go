package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func executeForTest(args ...string) (string, error) {
	return executeForTestWithInput("", args...)
}

func executeForTestWithInput(input string, args ...string) (string, error) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	rootCmd.SetArgs(nil)
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := executeForTest("--help")
	if err != nil {
		t.Fatalf("help command error: %v", err)
	}
	for _, name := range []string{"download", "databases", "tables", "token", "history", "version"} {
		if !strings.Contains(out, name) {
			t.Fatalf("help output missing %s command: %s", name, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeForTest("version")
	if err != nil {
		t.Fatalf("version command error: %v", err)
	}
	if !strings.Contains(out, "acfetch") {
		t.Fatalf("version output missing binary name: %s", out)
	}
	if !strings.Contains(out, "commit:") {
		t.Fatalf("version output missing commit field: %s", out)
	}
}
