package main

import (
	"bytes"
	"strings"
	"testing"
)

func runRoot(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCommand()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootRewritesMatchingLines(t *testing.T) {
	out, _, err := runRoot(t,
		"2024-01-15 INFO Hello\n2024-01-16 WARN Disk\n",
		"{date} {level} {message}", "{level}: {message}")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "INFO: Hello\nWARN: Disk\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRootDropsNonMatchingLinesSilently(t *testing.T) {
	out, errOut, err := runRoot(t,
		"no match at all\nstill nothing\n",
		"{n:d} items", "{n}")
	if err != nil {
		t.Fatalf("run with only non-matching lines must succeed, got %v", err)
	}
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
	if errOut != "" {
		t.Errorf("stderr = %q, want empty", errOut)
	}
}

func TestRootTemplateCompileFailure(t *testing.T) {
	_, _, err := runRoot(t, "", "{bad", "{out}")
	if err == nil {
		t.Fatal("expected error for malformed input template")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runRoot(t, "", "version")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("output = %q, want version %s", out, version)
	}
}
