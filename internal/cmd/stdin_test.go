package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestResolve_Stdin(t *testing.T) {
	app := NewApp()
	root := NewRootCmd(app)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader("2021-01-01||+1d\n\n2021-01-01||+2d\n"))
	root.SetArgs([]string{"resolve", "-", "--tz", "utc"})

	if err := root.Execute(); err != nil {
		t.Fatalf("resolve - error = %v", err)
	}

	lines := strings.Fields(out.String())
	want := []string{"2021-01-02T00:00:00Z", "2021-01-03T00:00:00Z"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %v", len(lines), lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestResolve_StdinPipedFailsFast(t *testing.T) {
	app := NewApp()
	root := NewRootCmd(app)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader("now+1x\n2021-01-01||+1d\n"))
	root.SetArgs([]string{"resolve", "-", "--tz", "utc"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for invalid piped expression")
	}
	if strings.Contains(out.String(), "2021-01-02") {
		t.Fatalf("no output should follow a failed line, got %q", out.String())
	}
}

func TestVersion(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "datemath dev") {
		t.Fatalf("version output = %q", out)
	}
}
