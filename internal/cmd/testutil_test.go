package cmd

import (
	"bytes"
	"testing"
)

// runCommand executes the CLI with the given args and returns captured
// stdout together with the command error.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app := NewApp()
	root := NewRootCmd(app)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}
