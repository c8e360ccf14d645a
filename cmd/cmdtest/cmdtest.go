// Package cmdtest runs commands in tests.
package cmdtest

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// Run executes the command with the given arguments and returns its
// combined output.
func Run(t *testing.T, cmd *cobra.Command, args ...string) []byte {
	t.Helper()
	var got bytes.Buffer
	cmd.SetOut(&got)
	cmd.SetErr(&got)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute() = %v, want nil", err)
	}
	return got.Bytes()
}
