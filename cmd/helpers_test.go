package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	domainmocks "cleanup.dev/pkg/cleanup/internal/domain/mocks"
)

// useMockWorkflow swaps the package workflow for a mock for the duration of the test.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })
	t.Setenv("CLEANUP_LOG_FILENAME", filepath.Join(t.TempDir(), "cleanup.log"))

	return mockWorkflow
}

func newTestCmd(sub ...*cobra.Command) (*cobra.Command, *bytes.Buffer) {
	cmd := newRootCmd()
	for _, s := range sub {
		cmd.AddCommand(s)
	}

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}
