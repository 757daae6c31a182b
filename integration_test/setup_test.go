package integration_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

const (
	TestTimeout      = 60 * time.Second
	ShortTestTimeout = 10 * time.Second
)

// setupTestContext creates a context bounded by timeout
func setupTestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// buildCLIBinary compiles cmd/mcp-spaces into a temp dir
func buildCLIBinary(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	ctx, cancel := setupTestContext(TestTimeout)
	defer cancel()

	binaryPath := filepath.Join(t.TempDir(), "mcp-spaces-test")
	cmd := exec.CommandContext(ctx, "go", "build", "-o", binaryPath, "../cmd/mcp-spaces")
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build CLI binary: %v\nOutput: %s", err, output)
	}

	return binaryPath
}

// cleanEnv drops MCP_SPACES_* variables inherited from the caller
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if len(kv) >= len("MCP_SPACES_") && kv[:len("MCP_SPACES_")] == "MCP_SPACES_" {
			continue
		}
		env = append(env, kv)
	}
	return env
}
