// File: cmd/describe_test.go
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/smallworld/internal/config"
)

func TestDescribeCmd(t *testing.T) {
	out, err := executeCommand(t, "describe", "--size", "200", "--seed", "11")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "size: 200", lines[0])
	assert.Equal(t, "female_share: 0.5000", lines[1])
	assert.Contains(t, out, "age_group [18, 33): ")
	assert.Contains(t, out, "education Medium: ")
	assert.Contains(t, out, "partnership_status Single: ")
	// Default depression percentage is 92: 16 of 200 agents have it.
	assert.Contains(t, out, "pre_existing_depression: 0.0800\n")
	assert.Contains(t, out, "parenthood: 0.5500\n")
}

func TestDescribeCmd_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
population:
  size: 12
  gender_pct: 100
  age:
    groups: 2
    start: 20
    stop: 30
    probabilities: [1.0, 0.0]
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	out, err := executeCommand(t, "-c", path, "describe")
	require.NoError(t, err)

	assert.Contains(t, out, "size: 12\n")
	assert.Contains(t, out, "female_share: 0.0000\n")
	assert.Contains(t, out, "age_group [20, 25): 1.0000\n")
	assert.Contains(t, out, "age_group [25, 30): 0.0000\n")
}

func TestRunDescribe_InvalidProfile(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.SetPopulationSize(-1)

	var buf bytes.Buffer
	err := runDescribe(context.Background(), zap.NewNop(), cfg, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "population size must be positive")
	assert.Zero(t, buf.Len())
}
