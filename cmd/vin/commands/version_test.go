package commands

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/vin/cmd"
)

func TestVersionCommand_Output(t *testing.T) {
	isolate(t)

	res := execute(t, "", "version")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "vin version "+cmd.ResolvedVersion(), lines[0])
	assert.Contains(t, res.stdout, "commit:    "+cmd.Commit)
	assert.Contains(t, res.stdout, "built:     "+cmd.Date)
	assert.Contains(t, res.stdout, runtime.Version())
}

func TestVersionCommand_CommandMetadata(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotEmpty(t, versionCmd.Short)
	assert.NotEmpty(t, versionCmd.Long)
}
