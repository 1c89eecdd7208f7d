package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/vin/internal/config"
	"github.com/thoreinstein/vin/internal/errors"
)

func TestConfigInit(t *testing.T) {
	dir := isolate(t)
	want := filepath.Join(dir, "config", "vin", "config.yaml")

	res := execute(t, "", "config", "init")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, want)

	data, err := os.ReadFile(want)
	require.NoError(t, err)

	var written config.Config
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, *config.Default(), written)

	res = execute(t, "", "config", "init")
	require.Error(t, res.err, "second init should refuse to overwrite")

	res = execute(t, "", "config", "init", "--force")
	require.NoError(t, res.err)
}

func TestConfigSetGet(t *testing.T) {
	isolate(t)

	res := execute(t, "", "config", "set", "output_format", "json")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Set output_format = json")

	res = execute(t, "", "config", "get", "output_format")
	require.NoError(t, res.err)
	assert.Equal(t, "json\n", res.stdout)

	res = execute(t, "", "config", "set", "generate.count", "7")
	require.NoError(t, res.err)

	res = execute(t, "", "config", "list")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "output_format: json")
	assert.Contains(t, res.stdout, "count: 7")
}

func TestConfigSet_Invalid(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"config", "set", "colour", "red"}},
		{"bad format", []string{"config", "set", "output_format", "xml"}},
		{"zero count", []string{"config", "set", "generate.count", "0"}},
		{"non numeric seed", []string{"config", "set", "generate.seed", "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			res := execute(t, "", tt.args...)
			require.Error(t, res.err)
			assert.Equal(t, errors.ExitUser, errors.ExitCode(res.err))
		})
	}
}

func TestConfigGet(t *testing.T) {
	isolate(t)

	res := execute(t, "", "config", "get", "generate.count")
	require.NoError(t, res.err)
	assert.Equal(t, "1\n", res.stdout)

	res = execute(t, "", "config", "get", "nope")
	require.Error(t, res.err)
}

func TestConfigList_Default(t *testing.T) {
	isolate(t)

	res := execute(t, "", "config")
	require.NoError(t, res.err)

	var listed config.Config
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &listed))
	assert.Equal(t, *config.Default(), listed)
}

func TestConfigEdit(t *testing.T) {
	dir := isolate(t)

	res := execute(t, "", "config", "edit")
	require.Error(t, res.err, "edit without a config file should fail")

	require.NoError(t, execute(t, "", "config", "init").err)

	// The fake editor breaks the file so the post-edit validation trips.
	script := filepath.Join(dir, "fake-editor.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nprintf 'version: 1\\noutput_format: xml\\n' > \"$1\"\n"), 0o755))
	t.Setenv("EDITOR", script)

	res = execute(t, "", "config", "edit")
	require.Error(t, res.err)
	assert.True(t, errors.Is(res.err, errors.ErrInvalidConfig), "got %v", res.err)
}
