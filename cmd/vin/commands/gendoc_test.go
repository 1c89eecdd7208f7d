package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenDoc_Markdown(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "docs")

	res := execute(t, "", "gen-doc", "--dir", out)
	require.NoError(t, res.err)

	data, err := os.ReadFile(filepath.Join(out, "vin_validate.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `title: "vin validate"`)
	assert.Contains(t, string(data), "/docs/reference/vin/")
}

func TestGenDoc_Man(t *testing.T) {
	dir := isolate(t)
	out := filepath.Join(dir, "man")

	res := execute(t, "", "gen-doc", "--dir", out, "--format", "man")
	require.NoError(t, res.err)
	assert.FileExists(t, filepath.Join(out, "vin-generate.1"))
}

func TestGenDoc_Errors(t *testing.T) {
	isolate(t)

	res := execute(t, "", "gen-doc")
	require.Error(t, res.err)

	res = execute(t, "", "gen-doc", "--dir", t.TempDir(), "--format", "html")
	require.Error(t, res.err)
}

func TestFilePrepender(t *testing.T) {
	got := filePrepender("docs/vin_config_set.md")
	assert.Contains(t, got, `title: "vin config set"`)
}

func TestLinkHandler(t *testing.T) {
	assert.Equal(t, "/docs/reference/vin_generate/", linkHandler("vin_generate.md"))
}
