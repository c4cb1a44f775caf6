package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := `
# comment
GRAIN_VARIANT=lightgrain
export GRAIN_MODEL="assets/models/deer.obj"
GRAIN_DEBUG='yes'
OPENAI_API_KEY=ignored
broken line
`
	got, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		KeyVariant: "lightgrain",
		KeyModel:   "assets/models/deer.obj",
		KeyDebug:   "yes",
	}, got)
}

func TestLoadKeepsProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GRAIN_VARIANT=sandbox\nGRAIN_MODEL=m.obj\n"), 0644))
	t.Setenv(KeyVariant, "grain")
	t.Setenv(KeyModel, "")
	require.NoError(t, os.Unsetenv(KeyModel))

	require.NoError(t, Load(path))
	assert.Equal(t, "grain", Get(KeyVariant))
	assert.Equal(t, "m.obj", Get(KeyModel))
}

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "nope.env")))
}

func TestBool(t *testing.T) {
	t.Setenv(KeyDebug, "On")
	assert.True(t, Bool(KeyDebug))
	t.Setenv(KeyDebug, "0")
	assert.False(t, Bool(KeyDebug))
}
