package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `# ballworld overrides
BALLWORLD_TEST_FPS=30
export BALLWORLD_TEST_SCENARIO="scenarios/corner.yaml"
BALLWORLD_TEST_SOUND='true'
not a pair
=novalue
BALLWORLD_TEST_PRESET=from-file
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("BALLWORLD_TEST_PRESET", "from-env")
	for _, k := range []string{"BALLWORLD_TEST_FPS", "BALLWORLD_TEST_SCENARIO", "BALLWORLD_TEST_SOUND"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	require.NoError(t, Load(path))

	assert.Equal(t, 30, Int("BALLWORLD_TEST_FPS", 0))
	assert.Equal(t, "scenarios/corner.yaml", String("BALLWORLD_TEST_SCENARIO", ""))
	assert.True(t, Bool("BALLWORLD_TEST_SOUND", false))
	assert.Equal(t, "from-env", os.Getenv("BALLWORLD_TEST_PRESET"))
}

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "nope.env")))
}

func TestTypedDefaults(t *testing.T) {
	t.Setenv("BALLWORLD_TEST_BAD", "x")
	assert.Equal(t, 7, Int("BALLWORLD_TEST_BAD", 7))
	assert.Equal(t, 1.5, Float("BALLWORLD_TEST_BAD", 1.5))
	assert.False(t, Bool("BALLWORLD_TEST_BAD", false))
	assert.Equal(t, "d", String("BALLWORLD_TEST_UNSET_KEY", "d"))

	t.Setenv("BALLWORLD_TEST_FLOAT", "0.25")
	assert.Equal(t, 0.25, Float("BALLWORLD_TEST_FLOAT", 1))
}
