package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballworld.json")
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "Load must not create the file")
}

func TestLoadInvalidReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ballworld.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "ballworld.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`{"show_fps": true, "scenario": "corner.yaml"}`), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.True(t, p.ShowFPS)
	assert.Equal(t, "corner.yaml", p.Scenario)
	assert.Equal(t, 30, p.TargetFPS)
	assert.Equal(t, 1, p.Workers)

	p.Workers = 4
	require.NoError(t, Save(path, p))
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("BALLWORLD_TARGET_FPS", "60")
	t.Setenv("BALLWORLD_WORKERS", "8")
	t.Setenv("BALLWORLD_SOUND", "1")
	t.Setenv("BALLWORLD_SCENARIO", "fast.yaml")
	t.Setenv("BALLWORLD_SHOW_STATS", "false")
	t.Setenv("BALLWORLD_SHOW_LOG", "true")
	t.Setenv("BALLWORLD_FRAME_TIME", "0.25")

	p := Default()
	p.ApplyEnv()
	assert.Equal(t, 60, p.TargetFPS)
	assert.Equal(t, 8, p.Workers)
	assert.True(t, p.Sound)
	assert.Equal(t, "fast.yaml", p.Scenario)
	assert.False(t, p.ShowStats)
	assert.True(t, p.ShowLog)
	assert.Equal(t, 0.25, p.FrameTime)
}

func TestApplyEnvIgnoresNonPositiveFrameTime(t *testing.T) {
	for _, v := range []string{"0", "-1", "fast"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("BALLWORLD_FRAME_TIME", v)
			p := Default()
			p.FrameTime = 0.5
			p.ApplyEnv()
			assert.Equal(t, 0.5, p.FrameTime)
		})
	}
}
