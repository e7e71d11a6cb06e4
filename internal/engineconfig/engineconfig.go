package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"

	"ballworld/internal/env"
	"ballworld/internal/logger"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/ballworld.json"

// Prefs holds front-end preferences (overlays, frame rate, scenario, sound). Persisted across runs.
// The simulated scene itself lives in the scenario file.
type Prefs struct {
	ShowFPS      bool    `json:"show_fps"`
	ShowMemAlloc bool    `json:"show_memalloc"`
	ShowStats    bool    `json:"show_stats"`
	ShowLog      bool    `json:"show_log"`
	TargetFPS    int     `json:"target_fps"`
	Scenario     string  `json:"scenario,omitempty"`
	FrameTime    float64 `json:"frame_time,omitempty"` // overrides the scenario's frame_time when positive
	Workers      int     `json:"workers"`
	Sound        bool    `json:"sound"`
	LogPath      string  `json:"log_path"`
}

// Default returns default preferences: stats overlay on, 30 frames per second, serial resolver, no sound.
func Default() Prefs {
	return Prefs{
		ShowStats: true,
		TargetFPS: 30,
		Workers:   1,
		LogPath:   logger.DefaultPath,
	}
}

// Load reads preferences from path. A missing or invalid file yields Default() and no file is created.
// Fields absent from the file keep their default values.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = Default().TargetFPS
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides p from BALLWORLD_* environment variables (see env.Load for .env files).
func (p *Prefs) ApplyEnv() {
	p.ShowFPS = env.Bool("BALLWORLD_SHOW_FPS", p.ShowFPS)
	p.ShowMemAlloc = env.Bool("BALLWORLD_SHOW_MEMALLOC", p.ShowMemAlloc)
	p.ShowStats = env.Bool("BALLWORLD_SHOW_STATS", p.ShowStats)
	if fps := env.Int("BALLWORLD_TARGET_FPS", p.TargetFPS); fps > 0 {
		p.TargetFPS = fps
	}
	p.ShowLog = env.Bool("BALLWORLD_SHOW_LOG", p.ShowLog)
	p.Scenario = env.String("BALLWORLD_SCENARIO", p.Scenario)
	if ft := env.Float("BALLWORLD_FRAME_TIME", p.FrameTime); ft > 0 {
		p.FrameTime = ft
	}
	p.Workers = env.Int("BALLWORLD_WORKERS", p.Workers)
	p.Sound = env.Bool("BALLWORLD_SOUND", p.Sound)
	p.LogPath = env.String("BALLWORLD_LOG", p.LogPath)
}
