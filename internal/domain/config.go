package domain

import (
	"strconv"
	"strings"
)

// Config is the persisted application state. DefaultConfig produces the
// first-run seed.
type Config struct {
	Compatibility Compatibility
	Project       map[string]ProjectConfig
	Window        WindowConfig
}

type Compatibility struct {
	TransparentFallback bool
	ZoomFix             bool
}

type ProjectConfig struct {
	Path string
}

type WindowConfig struct {
	Main MainWindowConfig
}

type MainWindowConfig struct {
	Height int
	Show   bool
	Width  int
}

func DefaultConfig(osRelease string) Config {
	major, ok := ReleaseMajor(osRelease)

	bounds := WindowMain.DefaultBounds()
	return Config{
		Compatibility: Compatibility{
			TransparentFallback: ok && major < 10,
			ZoomFix:             false,
		},
		Project: map[string]ProjectConfig{},
		Window: WindowConfig{
			Main: MainWindowConfig{
				Height: bounds.Height,
				Show:   true,
				Width:  bounds.Width,
			},
		},
	}
}

// ReleaseMajor returns the leading numeric component of an OS release string
// such as "10.0.19045" or "6.18.44-fc".
func ReleaseMajor(release string) (int, bool) {
	release = strings.TrimSpace(release)
	end := 0
	for end < len(release) && release[end] >= '0' && release[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	major, err := strconv.Atoi(release[:end])
	if err != nil {
		return 0, false
	}
	return major, true
}

func (c Config) MainBounds() Bounds {
	return Bounds{Width: c.Window.Main.Width, Height: c.Window.Main.Height}
}

// Clone returns a copy whose project map can be mutated independently.
func (c Config) Clone() Config {
	projects := make(map[string]ProjectConfig, len(c.Project))
	for id, project := range c.Project {
		projects[id] = project
	}
	c.Project = projects
	return c
}
