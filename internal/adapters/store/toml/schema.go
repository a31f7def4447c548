package toml

import (
	"fmt"

	"github.com/bnema/assistant-shell/internal/domain"
)

const currentSchemaVersion = 1

type stateSchema struct {
	Version       int                      `toml:"version"`
	Compatibility compatibilitySchema      `toml:"compatibility"`
	Project       map[string]projectSchema `toml:"project,omitempty"`
	Window        windowSchema             `toml:"window"`
}

type compatibilitySchema struct {
	TransparentFallback bool `toml:"transparent_fallback"`
	ZoomFix             bool `toml:"zoom_fix"`
}

type projectSchema struct {
	Path string `toml:"path"`
}

type windowSchema struct {
	Main mainWindowSchema `toml:"main"`
}

type mainWindowSchema struct {
	Height int  `toml:"height"`
	Show   bool `toml:"show"`
	Width  int  `toml:"width"`
}

func (s *stateSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s stateSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(cfg domain.Config) stateSchema {
	projects := make(map[string]projectSchema, len(cfg.Project))
	for id, project := range cfg.Project {
		projects[id] = projectSchema{Path: project.Path}
	}

	return stateSchema{
		Version: currentSchemaVersion,
		Compatibility: compatibilitySchema{
			TransparentFallback: cfg.Compatibility.TransparentFallback,
			ZoomFix:             cfg.Compatibility.ZoomFix,
		},
		Project: projects,
		Window: windowSchema{
			Main: mainWindowSchema{
				Height: cfg.Window.Main.Height,
				Show:   cfg.Window.Main.Show,
				Width:  cfg.Window.Main.Width,
			},
		},
	}
}

func fromSchema(file stateSchema) domain.Config {
	projects := make(map[string]domain.ProjectConfig, len(file.Project))
	for id, project := range file.Project {
		projects[id] = domain.ProjectConfig{Path: project.Path}
	}

	return domain.Config{
		Compatibility: domain.Compatibility{
			TransparentFallback: file.Compatibility.TransparentFallback,
			ZoomFix:             file.Compatibility.ZoomFix,
		},
		Project: projects,
		Window: domain.WindowConfig{
			Main: domain.MainWindowConfig{
				Height: file.Window.Main.Height,
				Show:   file.Window.Main.Show,
				Width:  file.Window.Main.Width,
			},
		},
	}
}
