package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type configView struct {
	StatePath     string                 `json:"state_path" toml:"state_path" yaml:"state_path"`
	Compatibility compatibilityView      `json:"compatibility" toml:"compatibility" yaml:"compatibility"`
	Project       map[string]projectView `json:"project" toml:"project,omitempty" yaml:"project,omitempty"`
	Window        windowView             `json:"window" toml:"window" yaml:"window"`
}

type compatibilityView struct {
	TransparentFallback bool `json:"transparent_fallback" toml:"transparent_fallback" yaml:"transparent_fallback"`
	ZoomFix             bool `json:"zoom_fix" toml:"zoom_fix" yaml:"zoom_fix"`
}

type projectView struct {
	Path string `json:"path" toml:"path" yaml:"path"`
}

type windowView struct {
	Main mainWindowView `json:"main" toml:"main" yaml:"main"`
}

type mainWindowView struct {
	Height int  `json:"height" toml:"height" yaml:"height"`
	Show   bool `json:"show" toml:"show" yaml:"show"`
	Width  int  `json:"width" toml:"width" yaml:"width"`
}

func newConfigView(statePath string, cfg domain.Config) configView {
	projects := make(map[string]projectView, len(cfg.Project))
	for id, project := range cfg.Project {
		projects[id] = projectView{Path: project.Path}
	}

	return configView{
		StatePath: statePath,
		Compatibility: compatibilityView{
			TransparentFallback: cfg.Compatibility.TransparentFallback,
			ZoomFix:             cfg.Compatibility.ZoomFix,
		},
		Project: projects,
		Window: windowView{Main: mainWindowView{
			Height: cfg.Window.Main.Height,
			Show:   cfg.Window.Main.Show,
			Width:  cfg.Window.Main.Width,
		}},
	}
}

func writeConfigView(w io.Writer, format string, view configView) error {
	switch strings.ToLower(format) {
	case "toml", "":
		return toml.NewEncoder(w).Encode(view)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	default:
		return fmt.Errorf("unsupported format %q (want toml, yaml or json)", format)
	}
}

func newConfigCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit persisted shell settings",
	}

	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigInitCmd(app),
		newConfigWindowCmd(app),
		newConfigZoomFixCmd(app),
		newConfigProjectCmd(app),
		newConfigAPIKeyCmd(app),
	)

	return cmd
}

func newConfigShowCmd(app *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the persisted settings, seeding defaults on first run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.config.Get(cmd.Context())
			if err != nil {
				return err
			}
			return writeConfigView(cmd.OutOrStdout(), format, newConfigView(app.statePath, cfg))
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "output format: toml, yaml or json")
	return cmd
}

func newConfigInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if force {
				if _, err := app.config.Reset(cmd.Context()); err != nil {
					return err
				}
				_, err := fmt.Fprintf(out, "reset settings at %s\n", app.statePath)
				return err
			}

			_, seeded, err := app.config.Seed(cmd.Context())
			if err != nil {
				return err
			}
			if !seeded {
				_, err = fmt.Fprintf(out, "settings already exist at %s (use --force to reset)\n", app.statePath)
				return err
			}
			_, err = fmt.Fprintf(out, "wrote default settings to %s\n", app.statePath)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing settings with defaults")
	return cmd
}

func newConfigWindowCmd(app *app) *cobra.Command {
	var width int
	var height int
	var show string

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Set the main window size and visibility",
		RunE: func(cmd *cobra.Command, _ []string) error {
			changed := false
			if cmd.Flags().Changed("width") || cmd.Flags().Changed("height") {
				cfg, _, err := app.config.Seed(cmd.Context())
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("width") {
					width = cfg.Window.Main.Width
				}
				if !cmd.Flags().Changed("height") {
					height = cfg.Window.Main.Height
				}
				if err := app.config.SetMainWindowBounds(cmd.Context(), width, height); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("show") {
				visible, err := parseToggle(show)
				if err != nil {
					return err
				}
				if err := app.config.SetMainWindowShown(cmd.Context(), visible); err != nil {
					return err
				}
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to change: pass --width, --height or --show")
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "main window settings saved")
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "main window width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "main window height in pixels")
	cmd.Flags().StringVar(&show, "show", "", "show the main window on start (on|off)")
	return cmd
}

func newConfigZoomFixCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:       "zoom-fix <on|off>",
		Short:     "Toggle the zoom compatibility fix",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := parseToggle(args[0])
			if err != nil {
				return err
			}
			if err := app.config.SetZoomFix(cmd.Context(), enabled); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "zoom fix %s\n", toggleLabel(enabled))
			return err
		},
	}
}

func newConfigProjectCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage project entries",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <id> <path>",
			Short: "Add or replace a project entry",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.config.AddProject(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "project %s saved\n", args[0])
				return err
			},
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove a project entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.config.RemoveProject(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "project %s removed\n", args[0])
				return err
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List project entries",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, _, err := app.config.Seed(cmd.Context())
				if err != nil {
					return err
				}

				ids := make([]string, 0, len(cfg.Project))
				for id := range cfg.Project {
					ids = append(ids, id)
				}
				sort.Strings(ids)

				out := cmd.OutOrStdout()
				if len(ids) == 0 {
					_, err = fmt.Fprintln(out, "no projects")
					return err
				}
				for _, id := range ids {
					if _, err := fmt.Fprintf(out, "%s\t%s\n", id, cfg.Project[id].Path); err != nil {
						return err
					}
				}
				return nil
			},
		},
	)

	return cmd
}

func newConfigAPIKeyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api-key",
		Short: "Manage the completion provider API key in the credential store",
	}

	var fromStdin bool
	set := &cobra.Command{
		Use:   "set [key]",
		Short: "Store the completion API key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value string
			switch {
			case fromStdin:
				raw, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), 64<<10))
				if err != nil {
					return fmt.Errorf("read api key from stdin: %w", err)
				}
				value = string(raw)
			case len(args) == 1:
				value = args[0]
			default:
				return fmt.Errorf("pass the key as an argument or use --stdin")
			}

			value = strings.TrimSpace(value)
			if value == "" {
				return fmt.Errorf("api key is empty")
			}
			if err := app.creds.Put(cmd.Context(), completionKeyCredential, value); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "completion api key stored")
			return err
		},
	}
	set.Flags().BoolVar(&fromStdin, "stdin", false, "read the key from standard input")

	cmd.AddCommand(
		set,
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the stored completion API key",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := app.creds.Delete(cmd.Context(), completionKeyCredential); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "completion api key removed")
				return err
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Report whether a completion API key is stored",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := app.creds.Get(cmd.Context(), completionKeyCredential)
				switch {
				case err == nil:
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "completion api key: stored")
				case errors.Is(err, domain.ErrCredentialMissing):
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "completion api key: not stored")
				}
				return err
			},
		},
	)
	return cmd
}

func parseToggle(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid toggle %q (want on or off)", raw)
	}
}

func toggleLabel(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
