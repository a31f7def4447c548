package cmd

import (
	"fmt"
	"net/http"

	"github.com/bnema/assistant-shell/internal/adapters/httpapi"
	renderwindows "github.com/bnema/assistant-shell/internal/adapters/render/windows"
	"github.com/bnema/assistant-shell/internal/application"
	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/spf13/cobra"
)

func newWindowCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Window kinds and open windows",
	}

	cmd.AddCommand(newWindowKindsCmd(), newWindowListCmd(app))
	return cmd
}

func newWindowKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List window kinds with their routes and default bounds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := renderwindows.RenderWindowKinds()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newWindowListCmd(app *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List windows open in the running shell",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var listed []httpapi.WindowResponse
			if _, err := app.callBackend(cmd.Context(), http.MethodGet, "/windows", nil, &listed); err != nil {
				return err
			}

			if jsonOutput {
				return writeJSONOutput(cmd.OutOrStdout(), listed)
			}

			handles, err := windowHandles(listed)
			if err != nil {
				return err
			}
			rendered, err := renderwindows.RenderOpenWindows(handles)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON")
	return cmd
}

func windowHandles(listed []httpapi.WindowResponse) ([]application.WindowHandle, error) {
	handles := make([]application.WindowHandle, 0, len(listed))
	for _, entry := range listed {
		window, err := domain.NewWindow(domain.WindowType(entry.Kind), entry.Project)
		if err != nil {
			return nil, fmt.Errorf("window %s: %w", entry.ID, err)
		}
		handles = append(handles, application.WindowHandle{
			ID:     entry.ID,
			Window: window,
			Route:  entry.Route,
		})
	}
	return handles, nil
}
