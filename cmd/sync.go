package cmd

import (
	"fmt"

	renderwindows "github.com/bnema/assistant-shell/internal/adapters/render/windows"
	"github.com/bnema/assistant-shell/internal/application"
	"github.com/bnema/assistant-shell/internal/logging"
	"github.com/spf13/cobra"
)

const defaultHistoryLimit = 20

func newSyncCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Inspect files synced into the workspace",
	}

	cmd.AddCommand(newSyncHistoryCmd(app))
	return cmd
}

func newSyncHistoryCmd(app *app) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recent synced files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}

			journal, err := app.openJournal()
			if err != nil {
				return err
			}
			defer journal.Close()

			root, err := app.workspaceRoot()
			if err != nil {
				return err
			}
			svc := application.NewSyncService(root, journal, nil, nil, logging.Component(app.logger, "sync"))
			records, err := svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSONOutput(cmd.OutOrStdout(), records)
			}
			rendered, err := renderwindows.RenderSyncHistory(records, app.now())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "number of records to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON")
	return cmd
}
