package cmd

import (
	"context"
	"fmt"
	"strings"

	renderwindows "github.com/bnema/assistant-shell/internal/adapters/render/windows"
	"github.com/bnema/assistant-shell/internal/application"
	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/logging"
	"github.com/spf13/cobra"
)

func newSVNCmd(app *app) *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "svn",
		Short: "Working copy operations on the workspace root",
	}
	cmd.PersistentFlags().StringVar(&root, "root", "", "working copy root (default from workspace.root or the working directory)")

	svnService := func(cmd *cobra.Command) (*application.SVNService, error) {
		if root != "" {
			app.cfg.Set(keyWorkspaceRoot, root)
		}
		dir, err := app.workspaceRoot()
		if err != nil {
			return nil, err
		}

		svc := application.NewSVNService(dir, app.vcs, logging.Component(app.logger, "svn"))
		if err := svc.Init(cmd.Context()); err != nil {
			return nil, err
		}
		return svc, nil
	}

	cmd.AddCommand(
		newSVNStatusCmd(svnService),
		newSVNUpdateCmd(svnService),
		newSVNCommitCmd(svnService),
	)
	return cmd
}

type svnServiceFunc func(cmd *cobra.Command) (*application.SVNService, error)

func newSVNStatusCmd(load svnServiceFunc) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show changed files in the working copy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := load(cmd)
			if err != nil {
				return err
			}

			var entries []domain.SVNStatusEntry
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Reading working copy status...", func(ctx context.Context) error {
				var statusErr error
				entries, statusErr = svc.Status(ctx)
				return statusErr
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSONOutput(cmd.OutOrStdout(), entries)
			}
			rendered, err := renderwindows.RenderSVNStatus(entries)
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

func newSVNUpdateCmd(load svnServiceFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Bring the working copy up to date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := load(cmd)
			if err != nil {
				return err
			}

			if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Updating working copy...", svc.Update); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "working copy updated")
			return err
		},
	}
}

func newSVNCommitCmd(load svnServiceFunc) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit [paths...]",
		Short: "Commit the given paths, or every changed file when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load(cmd)
			if err != nil {
				return err
			}

			var committed []string
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Committing...", func(ctx context.Context) error {
				var commitErr error
				if len(args) > 0 {
					committed, commitErr = svc.CommitPaths(ctx, message, args)
				} else {
					committed, commitErr = svc.CommitChanged(ctx, message)
				}
				return commitErr
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "committed %d file(s): %s\n", len(committed), strings.Join(committed, ", "))
			return err
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
