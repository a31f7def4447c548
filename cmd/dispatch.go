package cmd

import (
	"fmt"
	"net/http"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/spf13/cobra"
)

func newDispatchCmd(app *app) *cobra.Command {
	var action string
	var data string

	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Send an action message to the running shell",
		Long:  "Publish an action message on the running shell's action bus. The registered handler runs asynchronously.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := domain.ParseActionKind(action)
			if err != nil {
				return err
			}

			msg := domain.NewActionMessage(kind, data)
			if _, err := app.callBackend(cmd.Context(), http.MethodPost, "/actions", msg, nil); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "dispatched %s\n", kind)
			return err
		},
	}

	cmd.Flags().StringVar(&action, "action", "", fmt.Sprintf("action to send %v", domain.ActionKinds()))
	cmd.Flags().StringVar(&data, "data", "", "opaque action payload")
	_ = cmd.MarkFlagRequired("action")

	return cmd
}
