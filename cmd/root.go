package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ashell",
		Short:         "Assistant shell (ashell): desktop shell backend for the assistant",
		Long:          "ashell runs the assistant shell backend: it seeds persisted settings, manages windows, routes renderer actions, syncs editor files into an SVN working copy and serves code completions.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newConfigCmd(app),
		newWindowCmd(app),
		newDispatchCmd(app),
		newSVNCmd(app),
		newSyncCmd(app),
	)

	return rootCmd
}
