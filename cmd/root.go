package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vrt",
		Short:         "VR therapy sessions (vrt): run timed sessions and review history",
		Long:          "vrt drives the VR therapy session lifecycle from the terminal: it boots the headset scenes, runs a timed therapy pattern, logs every session, and shows the session history.",
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

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSessionCmd(app),
		newHistoryCmd(app),
		newPatternsCmd(app),
	)

	return rootCmd
}
