package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "acfetch",
	Short:         "AutoCare catalog browser and table downloader",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}
