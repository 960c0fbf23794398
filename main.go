package main

import (
	"fmt"
	"os"

	"launcher-icons/icons"
	"launcher-icons/log"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "launcher-icons",
		Short:         "Print launcher icon sizes per screen density and a replacement checklist.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			if err := icons.Report(cmd.OutOrStdout()); err != nil {
				log.ErrorLog.Printf("report failed: %v", err)
				return err
			}
			log.Debug("report written: %d densities, %d tips, %d files",
				len(icons.Densities()), len(icons.Tips()), len(icons.Files()))
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of launcher-icons",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "launcher-icons version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
