package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"movetrace/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show movetrace build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		full, err := cmd.Flags().GetBool("full")
		if err != nil {
			return fmt.Errorf("failed to get full flag: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "movetrace %s\n", version.Pretty())
		if full {
			fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(version.GitCommit))
			fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(version.BuildDate))
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("full", false, "include commit hash and build date")
}

func valueOrUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
