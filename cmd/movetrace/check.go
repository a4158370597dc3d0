package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"movetrace/internal/tracefile"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate every record in a trace file",
	Long: `Check reads the whole trace file and fails on the first malformed
line, reporting its line number`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, err := resolveTraceArg(args)
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer f.Close()

	r := tracefile.NewReader(f)
	count := 0
	for {
		_, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		count++
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records ok\n", path, count)
	}
	return nil
}
