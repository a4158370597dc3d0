package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"movetrace/internal/tracefile"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Convert a trace file to another format",
	Long: `Export parses a trace file and re-encodes it as NDJSON (one object
per record) or as a compact versioned binary payload`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "ndjson", "output format (ndjson|binary)")
	exportCmd.Flags().StringP("output", "o", "-", "output path (- for stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	path, err := resolveTraceArg(args)
	if err != nil {
		return err
	}
	recs, err := tracefile.ReadFile(path)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if outputPath != "-" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "ndjson":
		return tracefile.WriteNDJSON(out, recs)
	case "binary":
		return tracefile.WriteBinary(out, recs)
	default:
		return fmt.Errorf("unsupported format %q (expected: ndjson|binary)", format)
	}
}
