package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"movetrace/internal/tracefile"
)

var statCmd = &cobra.Command{
	Use:   "stat [files...]",
	Short: "Summarize execution counts in trace files",
	Long: `Stat parses one or more trace files and reports the most-executed
functions across all of them`,
	RunE: runStat,
}

func init() {
	statCmd.Flags().Int("top", 10, "number of functions to show (0 = all)")
	statCmd.Flags().Int("jobs", runtime.NumCPU(), "parallel file readers")
}

func runStat(cmd *cobra.Command, args []string) error {
	topN, err := cmd.Flags().GetInt("top")
	if err != nil {
		return fmt.Errorf("failed to get top flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = 1
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	paths := args
	if len(paths) == 0 {
		p, err := defaultTracePath()
		if err != nil {
			return err
		}
		paths = []string{p}
	}

	// Parse files in parallel; each slot is owned by one goroutine.
	results := make([][]tracefile.Record, len(paths))
	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			recs, err := tracefile.ReadFile(path)
			if err != nil {
				return err
			}
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var all []tracefile.Record
	for i, path := range paths {
		if !quiet {
			fmt.Fprintf(out, "%s: %d records\n", path, len(results[i]))
		}
		all = append(all, results[i]...)
	}

	summary := tracefile.Summarize(all)
	if summary.Records == 0 {
		fmt.Fprintln(out, "no records")
		return nil
	}
	renderTop(out, summary, topN)
	return nil
}

const labelColWidth = 48

var (
	statHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	statCountStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func renderTop(out io.Writer, s tracefile.Summary, n int) {
	fmt.Fprintln(out, statHeaderStyle.Render(fmt.Sprintf("%-*s %10s", labelColWidth, "function", "hits")))
	for _, row := range s.Top(n) {
		count := statCountStyle.Render(fmt.Sprintf("%10d", row.Count))
		fmt.Fprintf(out, "%-*s %s\n", labelColWidth, truncateLabel(row.Label, labelColWidth), count)
	}
	fmt.Fprintf(out, "%d records, %d functions\n", s.Records, len(s.Hits))
}

// truncateLabel keeps table rows aligned when generic instantiations get
// long.
func truncateLabel(value string, width int) string {
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
