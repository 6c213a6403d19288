package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

const historyTimeFormat = "2006-01-02 15:04"

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	Long: `Lists recent searches, newest first, with how each one ended.

Only the term, options and outcome are recorded; results are never stored.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded searches")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices(cmd)
	if err != nil {
		return err
	}
	if svc.History == nil {
		return errors.New("history service not configured")
	}

	out := cmd.OutOrStdout()

	if historyClear {
		if err := svc.History.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Fprintln(out, "History cleared.")
		return nil
	}

	entries, err := svc.History.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No searches recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.SearchedAt.Local().Format(historyTimeFormat),
			e.Term,
			e.Entity.String(),
			strconv.Itoa(e.Limit),
			e.Outcome.String(),
			strconv.Itoa(e.Count),
		})
	}

	headers := []string{"When", "Term", "Entity", "Limit", "Outcome", "Results"}
	fmt.Fprintln(out, renderTable(out, headers, rows))
	return nil
}
