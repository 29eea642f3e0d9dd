package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var queryLimit int

var queryCmd = &cobra.Command{
	Use:   "query [terms]",
	Short: "Retrieve relevant memories",
	Long: `Retrieve the memories most relevant to the given terms, ranked by
TF-IDF score. Queries shorter than three characters return the most recent
memories instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVar(&queryLimit, "limit", 0, "maximum results (default from config)")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	limit := queryLimit
	if limit <= 0 {
		limit = a.cfg.Memory.QueryLimit
	}

	results := a.store.Query(cmd.Context(), strings.Join(args, " "), limit)
	if len(results) == 0 {
		fmt.Println("No matching memories")
		return nil
	}

	for _, r := range results {
		fmt.Printf("%s  score=%.3f  [%s]\n  %s\n", r.Record.ID, r.Score, r.Record.Category, firstLine(r.Record.Content))
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
