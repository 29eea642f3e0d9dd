package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harun/engram/pkg/memory"
)

var (
	searchCategory string
	searchPlatform string
	searchType     string
	searchRange    string
)

var searchCmd = &cobra.Command{
	Use:   "search [terms]",
	Short: "Search memories with filters",
	Long: `Search the collection with field and date filters. Without terms the
filtered memories are listed newest first; with terms they are ranked by
relevance.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "filter by category (or 'all')")
	searchCmd.Flags().StringVar(&searchPlatform, "platform", "", "filter by platform (or 'all')")
	searchCmd.Flags().StringVar(&searchType, "type", "", "filter by record type (or 'all')")
	searchCmd.Flags().StringVar(&searchRange, "range", "", "date range: today, week, month or year")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	results := a.store.Search(cmd.Context(), strings.Join(args, " "), memory.Filters{
		Category:  searchCategory,
		Platform:  searchPlatform,
		Type:      searchType,
		DateRange: searchRange,
	})
	if len(results) == 0 {
		fmt.Println("No matching memories")
		return nil
	}

	for _, r := range results {
		ts := time.UnixMilli(r.Record.Timestamp).Format("2006-01-02 15:04")
		fmt.Printf("%s  %s  [%s]\n  %s\n", r.Record.ID, ts, r.Record.Category, firstLine(r.Record.Content))
	}
	return nil
}
