package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var statsFull bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsFull, "full", false, "include category, platform and keyword breakdowns")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	stats := a.store.Stats(ctx)
	fmt.Printf("Total memories: %d\n", stats.Total)
	if stats.OldestTimestamp != nil {
		fmt.Printf("Oldest: %s\n", time.UnixMilli(*stats.OldestTimestamp).Format("2006-01-02 15:04"))
	}
	if stats.NewestTimestamp != nil {
		fmt.Printf("Newest: %s\n", time.UnixMilli(*stats.NewestTimestamp).Format("2006-01-02 15:04"))
	}
	printCounts("Sources", stats.Sources)

	if !statsFull {
		return nil
	}

	analytics := a.store.Analytics(ctx, time.Now().UnixMilli())
	printCounts("Categories", analytics.Categories)
	printCounts("Platforms", analytics.Platforms)
	printCounts("Types", analytics.Types)
	printCounts("Recency", analytics.TimeDistribution)
	fmt.Printf("Average length: %d chars\n", analytics.AvgMemoryLength)
	if len(analytics.TopKeywords) > 0 {
		fmt.Println("Top keywords:")
		for _, kw := range analytics.TopKeywords {
			fmt.Printf("  %-20s %d\n", kw.Word, kw.Count)
		}
	}
	return nil
}

func printCounts(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("%s:\n", title)
	for _, k := range keys {
		fmt.Printf("  %-20s %d\n", k, counts[k])
	}
}
