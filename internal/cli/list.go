package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all memories",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "emit the raw record array")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	records := a.store.GetAll(cmd.Context())

	if listJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize records: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		fmt.Println("No memories stored")
		return nil
	}
	for _, rec := range records {
		ts := time.UnixMilli(rec.Timestamp).Format("2006-01-02 15:04")
		fmt.Printf("%s  %s  [%s]\n  %s\n", rec.ID, ts, rec.Category, firstLine(rec.Content))
	}
	return nil
}
