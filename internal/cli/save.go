package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harun/engram/pkg/classify"
)

var (
	savePlatform string
	saveType     string
	saveCategory string
	saveForce    bool
)

var saveCmd = &cobra.Command{
	Use:   "save [content]",
	Short: "Save a memory",
	Long: `Save a memory to the collection. Content judged too trivial to keep
is rejected unless --force is given. Follow-ups inside an active conversation
merge into the existing record instead of creating a new one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSave,
}

func init() {
	saveCmd.Flags().StringVar(&savePlatform, "platform", "", "platform the content came from")
	saveCmd.Flags().StringVar(&saveType, "type", "", "record type, e.g. extracted_fact")
	saveCmd.Flags().StringVar(&saveCategory, "category", "", "override the detected category")
	saveCmd.Flags().BoolVar(&saveForce, "force", false, "skip the worth-saving check")
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	content := strings.Join(args, " ")

	if !saveForce && !classify.IsWorthSaving(content) {
		return fmt.Errorf("content rejected as not worth saving (use --force to override)")
	}

	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	meta := map[string]any{}
	if savePlatform != "" {
		meta["platform"] = savePlatform
	}
	if saveType != "" {
		meta["type"] = saveType
	}
	if saveCategory != "" {
		meta["category"] = saveCategory
	}

	rec := a.store.Save(cmd.Context(), content, meta)
	if rec == nil {
		fmt.Println("Skipped: duplicate or empty content")
		return nil
	}

	fmt.Printf("Saved %s [%s]\n", rec.ID, rec.Category)
	return nil
}
