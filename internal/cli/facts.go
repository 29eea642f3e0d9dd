package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harun/engram/pkg/classify"
)

var factsSave bool

var factsCmd = &cobra.Command{
	Use:   "facts [text]",
	Short: "Extract key facts from text",
	Long: `Extract the declarative statements worth remembering from a block of
text. With --save each extracted fact is stored as its own memory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFacts,
}

func init() {
	factsCmd.Flags().BoolVar(&factsSave, "save", false, "save each extracted fact")
	rootCmd.AddCommand(factsCmd)
}

func runFacts(cmd *cobra.Command, args []string) error {
	facts := classify.ExtractKeyFacts(strings.Join(args, " "))
	if len(facts) == 0 {
		fmt.Println("No key facts found")
		return nil
	}

	if !factsSave {
		for _, f := range facts {
			fmt.Printf("- %s\n", f)
		}
		return nil
	}

	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	saved := 0
	for _, f := range facts {
		if rec := a.store.Save(cmd.Context(), f, map[string]any{"type": "extracted_fact"}); rec != nil {
			saved++
			fmt.Printf("Saved %s: %s\n", rec.ID, f)
		}
	}
	fmt.Printf("%d of %d facts saved\n", saved, len(facts))
	return nil
}
