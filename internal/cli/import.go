package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var importMerge bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a collection from a JSON export",
	Long: `Import a JSON array of memories. By default the existing collection
is replaced; --merge keeps existing memories and skips imported ids that are
already present. Before a replace the current collection is backed up next to
the data directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "merge into the existing collection")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()

	// A replace discards the current collection, so write a backup first.
	if !importMerge && a.store.Len(ctx) > 0 {
		backup, err := a.store.Export(ctx, "json")
		if err != nil {
			return fmt.Errorf("failed to snapshot collection before replace: %w", err)
		}
		backupPath := filepath.Join(a.cfg.DataDir, fmt.Sprintf("backup-%s.json", uuid.NewString()))
		if err := os.WriteFile(backupPath, []byte(backup), 0644); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
		fmt.Printf("Backed up current collection to %s\n", backupPath)
	}

	res := a.store.Import(ctx, payload, importMerge)
	if !res.Success {
		return fmt.Errorf("import failed: %s", res.Error)
	}
	fmt.Printf("Imported %d memories (%d total)\n", res.Imported, res.Total)
	return nil
}
