package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harun/engram/internal/config"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the collection",
	Long:  `Export every memory as json, csv or txt, to stdout or a file.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json, csv or txt")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := config.NewValidator().ValidateExportFormat(exportFormat); err != nil {
		return err
	}

	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	out, err := a.store.Export(cmd.Context(), exportFormat)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(exportOutput, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Printf("Exported to %s\n", exportOutput)
	return nil
}
