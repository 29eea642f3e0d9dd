package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a memory by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	if !a.store.DeleteByID(cmd.Context(), args[0]) {
		return fmt.Errorf("no memory with id %s", args[0])
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}
