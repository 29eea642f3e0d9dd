package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harun/engram/pkg/blob"
	"github.com/harun/engram/pkg/memory"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the memory daemon",
	Long: `Run in the foreground with the scheduled janitor and, for the file
backend, a watcher that reloads the collection when another process rewrites
the blob. Stops on SIGINT or SIGTERM.`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(cmd *cobra.Command, args []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	log := a.log.GetZerolog()

	if a.cfg.Janitor.Enabled {
		janitor, err := memory.NewJanitor(a.store, a.cfg.Janitor.Schedule, log)
		if err != nil {
			return err
		}
		if err := janitor.Start(); err != nil {
			return err
		}
		defer janitor.Stop()
	}

	if a.cfg.Watcher.Enabled {
		if fs, ok := a.blob.(*blob.FileStore); ok {
			watcher, err := blob.NewWatcher(log, fs.Path(a.cfg.Memory.BlobKey), a.store.Reload)
			if err != nil {
				return fmt.Errorf("failed to start blob watcher: %w", err)
			}
			defer watcher.Stop()
		} else {
			a.log.Warn().Str("backend", a.cfg.Storage.Backend).Msg("Blob watcher only supports the file backend")
		}
	}

	a.log.Info().Int("memories", a.store.Len(cmd.Context())).Msg("Daemon started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	a.log.Info().Str("signal", sig.String()).Msg("Daemon stopping")
	return nil
}
