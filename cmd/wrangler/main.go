// Command wrangler cleans roadway networks and transit feeds: it loads
// the standard tables, prunes each one to its declared data model, and
// writes the result back out.
package main

import (
	"fmt"
	"os"

	"github.com/go-wrangler/wrangler/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logLevel string

func main() {
	root := &cobra.Command{
		Use:           "wrangler",
		Short:         "Schema-driven cleaning for roadway and transit network tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(createPruneCommand())
	root.AddCommand(createInfoCommand())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func createLogger() (*zap.Logger, error) {
	return logging.CreateLogger(logLevel)
}
