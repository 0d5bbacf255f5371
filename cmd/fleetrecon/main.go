// fleetrecon reconciles Locavia fleet exports against their Salesforce
// counterparts and writes per-family divergence workbooks.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/irisfleet/fleetrecon/cmd/fleetrecon/cmd"
	"github.com/irisfleet/fleetrecon/pkg/logging"
)

func main() {
	// Optional; a missing .env file is not an error.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx); err != nil {
		logging.Err(err).Msg("Reconciliation failed")
		os.Exit(1)
	}
}
