package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/geoprivacy/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "geoprivacy",
	Short: "Location-privacy transformations for trip-origin datasets",
	Long:  "Discloses spatially k-anonymous regions instead of exact trip origins, geomasks point datasets by annulus sampling, and audits attribute k-anonymity over quasi-identifiers.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
