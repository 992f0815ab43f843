package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/igiffrekt/MusqlApp-sub002/internal/interfaces/cli/migrate"
	"github.com/igiffrekt/MusqlApp-sub002/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "musql",
		Short: "Musql check-in service",
		Long:  "Musql serves physical check-in for gyms and studios: credential minting, kiosk admission validation, terminal management, and attendance history.",
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
