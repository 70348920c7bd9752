// Command bazaari is the storefront API server and its operational CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adityakr/bazaari/internal/server"
)

func main() {
	root := &cobra.Command{
		Use:   "bazaari",
		Short: "Bazaari storefront API",
	}

	root.AddCommand(serveCmd(), seedCmd(), migrateCmd(), routeListCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and gRPC servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run()
		},
	}
}
