package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukpay/takehome/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator as a web form and JSON API",
	Long: `Serve the calculator over HTTP: an HTML form for browsers at /,
a JSON API at /api/calculate, and the active tax policy at /api/policy.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		}

		policy := loadPolicy(cmd)
		srv := server.New(policy)
		srv.SetLogger(simpleCLILogger{})

		if err := srv.ListenAndServe(addr); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address (the PORT environment variable overrides)")
	serveCmd.Flags().String("policy", "", "Path to a tax policy YAML file (default: policy.yaml if it exists)")

	rootCmd.AddCommand(serveCmd)
}
