package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio is a personal portfolio server with an admin panel",
	Long: `A personal portfolio web service: blog content management, admin
authentication with brute-force protection, activity log, and view counts.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
