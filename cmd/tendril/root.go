package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tendril/internal/presentation/tui"
)

var rootCmd = &cobra.Command{
	Use:   "tendril",
	Short: "Tendril is a substitution engine for data-driven templates",
	Long:  `Tendril resolves symbolic references inside nested data templates against environments of defaults, overrides, and dependency-aware functions.`,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner()
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
