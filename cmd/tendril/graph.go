package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/tendril/internal/presentation/graph"
	"github.com/aretw0/tendril/pkg/codec"
	"github.com/aretw0/tendril/pkg/introspect"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the dependency graph visualization",
	Long:  `Inspects an environment and outputs a Mermaid diagram (graph TD) of its binding dependencies, built from declared dependency lists without evaluating anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		envPath, _ := cmd.Flags().GetString("env")
		data, err := os.ReadFile(envPath)
		if err != nil {
			return fmt.Errorf("read environment: %w", err)
		}
		env, err := codec.DecodeEnvYAML(data)
		if err != nil {
			return err
		}

		g := introspect.Inspect(env)
		fmt.Print(graph.GenerateMermaid(g))

		if cycles := g.Cycles(); len(cycles) > 0 {
			for _, cycle := range cycles {
				fmt.Fprintf(os.Stderr, "warning: dependency cycle: %s\n", strings.Join(cycle, " -> "))
			}
		}
		return nil
	},
}

func init() {
	graphCmd.Flags().StringP("env", "e", "", "Environment YAML file (required)")
	_ = graphCmd.MarkFlagRequired("env")
	rootCmd.AddCommand(graphCmd)
}
