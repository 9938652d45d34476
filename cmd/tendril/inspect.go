package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/tendril/internal/presentation/tui"
	"github.com/aretw0/tendril/pkg/codec"
	"github.com/aretw0/tendril/pkg/introspect"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [name]",
	Short: "List environment bindings and their dependencies",
	Long:  `Renders a report of every binding in an environment: its kind, what it depends on, and its documentation. With a name argument, reports only that binding.`,
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
		names := g.Names()
		if len(args) > 0 {
			if _, ok := g.Node(args[0]); !ok {
				return fmt.Errorf("no binding named %q", args[0])
			}
			names = args[:1]
		}

		report := buildReport(g, names)
		if term.IsTerminal(int(os.Stdout.Fd())) {
			render := tui.NewRenderer()
			pretty, err := render(report)
			if err == nil {
				fmt.Print(pretty)
				return nil
			}
			// Fall through to plain output on render failure.
		}
		fmt.Print(report)
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringP("env", "e", "", "Environment YAML file (required)")
	_ = inspectCmd.MarkFlagRequired("env")
	rootCmd.AddCommand(inspectCmd)
}

// buildReport produces a markdown summary, rendered with glamour on
// terminals and printed raw otherwise.
func buildReport(g *introspect.Graph, names []string) string {
	var sb strings.Builder
	sb.WriteString("# Environment bindings\n\n")
	for _, name := range names {
		node, _ := g.Node(name)
		sb.WriteString(fmt.Sprintf("## %s\n\n- kind: %s\n", name, node.Kind))
		if len(node.Deps) > 0 {
			sb.WriteString(fmt.Sprintf("- depends on: %s\n", strings.Join(node.Deps, ", ")))
		}
		if dependents := g.DependentsOf(name); len(dependents) > 0 {
			sb.WriteString(fmt.Sprintf("- depended on by: %s\n", strings.Join(dependents, ", ")))
		}
		if node.Doc != "" {
			sb.WriteString("\n" + node.Doc + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
