package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/pkg/codec"
	"github.com/aretw0/tendril/pkg/term"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a template against an environment",
	Long:  `Loads a YAML template and environment, resolves every reference, and prints the result to stdout as YAML (or JSON with --json).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		templatePath, _ := cmd.Flags().GetString("template")
		envPath, _ := cmd.Flags().GetString("env")
		sets, _ := cmd.Flags().GetStringArray("set")
		strict, _ := cmd.Flags().GetBool("strict")
		asJSON, _ := cmd.Flags().GetBool("json")

		tmpl, env, err := loadInputs(templatePath, envPath)
		if err != nil {
			return err
		}

		overrides, err := parseOverrides(sets)
		if err != nil {
			return err
		}

		opts := []tendril.Option{tendril.WithOverrides(overrides)}
		if strict {
			opts = append(opts, tendril.WithStrict())
		}

		out, err := tendril.Transform(tmpl, env, opts...)
		if err != nil {
			return fmt.Errorf("resolution failed: %w", err)
		}

		if asJSON {
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}
		data, err := codec.EncodeYAML(out)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringP("template", "t", "", "Template YAML file (required)")
	resolveCmd.Flags().StringP("env", "e", "", "Environment YAML file")
	resolveCmd.Flags().StringArray("set", nil, "Override binding, name=value (repeatable)")
	resolveCmd.Flags().Bool("strict", false, "Fail if any reference is left unresolved")
	resolveCmd.Flags().Bool("json", false, "Print JSON instead of YAML")
	_ = resolveCmd.MarkFlagRequired("template")
	rootCmd.AddCommand(resolveCmd)
}

func loadInputs(templatePath, envPath string) (term.Term, *term.Env, error) {
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read template: %w", err)
	}
	tmpl, err := codec.DecodeYAML(data)
	if err != nil {
		return nil, nil, err
	}

	env := term.NewEnv(nil)
	if envPath != "" {
		data, err := os.ReadFile(envPath)
		if err != nil {
			return nil, nil, fmt.Errorf("read environment: %w", err)
		}
		env, err = codec.DecodeEnvYAML(data)
		if err != nil {
			return nil, nil, err
		}
	}
	return tmpl, env, nil
}

// parseOverrides turns name=value flags into bindings. Values go through
// the YAML scalar parser, so numbers, booleans, "@refs" and !rmv all work.
func parseOverrides(sets []string) (map[string]term.Term, error) {
	overrides := make(map[string]term.Term, len(sets))
	for _, set := range sets {
		name, value, found := strings.Cut(set, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("invalid --set %q, want name=value", set)
		}
		t, err := codec.DecodeYAML([]byte(value))
		if err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", set, err)
		}
		overrides[name] = t
	}
	return overrides, nil
}
