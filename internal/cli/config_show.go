package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/textsign/internal/config"
	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/ctxutil"
	"github.com/mrz1836/textsign/internal/tui"
)

// AddConfigCommand adds the config command and its subcommands to the root command.
func AddConfigCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect textsign configuration",
	}
	cmd.AddCommand(newConfigShowCmd())
	root.AddCommand(cmd)
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective textsign configuration and where each value comes from:
  - default: built-in default value
  - global:  from ~/.textsign/config.yaml (or $TEXTSIGN_HOME/config.yaml)
  - project: from .textsign/config.yaml
  - env:     from a TEXTSIGN_* environment variable

Text output is YAML with the source as a line comment; -o json prints an
object of {value, source} pairs.

Examples:
  textsign config show
  textsign config show -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), outputFormat(cmd))
		},
	}
}

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault ConfigSource = "default"
	// SourceGlobal indicates the value came from global config.
	SourceGlobal ConfigSource = "global"
	// SourceProject indicates the value came from project config.
	SourceProject ConfigSource = "project"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv ConfigSource = "env"
)

// ConfigValueWithSource represents a configuration value with its source.
type ConfigValueWithSource struct {
	Value  any          `json:"value" yaml:"value"`
	Source ConfigSource `json:"source" yaml:"source"`
}

// configEntry is one key of the text section in display order.
type configEntry struct {
	key   string
	value any
}

func runConfigShow(ctx context.Context, w io.Writer, output string) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	cfg, err := config.Load(GetLogger().WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	entries := []configEntry{
		{"format", cfg.Text.Format},
		{"key_dir", cfg.Text.KeyDir},
		{"allow_truncated_keys", cfg.Text.AllowTruncatedKeys},
		{"parallelism", cfg.Text.Parallelism},
		{"input", cfg.Text.Input},
	}

	globalPath, _ := config.GlobalConfigPath()
	globalCfg := loadConfigFile(globalPath)
	projectCfg := loadConfigFile(config.ProjectConfigPath())

	annotated := make(map[string]ConfigValueWithSource, len(entries))
	for _, e := range entries {
		annotated[e.key] = determineSource("text."+e.key, e.value, globalCfg, projectCfg)
	}

	if output == OutputJSON {
		return tui.NewOutput(w, output).JSON(map[string]map[string]ConfigValueWithSource{"text": annotated})
	}
	return outputYAML(w, entries, annotated, globalPath)
}

// configValues holds the dotted keys present in one config file.
type configValues map[string]bool

// loadConfigFile reads the keys set in a YAML config file. Missing or
// unreadable files yield nil.
func loadConfigFile(path string) configValues {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // Config file path
	if err != nil {
		return nil
	}

	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil
	}

	result := make(configValues)
	for section, values := range raw {
		for key := range values {
			result[section+"."+key] = true
		}
	}
	return result
}

// determineSource reports where key's effective value came from, following
// the same precedence as config.Load.
func determineSource(key string, value any, globalCfg, projectCfg configValues) ConfigValueWithSource {
	envKey := constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if os.Getenv(envKey) != "" {
		return ConfigValueWithSource{Value: value, Source: SourceEnv}
	}
	if projectCfg[key] {
		return ConfigValueWithSource{Value: value, Source: SourceProject}
	}
	if globalCfg[key] {
		return ConfigValueWithSource{Value: value, Source: SourceGlobal}
	}
	return ConfigValueWithSource{Value: value, Source: SourceDefault}
}

// outputYAML writes the text section as YAML with each value's source as a
// line comment.
func outputYAML(w io.Writer, entries []configEntry, annotated map[string]ConfigValueWithSource, globalPath string) error {
	section := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(e.value); err != nil {
			return fmt.Errorf("failed to encode %s: %w", e.key, err)
		}
		valueNode.LineComment = "# " + string(annotated[e.key].Source)
		section.Content = append(section.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.key},
			valueNode,
		)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{
			Kind:        yaml.ScalarNode,
			Value:       "text",
			HeadComment: fmt.Sprintf("# global config: %s\n# project config: %s", globalPath, config.ProjectConfigPath()),
		},
		section,
	}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return enc.Close()
}
