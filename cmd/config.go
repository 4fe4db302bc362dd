package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zpam/sms-filter/pkg/config"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long:  `Generate and manage zpam-sms configuration files`,
}

var configGenCmd = &cobra.Command{
	Use:   "generate [config-file]",
	Short: "Generate default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := "config.yaml"
		if len(args) > 0 {
			configPath = args[0]
		}

		if _, err := os.Stat(configPath); err == nil {
			overwrite, _ := cmd.Flags().GetBool("force")
			if !overwrite {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
			}
		}

		if err := config.DefaultConfig().SaveConfig(configPath); err != nil {
			return fmt.Errorf("failed to save config: %v", err)
		}

		fmt.Printf("✅ Configuration file generated: %s\n", configPath)
		fmt.Printf("📝 Edit the file to point at your corpus and model store\n")
		fmt.Printf("🚀 Use 'zpam-sms train --config %s' to train with it\n", configPath)

		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [config-file]",
	Short: "Validate configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := args[0]

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("❌ validation failed: %v", err)
		}

		fmt.Printf("✅ Configuration is valid: %s\n", configPath)
		fmt.Printf("📁 Corpus: %s\n", cfg.Corpus.Path)
		fmt.Printf("💾 Model backend: %s\n", cfg.Model.Backend)
		fmt.Printf("🎲 Split: %.0f/%.0f/%.0f seed %d\n",
			cfg.Split.TrainRatio*100, cfg.Split.ValidationRatio*100,
			cfg.Split.TestRatio*100, cfg.Split.Seed)

		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show [config-file]",
	Short: "Show effective configuration",
	Long:  `Show the effective configuration (defaults merged with the given file) as YAML`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := ""
		if len(args) > 0 {
			configPath = args[0]
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %v", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %v", err)
		}
		fmt.Print(string(data))

		return nil
	},
}

func init() {
	configCmd.AddCommand(configGenCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)

	configGenCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
