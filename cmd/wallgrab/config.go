package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"wallgrab/pkg/config"
)

var configFile string

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage wallgrab configuration files.

Configuration is layered, highest priority first:
  - Command line flags (--log-level)
  - Environment variables (WALLGRAB_*, .env files included)
  - Configuration file
  - Default values`,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default values",
	Long: `Write a configuration file holding every option at its default value.

The file is created as .wallgrab.yaml in the current directory unless a
different path is given with --config. An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Validate a configuration file for syntax errors and invalid values.

This command checks:
  - YAML syntax
  - Base URL is absolute
  - Delays and timeouts are not negative
  - Log level is known`,
	Args: cobra.NoArgs,
	RunE: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(validateCmd)

	configCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is .wallgrab.yaml)")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		path = ".wallgrab.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("configuration file already exists: %s", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Configuration file created: %s\n", path)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "1. Edit the output directory or page delay if needed")
	fmt.Fprintln(out, "2. Run 'wallgrab config validate' to check the configuration")
	fmt.Fprintln(out, "3. Start downloading with 'wallgrab --start 1 --end 3'")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, nil)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(data))
	fmt.Fprintln(out, "\nConfiguration sources (in order of priority):")
	fmt.Fprintln(out, "1. Command line flags")
	fmt.Fprintln(out, "2. Environment variables (WALLGRAB_*)")
	if configFile != "" {
		fmt.Fprintf(out, "3. Configuration file: %s\n", configFile)
	} else {
		fmt.Fprintln(out, "3. Configuration file: (searched in default locations)")
	}
	fmt.Fprintln(out, "4. Default values")
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if configFile == "" {
		return errors.New("no configuration file given, specify one with --config")
	}

	cfg := config.DefaultConfig()
	if err := cfg.LoadFromFile(configFile); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration has errors:\n%w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Configuration is valid: %s\n", configFile)
	fmt.Fprintln(out, "\nConfiguration summary:")
	fmt.Fprintf(out, "  Site: %s\n", cfg.BaseURL())
	fmt.Fprintf(out, "  Output directory: %s\n", cfg.Output.Directory)
	fmt.Fprintf(out, "  Page delay: %s\n", cfg.Crawl.PageDelay)
	fmt.Fprintf(out, "  Log level: %s\n", cfg.Logging.Level)
	return nil
}
