package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sanjithdevineni/AoA-Project-1/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "evplan",
	Short: "EV charging stop planner",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file. When the default file is absent and
// no explicit path was given, built-in defaults are used instead.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) && !rootCmd.PersistentFlags().Changed("config") {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
