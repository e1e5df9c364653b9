package cmd

import (
	"fmt"
	"os"

	"tagGallery/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the tagGallery config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config to --config or $HOME/.tagGallery.yaml",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, err := configInitPath()
		if err != nil {
			logrus.Fatal(err)
		}
		if _, err := os.Stat(path); err == nil {
			logrus.Fatalf("Config already exists: %s", path)
		}
		if err := config.CreateDefaultConfig(path); err != nil {
			logrus.Fatalf("Failed to write config: %v", err)
		}
		fmt.Println("Wrote", path)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		out, err := yaml.Marshal(cfg.Settings())
		if err != nil {
			logrus.Fatal(err)
		}
		os.Stdout.Write(out)
	},
}

// configInitPath is where config init writes: the --config file when given,
// the default location otherwise.
func configInitPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.GetConfigPath()
}

func init() {
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
