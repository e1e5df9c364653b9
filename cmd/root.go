package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"tagGallery/config"
	"tagGallery/fetcher"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	verbose   bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "tagGallery",
	Short: "A terminal gallery for a media tagging server",
	Long: `tagGallery browses the images and videos stored on a tagging server.

Features:
- Thumbnail grid that only loads what is on screen
- Detail pane with tag editing
- Tag filter, copy filename or full path
- Bulk rename of every file to its SHA256

Examples:
  tagGallery tui
  tagGallery list --tag cat
  tagGallery tag add <sha256> sunset
  tagGallery rename-all`,
	Version: "1.0.0",
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tagGallery.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "gallery server url (overrides server_url)")
	viper.BindPFlag("server_url", rootCmd.PersistentFlags().Lookup("server"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// loadConfig reads the config file, environment and flags. Commands cannot
// run without it, so failures end the process.
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if verbose && viper.ConfigFileUsed() != "" {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
	if !verbose {
		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			logrus.SetLevel(level)
		}
	}
	return cfg
}

func newClient(cfg *config.Config) fetcher.GalleryFetcher {
	client, err := fetcher.NewGalleryFetcher(cfg.ServerURL, cfg.RequestTimeout)
	if err != nil {
		logrus.Fatal(err)
	}
	return client
}
