package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dircomp/internal/config"
	"dircomp/internal/log"
)

var (
	cfgFile string
	debug   bool
	jsonLog bool
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dircomp",
	Short: "Classify and compare directory trees",
	Long: `dircomp classifies filesystem entries into a uniform, comparable
representation and flattens directory subtrees into deterministic,
depth-tagged listings, the groundwork for comparing two trees
side by side.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var configErr error
		if cfgFile != "" {
			cfg, configErr = config.LoadConfigFile(cfgFile)
		} else {
			cfg, configErr = config.LoadConfig()
		}
		if configErr != nil {
			fmt.Printf("Warning: %v\n", configErr)
			fmt.Println("Using default settings.")
			cfg = config.New()
		}

		if debug || cfg.Settings.Debug {
			log.SetDebug(true)
		}
		if jsonLog || cfg.Settings.JSONLog {
			log.Configure(log.WithJSON())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dircomp/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "emit JSON-formatted log lines")
}
