package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tomelist/tomelist/config"
	"github.com/tomelist/tomelist/log"
)

const greetingBanner = `
████████  ██████  ███    ███ ███████ ██      ██ ███████ ████████
   ██    ██    ██ ████  ████ ██      ██      ██ ██         ██
   ██    ██    ██ ██ ████ ██ █████   ██      ██ ███████    ██
   ██    ██    ██ ██  ██  ██ ██      ██      ██      ██    ██
   ██     ██████  ██      ██ ███████ ███████ ██ ███████    ██
`

var (
	configFile string
	dataDir    string

	rootCmd = &cobra.Command{
		Use:   "tomelist",
		Short: "Tomelist is a personal book tracker",
		Long:  greetingBanner + "\nTomelist keeps a personal book library in a plain CSV file.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		RunE: runList,
	}
)

func setup() error {
	if _, err := config.GetConfig(); err != nil {
		return err
	}
	if configFile != "" {
		if _, err := config.ParseFile(configFile); err != nil {
			return err
		}
	}
	if dataDir != "" {
		config.Opts.Data = dataDir
	}
	log.Logger = log.NewLogger()
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "D", "", "data directory (default ~/.tomelist)")

	rootCmd.AddCommand(listCmd, importCmd, addCmd, editCmd, rmCmd, showCmd)

	err := rootCmd.Execute()
	if log.Logger != nil {
		log.Logger.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}
