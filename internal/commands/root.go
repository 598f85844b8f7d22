package commands

import (
	"github.com/spf13/cobra"

	"taskboard/internal/config"
	"taskboard/internal/tui"
)

var (
	configPath string
	apiURL     string
)

var rootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Terminal client for the taskboard API",
	Long: `taskboard is the terminal client for the task store: a task table with
search and paging, a month calendar of due dates, and the team roster.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if apiURL != "" {
			cfg.Client.APIURL = apiURL
		}
		return tui.Run(cfg)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "task store base URL (overrides config)")
}
