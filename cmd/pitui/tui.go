package main

import (
	"github.com/spf13/cobra"

	"pitui/internal/config"
	"pitui/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive form",
	Long: `Launch the interactive terminal form.

Type a whole number between 0 and 100 and press enter to see π rounded
to that many decimal places. Edits to the config file are picked up live.

Key bindings:
  enter       Show π at the requested precision
  ctrl+t      Toggle light/dark theme
  ctrl+r      Browse this session's results
  ctrl+g      Expand help
  esc         Back / quit
  ctrl+c      Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Watch the effective config path for hot reload
	configPath := globalOpts.configPath
	if configPath == "" {
		configPath = config.ConfigPath()
	}

	return tui.Run(tui.RunOptions{
		Config:        getConfig(),
		ConfigPath:    configPath,
		ThemeOverride: globalOpts.theme,
	})
}
