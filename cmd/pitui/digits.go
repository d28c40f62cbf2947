package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"pitui/internal/adapter/output"
	"pitui/internal/pi"
)

var digitsOpts struct {
	format string
}

var digitsCmd = &cobra.Command{
	Use:   "digits <n>",
	Short: "Print π to n decimal places",
	Long: `Print π rounded to n decimal places without the TUI.

The argument is validated exactly like the interactive form: a whole
number between 0 and 100, inclusive.

Examples:
  pitui digits 5
  pitui digits 0 --output json
  pitui digits 100 --output yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runDigits,
}

func init() {
	rootCmd.AddCommand(digitsCmd)

	digitsCmd.Flags().StringVarP(&digitsOpts.format, "output", "o", "",
		"Output format (plain, json, yaml; default from config)")
}

func runDigits(cmd *cobra.Command, args []string) error {
	result, err := pi.Evaluate(args[0])
	if err != nil {
		return errors.New(pi.Message(err))
	}

	format := output.FormatType(digitsOpts.format)
	if digitsOpts.format == "" {
		format = output.FormatType(getConfig().Output.Format)
	}
	if !format.Valid() {
		return errors.New("output format must be one of: plain, json, yaml")
	}

	formatter := output.NewFormatter(format)
	return formatter.FormatSingle(os.Stdout, &result)
}
