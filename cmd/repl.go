package cmd

import (
	"github.com/Bike/scheme/repl"
	"github.com/spf13/cobra"
)

var (
	replPrompt  string
	replHistory string
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session.  Each line of input is read as one
expression and evaluated in the ground environment.  Errors are reported and
the session continues.  Enter Ctrl-D to exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.RunRepl(repl.Config{
			Prompt:      replPrompt,
			HistoryFile: replHistory,
		})
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", "> ",
		"Prompt displayed before each line of input")
	replCmd.Flags().StringVar(&replHistory, "history", "",
		"File in which to save input history")
}
