package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Bike/scheme/pkg/lisp"
	"github.com/Bike/scheme/pkg/reader"
	"github.com/spf13/cobra"
)

var rootVerbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scheme",
	Short: "A small Kernel-style lisp evaluator",
	Long: `A small lisp evaluator with first-class operatives in the style of
Kernel.  Expressions are evaluated in a ground environment providing cons, car,
cdr, eq?, if, quote and lambda.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFlags(0)
		log.SetPrefix("scheme: ")
		if rootVerbose {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(1)
	}
}

// errorMessage prefixes err with the kind of failure it represents.
// Internal errors carry their own prefix.
func errorMessage(err error) string {
	var rerr reader.Error
	var eerr lisp.EvalError
	switch {
	case errors.As(err, &rerr):
		return "read error: " + err.Error()
	case errors.As(err, &eerr):
		return "eval error: " + err.Error()
	}
	return err.Error()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false,
		"Log each expression as it is evaluated")
}
