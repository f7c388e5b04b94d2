package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/Bike/scheme/pkg/eval"
	"github.com/Bike/scheme/pkg/ground"
	"github.com/Bike/scheme/pkg/reader"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] FILE...",
	Short: "Run lisp code",
	Long: `Run lisp code supplied via the command line or a file.  Every expression
is evaluated in the same ground environment, in order.  Evaluation stops at the
first error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := runReadSources(args)
		if err != nil {
			return err
		}
		env := ground.Ground()
		for i := range sources {
			exprs, err := reader.ReadAll(sources[i].text)
			if err != nil {
				return fmt.Errorf("%s: %w", sources[i].name, err)
			}
			for _, expr := range exprs {
				log.Printf("%s: %v", sources[i].name, expr)
				v, err := eval.EvalProtected(expr, env)
				if err != nil {
					return fmt.Errorf("%s: %w", sources[i].name, err)
				}
				if runPrint {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				}
			}
		}
		return nil
	},
}

type runSource struct {
	name string
	text string
}

func runReadSources(args []string) ([]runSource, error) {
	sources := make([]runSource, len(args))
	if runExpression {
		for i := range args {
			sources[i] = runSource{fmt.Sprintf("expression %d", i+1), args[i]}
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = runSource{path, string(b)}
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
