// Command phylo2vec converts between Phylo2Vec vectors and Newick strings.
//
//	phylo2vec to-newick 0 1 4
//	phylo2vec to-vector "(((2,1)4,0)5,3)6;" --num-leaves 4
//	phylo2vec to-vector "((human,chimp),gorilla);" --taxa
//	phylo2vec sample --k 10 --seed 42
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

var verbosityFlag = &cli.IntFlag{
	Name:    "verbosity",
	Usage:   "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
	Value:   3,
	EnvVars: []string{"PHYLO2VEC_VERBOSITY"},
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "phylo2vec",
		Usage: "Convert Newick strings to integer vectors and vice-versa",
		Flags: []cli.Flag{verbosityFlag},
		Commands: []*cli.Command{
			toNewickCommand,
			toVectorCommand,
			sampleCommand,
		},
		Before: func(ctx *cli.Context) error {
			setupLogging(ctx.Int(verbosityFlag.Name))
			return nil
		},
	}
}

// setupLogging routes the default logger to stderr at the given legacy
// verbosity; stdout carries results only.
func setupLogging(verbosity int) {
	handler := log.NewTerminalHandlerWithLevel(os.Stderr, log.FromLegacyLevel(verbosity), true)
	log.SetDefault(log.NewLogger(handler))
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
