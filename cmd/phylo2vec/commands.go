package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/phylo2vec"
	"github.com/katalvlaran/phylo2vec/newick"
	"github.com/katalvlaran/phylo2vec/vector"
)

var (
	numLeavesFlag = &cli.IntFlag{
		Name:    "num-leaves",
		Usage:   "Number of leaves (counted from the text when omitted)",
		Value:   phylo2vec.UnknownLeaves,
		EnvVars: []string{"PHYLO2VEC_NUM_LEAVES"},
	}
	taxaFlag = &cli.BoolFlag{
		Name:    "taxa",
		Usage:   "Leaves are taxon names; print the integer mapping as well",
		EnvVars: []string{"PHYLO2VEC_TAXA"},
	}
	kFlag = &cli.IntFlag{
		Name:     "k",
		Usage:    "Vector length (the tree has k+1 leaves)",
		Required: true,
	}
	seedFlag = &cli.Int64Flag{
		Name:    "seed",
		Usage:   "Random seed (0 picks a fixed default, unset draws from the clock)",
		EnvVars: []string{"PHYLO2VEC_SEED"},
	}

	toNewickCommand = &cli.Command{
		Action:    toNewick,
		Name:      "to-newick",
		Usage:     "Convert an integer vector to a Newick string",
		ArgsUsage: "<v0> <v1> ... (e.g. 0 1 4)",
	}
	toVectorCommand = &cli.Command{
		Action:    toVector,
		Name:      "to-vector",
		Usage:     "Convert a Newick string to an integer vector",
		ArgsUsage: "<newick>",
		Flags:     []cli.Flag{numLeavesFlag, taxaFlag},
	}
	sampleCommand = &cli.Command{
		Action: sample,
		Name:   "sample",
		Usage:  "Draw a uniformly random vector and its Newick string",
		Flags:  []cli.Flag{kFlag, seedFlag},
	}
)

func toNewick(ctx *cli.Context) error {
	v, err := vector.Parse(splitArgs(ctx.Args().Slice()))
	if err != nil {
		log.Error("Could not parse the vector", "err", err)
		return cli.Exit(err, 1)
	}
	log.Debug("Encoding vector", "k", len(v), "leaves", v.NumLeaves())

	nw, err := phylo2vec.ToNewick(v)
	if err != nil {
		log.Error("Encoding failed", "err", err)
		return cli.Exit(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "Newick string: %s\n", nw)
	return nil
}

func toVector(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit(fmt.Sprintf("required arguments: %v", ctx.Command.ArgsUsage), 1)
	}
	text := ctx.Args().Get(0)
	n := ctx.Int(numLeavesFlag.Name)

	decode := phylo2vec.Newick2V
	if ctx.Bool(taxaFlag.Name) {
		decode = phylo2vec.Newick2VWithMapping
	}
	res, err := decode(text, n)
	if err != nil {
		log.Error("Decoding failed", "num-leaves", n, "err", err)
		return cli.Exit(err, 1)
	}
	log.Debug("Decoded tree", "leaves", res.NumLeaves)

	fmt.Fprintf(ctx.App.Writer, "Integer vector: %s\n", joinInts(res.V))
	if res.Mapping != nil {
		fmt.Fprint(ctx.App.Writer, formatMapping(res.Mapping))
	}
	return nil
}

func sample(ctx *cli.Context) error {
	var opts []vector.Option
	if ctx.IsSet(seedFlag.Name) {
		opts = append(opts, vector.WithSeed(ctx.Int64(seedFlag.Name)))
	}

	v, err := phylo2vec.Sample(ctx.Int(kFlag.Name), opts...)
	if err != nil {
		log.Error("Sampling failed", "k", ctx.Int(kFlag.Name), "err", err)
		return cli.Exit(err, 1)
	}
	nw, err := phylo2vec.ToNewick(v)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintf(ctx.App.Writer, "Integer vector: %s\n", joinInts(v))
	fmt.Fprintf(ctx.App.Writer, "Newick string: %s\n", nw)
	return nil
}

// splitArgs accepts "0 1 4", "0,1,4" or separate arguments alike.
func splitArgs(args []string) []string {
	var fields []string
	for _, a := range args {
		fields = append(fields, strings.FieldsFunc(a, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})...)
	}
	return fields
}

func joinInts(v vector.Vector) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}

// formatMapping prints one "label<TAB>taxon" line per leaf, by label.
func formatMapping(m newick.Mapping) string {
	var sb strings.Builder
	for _, k := range m.Labels() {
		fmt.Fprintf(&sb, "%d\t%s\n", k, m[k])
	}
	return sb.String()
}
