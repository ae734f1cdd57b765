// Command rdfa extracts RDFa statements from HTML documents.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "rdfa:", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "rdfa",
		Usage:     "extract RDFa statements from HTML",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration file"},
			&cli.StringFlag{Name: "base", Usage: "base IRI (default: the document's <base href>)"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output format: turtle, ntriples or jsonld"},
			&cli.StringSliceFlag{Name: "prefix", Usage: "extra prefix mapping as name=iri"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only log errors"},
		},
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "print every statement in the document",
				ArgsUsage: "FILE",
				Action:    extractAction,
			},
			{
				Name:      "find",
				Usage:     "list the nodes typed with an IRI",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Required: true, Usage: "type IRI or CURIE"},
					&cli.BoolFlag{Name: "all", Usage: "list every match, including nested ones"},
				},
				Action: findAction,
			},
			{
				Name:      "graph",
				Usage:     "print the pruned subgraph of the first matching node",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Usage: "type IRI or CURIE"},
					&cli.StringFlag{Name: "select", Aliases: []string{"s"}, Usage: "CSS selector"},
					&cli.StringFlag{Name: "store", Usage: "SQLite store to merge the subgraph into"},
				},
				Action: graphAction,
			},
		},
	}
}
