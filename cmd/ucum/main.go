// Command ucum is a CLI for validating and converting UCUM unit
// expressions, structured the way github.com/sambeau/basil's cmd/pars
// dispatches subcommands ahead of flag.Parse.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/sambeau/ucum/pkg/ucum/ucum"
)

// Version is set at compile time via -ldflags.
var Version = "0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "validate":
			validateCommand(os.Args[2:])
			return
		case "convert":
			convertCommand(os.Args[2:])
			return
		case "base":
			baseCommand(os.Args[2:])
			return
		case "synonyms":
			synonymsCommand(os.Args[2:])
			return
		case "repl":
			replCommand(os.Args[2:])
			return
		case "-V", "--version":
			fmt.Printf("ucum version %s\n", Version)
			return
		case "-h", "--help":
			printHelp()
			return
		}
	}
	printHelp()
	os.Exit(2)
}

func printHelp() {
	fmt.Printf(`ucum - UCUM unit expression validator and converter, version %s

Usage:
  ucum validate [--overlay FILE] <expr>
  ucum convert [--overlay FILE] [--mw N] <value> <from> <to>
  ucum base [--overlay FILE] <value> <expr>
  ucum synonyms [--overlay FILE] <atom>
  ucum repl [--overlay FILE] [--watch]

Commands:
  validate    Report whether <expr> is a well-formed UCUM expression
  convert     Convert <value> from one unit expression to another
  base        Rewrite <value> <expr> into its coherent base-unit form
  synonyms    Look up an atom's display name, guidance, and synonyms
  repl        Interactive read-eval-print loop

Options:
  --overlay FILE   Merge a YAML atom overlay onto the builtin catalog
  --watch          Hot-reload the overlay file on change (repl only)
  --mw N           Molecular weight in g/mol, for mass/substance bridging
`, Version)
}

func newSystem(overlay string) (*ucum.System, error) {
	if overlay == "" {
		return ucum.New(ucum.StdoutLogger()), nil
	}
	return ucum.NewFromOverlay(overlay, ucum.StdoutLogger())
}

func validateCommand(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	overlay := fs.String("overlay", "", "overlay YAML file")
	fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ucum validate [--overlay FILE] <expr>")
		os.Exit(2)
	}
	sys, err := newSystem(*overlay)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	r := sys.Validate(fs.Arg(0))
	if !r.Valid {
		fmt.Fprintln(os.Stderr, r.Err)
		for _, s := range r.Suggestions {
			fmt.Fprintln(os.Stderr, "  did you mean:", s)
		}
		os.Exit(1)
	}
	fmt.Println(r.CanonicalCode)
	for _, a := range r.Advisories {
		fmt.Fprintln(os.Stderr, "note:", a)
	}
}

func convertCommand(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	overlay := fs.String("overlay", "", "overlay YAML file")
	mw := fs.Float64("mw", 0, "molecular weight in g/mol")
	fs.Parse(args)
	if fs.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "usage: ucum convert [--overlay FILE] [--mw N] <value> <from> <to>")
		os.Exit(2)
	}
	value, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid value:", fs.Arg(0))
		os.Exit(2)
	}
	sys, err := newSystem(*overlay)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	v, r := sys.ConvertUnitTo(value, fs.Arg(1), fs.Arg(2), *mw)
	if r.Err != nil {
		fmt.Fprintln(os.Stderr, r.Err)
		os.Exit(1)
	}
	fmt.Println(v)
}

func baseCommand(args []string) {
	fs := flag.NewFlagSet("base", flag.ExitOnError)
	overlay := fs.String("overlay", "", "overlay YAML file")
	fs.Parse(args)
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: ucum base [--overlay FILE] <value> <expr>")
		os.Exit(2)
	}
	value, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid value:", fs.Arg(0))
		os.Exit(2)
	}
	sys, err := newSystem(*overlay)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	v, r := sys.ConvertToBaseUnits(value, fs.Arg(1))
	if r.Err != nil {
		fmt.Fprintln(os.Stderr, r.Err)
		os.Exit(1)
	}
	fmt.Printf("%v %s\n", v, r.CanonicalCode)
}

func synonymsCommand(args []string) {
	fs := flag.NewFlagSet("synonyms", flag.ExitOnError)
	overlay := fs.String("overlay", "", "overlay YAML file")
	fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ucum synonyms [--overlay FILE] <atom>")
		os.Exit(2)
	}
	sys, err := newSystem(*overlay)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	info := sys.CheckSynonyms(fs.Arg(0))
	if info == nil {
		fmt.Fprintln(os.Stderr, "no such atom:", fs.Arg(0))
		os.Exit(1)
	}
	fmt.Printf("%s\t%s\n", info.CS, info.Name)
	if info.Guidance != "" {
		fmt.Println("guidance:", info.Guidance)
	}
	if info.Category != "" {
		fmt.Println("category:", info.Category)
	}
	if info.Source != "" {
		fmt.Println("source:", info.Source)
	}
	for _, s := range info.Synonyms {
		fmt.Println("synonym:", s)
	}
}

func replCommand(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	overlay := fs.String("overlay", "", "overlay YAML file")
	watch := fs.Bool("watch", false, "hot-reload the overlay file on change")
	fs.Parse(args)

	sys, err := newSystem(*overlay)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *watch && *overlay != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := sys.WatchOverlay(ctx, *overlay); err != nil {
			fmt.Fprintln(os.Stderr, "watch:", err)
		}
	}

	runREPL(sys, Version)
}
