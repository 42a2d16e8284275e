package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/sambeau/ucum/pkg/ucum/ucum"
)

const prompt = "ucum> "

const logo = `
█░█ █▀▀ █░█ █▀▄▀█
█▄█ █▄▄ █▄█ █░▀░█`

// runREPL reads unit expressions and conversion requests from stdin,
// in the same liner-driven, history-persisting shape as
// github.com/sambeau/basil's pkg/parsley/repl.
func runREPL(sys *ucum.System, version string) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".ucum_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(os.Stdout, logo)
	fmt.Fprintln(os.Stdout, "v", version)
	fmt.Fprintln(os.Stdout, "Enter a unit expression, or '<value> <from> to <to> [mw]'. Ctrl+D to quit.")

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if input == "exit" || input == "quit" {
			return
		}
		evalLine(sys, input)
	}
}

func evalLine(sys *ucum.System, input string) {
	fields := strings.Fields(input)
	if len(fields) >= 4 && fields[2] == "to" {
		evalConversion(sys, fields)
		return
	}
	r := sys.Validate(input)
	if !r.Valid {
		fmt.Println("invalid:", r.Err)
		for _, s := range r.Suggestions {
			fmt.Println("  did you mean:", s)
		}
		return
	}
	fmt.Println("valid:", r.CanonicalCode)
	for _, a := range r.Advisories {
		fmt.Println("note:", a)
	}
}

// evalConversion handles "<value> <from> to <to> [molecularWeight]".
func evalConversion(sys *ucum.System, fields []string) {
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		fmt.Println("invalid value:", fields[0])
		return
	}
	from, to := fields[1], fields[3]
	var mw float64
	if len(fields) >= 5 {
		mw, _ = strconv.ParseFloat(fields[4], 64)
	}
	v, r := sys.ConvertUnitTo(value, from, to, mw)
	if r.Err != nil {
		fmt.Println("error:", r.Err)
		return
	}
	fmt.Println(v, to)
}
