package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/bcalc/bcalc"
)

var cli struct {
	Debug  int      `short:"d" type:"counter" help:"Print the token stream before evaluating."`
	Push   bool     `short:"p" help:"Push the current branch for review after a successful evaluation."`
	Config string   `short:"c" type:"path" help:"Path to a yaml config file."`
	Expr   []string `arg:"" optional:"" help:"Whitespace-separated expression tokens, e.g. [ 3 + 4 ] x 2"`
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
}

func printWarning(err error) {
	fmt.Fprintln(os.Stderr, color.YellowString("warning: %v", err))
}

func evalAndPrint(args []string, debug int) error {
	tokens, err := bcalc.TokenizeArgs(args)
	if err != nil {
		return err
	}
	if debug > 0 {
		fmt.Fprintf(os.Stderr, "tokens: %v\n", tokens)
	}
	result, err := bcalc.Evaluate(tokens)
	if err != nil {
		return err
	}
	groups, indexes := bcalc.FormatBinary(result)
	fmt.Println(bcalc.FormatDecimal(result))
	fmt.Println(bcalc.FormatHex(result))
	fmt.Println(groups)
	fmt.Println(indexes)
	return nil
}

func repl(debug int) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := evalAndPrint(fields, debug); err != nil {
			printError(err)
		}
	}
}

func batch(debug int) bool {
	ok := true
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := evalAndPrint(fields, debug); err != nil {
			printError(err)
			ok = false
		}
	}
	return ok
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("bcalc"),
		kong.Description("Evaluate an integer expression and show the result in decimal, hex and binary."))

	config := bcalc.DefaultConfig()
	if cli.Config != "" {
		var err error
		config, err = bcalc.LoadConfig(cli.Config)
		kctx.FatalIfErrorf(err)
	}

	ok := true
	if len(cli.Expr) == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			repl(cli.Debug)
			return
		}
		ok = batch(cli.Debug)
	} else if err := evalAndPrint(cli.Expr, cli.Debug); err != nil {
		printError(err)
		ok = false
	}

	if ok && cli.Push {
		if err := bcalc.PushForReview(config); err != nil {
			printWarning(fmt.Errorf("review push failed: %v", err))
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}
}
