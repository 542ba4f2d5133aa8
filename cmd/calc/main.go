package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/parsec-go/parsec"
	"github.com/parsec-go/parsec/calc"
)

var cli struct {
	Trace      bool     `help:"Trace each combinator invocation to stderr."`
	Repr       bool     `help:"Dump the result with repr."`
	Expression []string `arg:"" help:"Expression to evaluate."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`A basic expression parser and evaluator.`),
	)
	var options []parsec.ParseOption
	if cli.Trace {
		options = append(options, parsec.WithTracer(parsec.Logging(os.Stderr)))
	}
	text := strings.Join(cli.Expression, " ")
	value, err := parsec.Parse(calc.Parser(), "<expression>", text, options...)
	kctx.FatalIfErrorf(err)
	if cli.Repr {
		repr.Println(value)
	} else {
		fmt.Println(value)
	}
}
