package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"

	parboiled "github.com/satabin/parboiled2"
	"github.com/satabin/parboiled2/calc"
)

// Context carries the global flags into the commands.
type Context struct {
	NoColor  bool
	Messages string
}

// EvalCmd parses and evaluates one arithmetic expression.
type EvalCmd struct {
	Expr string `arg:"" help:"Arithmetic expression, e.g. '2*(3+4)'"`
}

func (cmd *EvalCmd) Run(ctx *Context) error {
	messages, err := loadMessages(ctx.Messages)
	if err != nil {
		return fmt.Errorf("can't load messages file: %w", err)
	}

	input := parboiled.NewTextInput(cmd.Expr)
	value, err := calc.Parse(input)
	if err != nil {
		var perr *parboiled.ParseError
		if errors.As(err, &perr) {
			formatter := &parboiled.Formatter{
				Color:    !ctx.NoColor && !color.NoColor,
				Messages: messages,
			}
			fmt.Fprint(os.Stderr, formatter.Format(perr, input))
			os.Exit(1)
		}
		return err
	}

	fmt.Println(value)
	return nil
}

// loadMessages reads a YAML map of rule names to the message shown for
// that rule in diagnostics.
func loadMessages(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	messages := map[string]string{}
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

var cli struct {
	NoColor  bool    `help:"Disable colored diagnostics."`
	Messages string  `help:"YAML file mapping rule names to custom error messages." type:"existingfile" optional:""`
	Eval     EvalCmd `cmd:"" help:"Parse and evaluate an arithmetic expression."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("parboiled"),
		kong.Description("Backtracking PEG parsing engine demo."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&Context{NoColor: cli.NoColor, Messages: cli.Messages})
	ctx.FatalIfErrorf(err)
}
