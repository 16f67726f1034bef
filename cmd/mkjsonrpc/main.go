package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/mattias-p/mkjson"
	"github.com/mattias-p/mkjson/encode"
	"github.com/mattias-p/mkjson/token"
)

type Config struct {
	Method string // "method" member as JSON text
	ID     string // "id" member as JSON text, empty to omit

	Main *cli.Command
}

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	opts := []*cli.Opt{
		{
			Name:        "method",
			Aliases:     []string{"m"},
			Description: "\"method\" value: a bare identifier or a quoted json string",
			Type:        cli.NamedFuncOpt(cfg.methodOpt, "(name)"),
		},
		{
			Name:        "id",
			Aliases:     []string{"i"},
			Description: "\"id\" value: a string, a number, :null, or :omit (default)",
			Type:        cli.NamedFuncOpt(cfg.idOpt, "(id)"),
		},
	}
	return cli.NewCommandAt(&cfg.Main, "mkjsonrpc").
		WithSynopsis("mkjsonrpc -method <name> [-id <id>] [directive ...]").
		WithDescription("mkjsonrpc composes a json-rpc 2.0 request whose params member is built from path directives.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func (cfg *Config) methodOpt(cc *cli.Context, a string) (any, error) {
	switch {
	case !token.NeedsQuote(a):
		cfg.Method = `"` + a + `"`
	case strings.HasPrefix(a, `"`):
		if err := token.JSONSpan(a, 1); err != nil {
			return nil, fmt.Errorf("%w: method: %s", cli.ErrUsage, err)
		}
		cfg.Method = a
	default:
		return nil, fmt.Errorf("%w: method must be a string", cli.ErrUsage)
	}
	return a, nil
}

func (cfg *Config) idOpt(cc *cli.Context, a string) (any, error) {
	switch {
	case a == ":omit":
		cfg.ID = ""
	case a == ":null":
		cfg.ID = "null"
	case !token.NeedsQuote(a):
		cfg.ID = `"` + a + `"`
	case strings.HasPrefix(a, `"`) || (a != "" && a[0] >= '0' && a[0] <= '9'):
		if err := token.JSONSpan(a, 1); err != nil {
			return nil, fmt.Errorf("%w: id: %s", cli.ErrUsage, err)
		}
		cfg.ID = a
	default:
		return nil, fmt.Errorf("%w: id must be a string, a number, ':null' or ':omit'", cli.ErrUsage)
	}
	return a, nil
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Method == "" {
		return fmt.Errorf("%w: -method is required", cli.ErrUsage)
	}
	directives := make([][]byte, len(args))
	for i, arg := range args {
		directives[i] = []byte(arg)
	}
	params, err := mkjson.ComposeBytes(directives)
	if err != nil {
		return inputError(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(request(cfg.Method, cfg.ID, params), buf); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, buf.String())
	return err
}

func inputError(err error) error {
	msg := fmt.Sprintf("input error: %s", err)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		msg = color.RedString("%s", msg)
	}
	fmt.Fprintln(os.Stderr, msg)
	return cli.ExitCodeErr(2)
}
