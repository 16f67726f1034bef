package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/mattias-p/mkjson"
	"github.com/mattias-p/mkjson/encode"
)

type Config struct {
	YAML bool `cli:"name=y aliases=yaml desc='render the document as yaml'"`

	Main *cli.Command
}

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "mkjson").
		WithSynopsis("mkjson [opts] [directive ...]").
		WithDescription("mkjson constructs json documents from path directives, e.g. a.b:true c.0.d=foobar.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	directives := make([][]byte, len(args))
	for i, arg := range args {
		directives[i] = []byte(arg)
	}
	node, err := mkjson.ComposeBytes(directives)
	if err != nil {
		return inputError(err)
	}
	if node == nil {
		// empty batch: no document
		return nil
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return err
	}
	if cfg.YAML {
		y, err := yaml.JSONToYAML(buf.Bytes())
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(y)
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
