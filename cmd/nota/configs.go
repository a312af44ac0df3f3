package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/nota-format/nota/encode"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Compact bool `cli:"name=compact desc='single-line output'"`
	Plain   bool `cli:"name=plain desc='drop annotations while encoding'"`

	N bool `cli:"name=n aliases=nota desc='output in nota'"`
	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	OutFormat *encode.Format
	Indent    int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) indentOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: invalid indent %q", cli.ErrUsage, a)
	}
	cfg.Indent = n
	return n, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) format() encode.Format {
	var f encode.Format
	switch {
	case cfg.N:
		f = encode.NotaFormat
	case cfg.J:
		f = encode.JSONFormat
	case cfg.Y:
		f = encode.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
		encode.Annotated(!cfg.Plain),
		encode.Compact(cfg.Compact),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress diagnostics, report via exit status'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Where string `cli:"name=where desc='filter expression over key, value, type, annotation'"`

	Get *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Diff  bool `cli:"name=d desc='print a diff instead of the formatted text'"`
	Write bool `cli:"name=w desc='write the result back to the file'"`

	Fmt *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Merge  bool `cli:"name=m desc='apply the patch as a merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}
