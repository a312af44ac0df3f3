package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/nota-format/nota/encode"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := convertFile(cfg, cc, cc.Out, file); err != nil {
			return fmt.Errorf("error converting %s: %w", file, err)
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n---\n"))
		}
	}
	return nil
}

func convertFile(cfg *ConvertConfig, cc *cli.Context, w io.Writer, file string) error {
	doc, err := loadDocument(cc, file)
	if err != nil {
		return err
	}
	if len(doc.diags) > 0 {
		if err := doc.printDiags(cc.Out); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	return encode.Encode(doc.root, w, cfg.encOpts(w)...)
}
