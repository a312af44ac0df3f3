package main

import (
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := false
	for _, file := range args {
		doc, err := loadDocument(cc, file)
		if err != nil {
			return err
		}
		if len(doc.diags) == 0 {
			continue
		}
		bad = true
		if cfg.Quiet {
			continue
		}
		if err := doc.printDiags(cc.Out); err != nil {
			return err
		}
	}
	if bad {
		return cli.ExitCodeErr(1)
	}
	return nil
}
