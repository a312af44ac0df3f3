package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nota-format/nota/encode"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && cfg.Diff {
		return fmt.Errorf("%w: -d and -w are mutually exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	changed := false
	for _, file := range args {
		if cfg.Write && file == "-" {
			return fmt.Errorf("%w: cannot use -w with stdin", cli.ErrUsage)
		}
		doc, err := loadDocument(cc, file)
		if err != nil {
			return err
		}
		out := encode.Reformat(doc.src)
		if bytes.Equal(out, doc.src) {
			continue
		}
		changed = true
		switch {
		case cfg.Diff:
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(string(doc.src), string(out), false)
			fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
		case cfg.Write:
			if err := os.WriteFile(file, out, 0644); err != nil {
				return fmt.Errorf("error writing %q: %w", file, err)
			}
		default:
			if _, err := cc.Out.Write(out); err != nil {
				return err
			}
		}
	}
	if changed && cfg.Diff {
		return cli.ExitCodeErr(1)
	}
	return nil
}
