package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/nota-format/nota/encode"
	"github.com/nota-format/nota/keys"
	"github.com/nota-format/nota/query"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted key", cli.ErrUsage)
	}
	keyArg := args[0]
	var ks keys.Keys
	if keyArg != "." {
		ks, err = keys.Parse(keyArg)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	var q *query.Query
	if cfg.Where != "" {
		q, err = query.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := getFile(cfg, cc, ks, q, file); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, keyArg, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, ks keys.Keys, q *query.Query, file string) error {
	doc, err := loadDocument(cc, file)
	if err != nil {
		return err
	}
	n := ks.Resolve(doc.root)
	if n == nil {
		return fmt.Errorf("no value at %q", ks.String())
	}
	opts := cfg.encOpts(cc.Out)
	if q == nil {
		return encode.Encode(n, cc.Out, opts...)
	}
	results, err := q.Select(n)
	if err != nil {
		return err
	}
	for _, res := range results {
		at := append(append(keys.Keys(nil), ks...), res.Key...)
		fmt.Fprintf(cc.Out, "%s: ", at)
		wOpts := append(opts, encode.Compact(true))
		if err := encode.Encode(res.Node, cc.Out, wOpts...); err != nil {
			return err
		}
	}
	return nil
}
