package main

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/nota-format/nota/dom"
	"github.com/nota-format/nota/encode"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch and a file to which to apply it", cli.ErrUsage)
	}
	patchDoc, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	target, err := loadDocument(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	targetJSON := []byte(encode.MustString(target.root,
		encode.EncodeFormat(encode.JSONFormat),
		encode.Annotated(false),
		encode.Compact(true)))
	var patched []byte
	if cfg.Merge {
		patched, err = jsonpatch.MergePatch(targetJSON, patchDoc)
	} else {
		var p jsonpatch.Patch
		p, err = jsonpatch.DecodePatch(patchDoc)
		if err == nil {
			patched, err = p.Apply(targetJSON)
		}
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	var v any
	if err := json.Unmarshal(patched, &v); err != nil {
		return fmt.Errorf("error decoding patch result: %w", err)
	}
	res, err := dom.FromValue(v)
	if err != nil {
		return fmt.Errorf("error decoding patch result: %w", err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// getPatch loads the patch argument, as a literal document with -s and as
// a file path otherwise, and renders it as plain json for the patch
// library.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	var root *dom.Node
	if cfg.String {
		doc, diags := parseString(arg)
		if len(diags) > 0 {
			return nil, fmt.Errorf("%w: invalid patch %q", cli.ErrUsage, arg)
		}
		root = doc
	} else {
		doc, err := loadDocument(cc, arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if len(doc.diags) > 0 {
			return nil, fmt.Errorf("%w: invalid patch file %q", cli.ErrUsage, arg)
		}
		root = doc.root
	}
	s := encode.MustString(root,
		encode.EncodeFormat(encode.JSONFormat),
		encode.Annotated(false),
		encode.Compact(true))
	return []byte(strings.TrimSpace(s)), nil
}
