// Package debug gates trace output for the nota front end on NOTA_DEBUG_*
// environment variables.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lex     bool
	Parse   bool
	Project bool
	LSP     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("NOTA_DEBUG_LEX")
	d.Parse = boolEnv("NOTA_DEBUG_PARSE")
	d.Project = boolEnv("NOTA_DEBUG_PROJECT")
	d.LSP = boolEnv("NOTA_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Project() bool {
	return d.Project
}
func LSP() bool {
	return d.LSP
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
