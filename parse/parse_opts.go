package parse

// DefaultMaxDepth bounds container nesting. Constructs deeper than this are
// wrapped as error nodes instead of recursed into, keeping stack use and
// recovery time linear in the input.
const DefaultMaxDepth = 500

type ParseOption func(*parseOpts)

type parseOpts struct {
	maxDepth int
}

// MaxDepth overrides the nesting bound. n < 1 restores the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}
