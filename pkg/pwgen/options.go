package pwgen

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. Nil sources are ignored.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithMaxAttempts bounds the number of attempts per password.
// Zero or a negative value keeps the default unbounded retry.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n < 0 {
			n = 0
		}
		g.maxAttempts = n
	}
}
