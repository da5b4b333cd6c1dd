package pwgen

import (
	"context"
	"errors"
	"sync"
)

// Generator produces pronounceable passwords from the built-in phoneme table.
// It is safe for concurrent use: draws from its source are serialised per attempt.
type Generator struct {
	mu          sync.Mutex
	src         Source
	maxAttempts int
}

// Result is a generated password together with the number of attempts it took.
type Result struct {
	Password string
	Attempts int
}

var defaultGenerator = New()

// New returns a Generator using a crypto-backed source and unbounded retries
// unless overridden by opts.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = NewCryptoSource()
	}
	return g
}

// Generate returns a password of at most length characters using the default generator.
func Generate(length int, uppercase, digit bool) (string, error) {
	return defaultGenerator.Generate(Request{Length: length, Uppercase: uppercase, Digit: digit})
}

// Generate returns a password satisfying req.
//
// Without WithMaxAttempts it retries until an attempt succeeds. Requests that
// cannot be satisfied, such as a digit with Length 1, never return.
func (g *Generator) Generate(req Request) (string, error) {
	res, err := g.Run(context.Background(), req)
	if err != nil {
		return "", err
	}
	return res.Password, nil
}

// Run generates one password, checking ctx between attempts.
func (g *Generator) Run(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	for n := 1; g.maxAttempts == 0 || n <= g.maxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return Result{Attempts: n - 1}, errors.Join(ErrCanceled, err)
		}

		g.mu.Lock()
		pw, ok := attempt(g.src, req)
		g.mu.Unlock()

		if ok {
			return Result{Password: pw, Attempts: n}, nil
		}
	}

	return Result{Attempts: g.maxAttempts}, ErrMaxAttemptsExceeded
}

// GenerateN returns n independent passwords for req.
func (g *Generator) GenerateN(ctx context.Context, n int, req Request) ([]string, error) {
	if n <= 0 {
		return nil, ErrInvalidCount
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	out := make([]string, 0, n)
	for range n {
		res, err := g.Run(ctx, req)
		if err != nil {
			return nil, err
		}
		out = append(out, res.Password)
	}
	return out, nil
}
