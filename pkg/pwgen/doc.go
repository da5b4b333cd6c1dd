// Package pwgen generates pronounceable random passwords.
//
// A password is built by walking a fixed table of short phonetic fragments
// ("phonemes") such as "a", "ch", "oo" or "qu". Every fragment carries a
// Category bitset (Consonant or Vowel, optionally Diphthong and NotFirst) and
// the walk alternates between consonants and vowels under a few adjacency
// rules, which keeps the output easy to read aloud while still random.
//
// # Rules
//
//   - A fragment flagged NotFirst ("gh", "ng") never opens the password.
//   - A vowel diphthong never directly follows a vowel.
//   - A fragment is only used when it fits in the remaining length, so the
//     result may be shorter than the requested length.
//   - When requested, one fragment is capitalised (the first fragment or a
//     consonant) and one digit is inserted after a fragment. The walk restarts
//     after the digit as if it were the start of a new password.
//
// A single attempt that misses a requested uppercase letter or digit is
// discarded and a fresh one is started. By default the generator retries
// without limit, so requests that can never be satisfied (a digit with a
// length of 1) block forever. Use WithMaxAttempts or Run with a context to
// bound it.
//
// # Randomness
//
// The generator draws from a Source. New uses a crypto/rand backed source;
// NewSeededSource returns a reproducible one for tests and fixtures. Any
// *math/rand/v2.Rand is a valid Source.
//
// # Usage
//
//	import "github.com/dmitrymomot/pwgen/pkg/pwgen"
//
//	pw, err := pwgen.Generate(8, true, true) // e.g. "Achae7tu"
//	if err != nil {
//	    // only pwgen.ErrInvalidLength is possible here
//	}
//
// With options:
//
//	g := pwgen.New(pwgen.WithMaxAttempts(1000))
//	res, err := g.Run(ctx, pwgen.Request{Length: 12, Uppercase: true, Digit: true})
//	if errors.Is(err, pwgen.ErrMaxAttemptsExceeded) {
//	    // give up
//	}
//	fmt.Println(res.Password, res.Attempts)
//
// Generator is safe for concurrent use.
package pwgen
