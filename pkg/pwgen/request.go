package pwgen

// DefaultLength is the password length used by DefaultRequest.
const DefaultLength = 8

// Request describes the shape of a password.
type Request struct {
	// Length is the maximum password length. The result may be shorter
	// when no remaining fragment fits.
	Length int
	// Uppercase requires exactly one capitalised fragment.
	Uppercase bool
	// Digit requires exactly one decimal digit.
	Digit bool
}

// DefaultRequest returns an 8 character request with an uppercase letter and a digit.
func DefaultRequest() Request {
	return Request{Length: DefaultLength, Uppercase: true, Digit: true}
}

// Validate reports ErrInvalidLength for a non-positive length.
func (r Request) Validate() error {
	if r.Length <= 0 {
		return ErrInvalidLength
	}
	return nil
}
