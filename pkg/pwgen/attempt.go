package pwgen

import (
	"strconv"
	"strings"
)

const (
	// uppercaseThreshold: a fragment is capitalised when Float64() exceeds it (p = 0.7).
	uppercaseThreshold = 0.3
	// digitThreshold: a digit is inserted when Float64() is below it (p = 0.3).
	digitThreshold = 0.3
	// vowelRepeatThreshold is compared against a full-range Int() draw, so a
	// second vowel in a row is only chosen when that draw is exactly zero.
	vowelRepeatThreshold = 0.3
)

// attempt runs one pass of the phoneme walk. It returns false when the
// finished candidate lacks a requested uppercase letter or digit.
// Callers must validate req and hold exclusive access to src.
func attempt(src Source, req Request) (string, bool) {
	var (
		sb        strings.Builder
		prev      Category
		first     = true
		haveUpper bool
		haveDigit bool
		want      = pickStart(src)
	)
	sb.Grow(req.Length)

	for sb.Len() < req.Length {
		p := phonemes[src.IntN(len(phonemes))]
		frag := p.Fragment

		if !p.Category.Has(want) {
			continue
		}
		if first && p.Category.Has(NotFirst) {
			continue
		}
		if prev.Has(Vowel) && p.Category.Has(Vowel) && p.Category.Has(Diphthong) {
			continue
		}
		if sb.Len()+len(frag) > req.Length {
			continue
		}

		if req.Uppercase && !haveUpper {
			if (first || p.Category.Has(Consonant)) && src.Float64() > uppercaseThreshold {
				frag = strings.ToUpper(frag[:1]) + frag[1:]
				haveUpper = true
			}
		}

		sb.WriteString(frag)

		// The digit takes one character, so it is only offered while there is room.
		if req.Digit && !haveDigit && !first && sb.Len() < req.Length {
			if src.Float64() < digitThreshold {
				sb.WriteString(strconv.Itoa(src.IntN(10)))
				haveDigit = true
				first = true
				prev = 0
				want = pickStart(src)
				continue
			}
		}

		if want == Consonant {
			want = Vowel
		} else {
			if prev.Has(Vowel) || p.Category.Has(Diphthong) || float64(src.Int()) > vowelRepeatThreshold {
				want = Consonant
			} else {
				want = Vowel
			}
		}
		prev = p.Category
		first = false
	}

	if (req.Uppercase && !haveUpper) || (req.Digit && !haveDigit) {
		return "", false
	}
	return sb.String(), true
}

func pickStart(src Source) Category {
	if src.Float64() < 0.5 {
		return Vowel
	}
	return Consonant
}
