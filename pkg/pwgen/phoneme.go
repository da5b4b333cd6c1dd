package pwgen

// Category is a bitset of phonetic flags attached to a table fragment.
type Category uint8

const (
	Consonant Category = 1 << iota
	Vowel
	// Diphthong marks a two-letter cluster.
	Diphthong
	// NotFirst fragments may not open a password or a digit-separated segment.
	NotFirst
)

// Has reports whether c intersects flags.
func (c Category) Has(flags Category) bool {
	return c&flags != 0
}

// String returns the set flags joined by "|", or "none".
func (c Category) String() string {
	if c == 0 {
		return "none"
	}

	names := [...]string{"consonant", "vowel", "diphthong", "not_first"}
	var out string
	for i, name := range names {
		if c&(1<<i) == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += name
	}
	return out
}

// Phoneme is a fragment of a password with its category flags.
type Phoneme struct {
	Fragment string
	Category Category
}

var phonemes = [...]Phoneme{
	{"a", Vowel},
	{"ae", Vowel | Diphthong},
	{"ah", Vowel | Diphthong},
	{"ai", Vowel | Diphthong},
	{"b", Consonant},
	{"c", Consonant},
	{"ch", Consonant | Diphthong},
	{"d", Consonant},
	{"e", Vowel},
	{"ee", Vowel | Diphthong},
	{"ei", Vowel | Diphthong},
	{"f", Consonant},
	{"g", Consonant},
	{"gh", Consonant | Diphthong | NotFirst},
	{"h", Consonant},
	{"i", Vowel},
	{"ie", Vowel | Diphthong},
	{"j", Consonant},
	{"k", Consonant},
	{"l", Consonant},
	{"m", Consonant},
	{"n", Consonant},
	{"ng", Consonant | Diphthong | NotFirst},
	{"o", Vowel},
	{"oh", Vowel | Diphthong},
	{"oo", Vowel | Diphthong},
	{"p", Consonant},
	{"ph", Consonant | Diphthong},
	{"qu", Consonant | Diphthong},
	{"r", Consonant},
	{"s", Consonant},
	{"sh", Consonant | Diphthong},
	{"t", Consonant},
	{"th", Consonant | Diphthong},
	{"u", Vowel},
	{"v", Consonant},
	{"w", Consonant},
	{"x", Consonant},
	{"y", Consonant},
	{"z", Consonant},
}

// Phonemes returns a copy of the built-in phoneme table in draw order.
func Phonemes() []Phoneme {
	out := make([]Phoneme, len(phonemes))
	copy(out, phonemes[:])
	return out
}
