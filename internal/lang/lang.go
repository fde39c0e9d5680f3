// Package lang holds the supported feed languages, their category labels and
// the handful of interface strings shown in each language.
package lang

import (
	"fmt"
	"strings"
)

// Language is one of the three supported feed languages.
type Language string

const (
	Bengali Language = "bn"
	English Language = "en"
	Hindi   Language = "hi"
)

// Default is used when no language was chosen or a stored value is invalid.
const Default = Bengali

// All lists the languages in the order they are offered to the reader.
var All = []Language{Bengali, English, Hindi}

// Category labels are parallel lists: index 0 is the "all news" label. The
// labels themselves are what gets filtered on and stored as preferences, so a
// preference saved under one language does not match in another.
var (
	categoriesBN = []string{"সব খবর", "স্মার্টফোন", "গ্যাজেট", "এআই", "অ্যাপস", "বিজ্ঞান", "ইন্টারনেট"}
	categoriesEN = []string{"All News", "Smartphones", "Gadgets", "AI", "Apps", "Science", "Internet"}
	categoriesHI = []string{"मुख्य समाचार", "स्मार्टफोन", "गैजेट्स", "एआई", "एप्स", "विज्ञान", "इंटरनेट"}
)

var names = map[Language]string{
	Bengali: "Bengali (Bangla)",
	English: "English",
	Hindi:   "Hindi",
}

var labels = map[Language]string{
	Bengali: "বাংলা",
	English: "English",
	Hindi:   "हिन्दी",
}

// Parse converts a language code such as "en" into a Language.
func Parse(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown language %q (valid: bn, en, hi)", s)
	}
	return l, nil
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := names[l]
	return ok
}

// Or returns l when it is valid and fallback otherwise.
func (l Language) Or(fallback Language) Language {
	if l.Valid() {
		return l
	}
	return fallback
}

// Name is the English name used when asking upstream to translate.
func (l Language) Name() string {
	return names[l.Or(Default)]
}

// Label is the language's own name, as shown on the language switcher.
func (l Language) Label() string {
	return labels[l.Or(Default)]
}

func (l Language) String() string { return string(l) }

// Next cycles through All.
func (l Language) Next() Language {
	for i, c := range All {
		if c == l {
			return All[(i+1)%len(All)]
		}
	}
	return Default
}

// Categories returns a copy of the category labels for l. Unknown languages
// get the Bengali list.
func Categories(l Language) []string {
	var src []string
	switch l {
	case English:
		src = categoriesEN
	case Hindi:
		src = categoriesHI
	default:
		src = categoriesBN
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// DefaultCategory is the "all news" label of l.
func DefaultCategory(l Language) string {
	return Categories(l)[0]
}

// IsAllCategory reports whether category is empty or l's "all news" label.
func IsAllCategory(l Language, category string) bool {
	return category == "" || category == DefaultCategory(l)
}

// PreferenceOptions are the labels a reader can pick as interests.
func PreferenceOptions(l Language) []string {
	return Categories(l)[1:]
}

// HasCategory reports whether label is one of l's categories.
func HasCategory(l Language, label string) bool {
	for _, c := range Categories(l) {
		if c == label {
			return true
		}
	}
	return false
}
