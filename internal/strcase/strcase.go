// Package strcase splits identifiers into words.
package strcase

import (
	"unicode"
)

type runeClass int

const (
	classNone runeClass = iota
	classLower
	classUpper
	classDigit
	classOther
)

func classify(r rune) runeClass {
	switch {
	case unicode.IsLower(r):
		return classLower
	case unicode.IsUpper(r):
		return classUpper
	case unicode.IsDigit(r):
		return classDigit
	default:
		return classOther
	}
}

// Split a string into words on case changes, digits and punctuation.
//
// Punctuation is preserved as its own word, eg. "snake_case" -> ["snake", "_", "case"], and a trailing
// run of upper case letters is kept together as an acronym, eg. "UpperCamelAPI" -> ["Upper", "Camel", "API"].
func Split(s string) []string {
	if s == "" {
		return nil
	}
	runs := [][]rune{}
	last := classNone
	for _, r := range s {
		class := classify(r)
		if class == last {
			runs[len(runs)-1] = append(runs[len(runs)-1], r)
		} else {
			runs = append(runs, []rune{r})
		}
		last = class
	}
	// "HTTPServer" -> ["HTTP", "Server"]: the last upper case rune of a run belongs to the following lower case word.
	for i := 0; i < len(runs)-1; i++ {
		if unicode.IsUpper(runs[i][0]) && unicode.IsLower(runs[i+1][0]) {
			upper := runs[i][len(runs[i])-1]
			runs[i+1] = append([]rune{upper}, runs[i+1]...)
			runs[i] = runs[i][:len(runs[i])-1]
		}
	}
	out := make([]string, 0, len(runs))
	for _, run := range runs {
		if len(run) > 0 {
			out = append(out, string(run))
		}
	}
	return out
}
