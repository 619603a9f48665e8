package util

import (
	"regexp"
	"strings"
)

var (
	answerPunctuation = regexp.MustCompile(`[.,!?;]`)
	answerWhitespace  = regexp.MustCompile(`\s+`)
)

// Order matters: the irregular negations must run before the generic n't rule.
var answerContractions = []struct{ from, to string }{
	{"won't", "will not"},
	{"can't", "can not"},
	{"shan't", "shall not"},
	{"n't", " not"},
	{"'re", " are"},
	{"'m", " am"},
	{"'ll", " will"},
	{"'ve", " have"},
	{"'d", " would"},
}

// NormalizeAnswer canonicalizes a free-text answer so that answers differing only
// in case, punctuation, spacing or contraction form compare equal.
// 'd always expands to "would".
func NormalizeAnswer(raw string) string {
	s := raw
	for {
		next := normalizeOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

// AnswersMatch reports whether two answers are equal after normalization.
func AnswersMatch(given, expected string) bool {
	return NormalizeAnswer(given) == NormalizeAnswer(expected)
}

func normalizeOnce(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, "’", "'")
	for _, c := range answerContractions {
		s = strings.ReplaceAll(s, c.from, c.to)
	}
	s = answerPunctuation.ReplaceAllString(s, "")
	s = answerWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
