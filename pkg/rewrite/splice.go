package rewrite

import (
	"regexp"
	"strings"
)

// replaceSpans finds every non-overlapping match of re in s, maps each match
// through fn and splices the results back into s in order. Text between
// matches is copied unchanged.
//
// fn receives the submatches of one span; index 0 is the whole match and
// groups that did not participate are empty.
func replaceSpans(re *regexp.Regexp, s string, fn func(groups []string) string) string {
	spans := re.FindAllStringSubmatchIndex(s, -1)
	if len(spans) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	last := 0
	for _, span := range spans {
		b.WriteString(s[last:span[0]])
		b.WriteString(fn(submatches(s, span)))
		last = span[1]
	}

	b.WriteString(s[last:])

	return b.String()
}

func submatches(s string, span []int) []string {
	groups := make([]string, len(span)/2)
	for i := range groups {
		start, end := span[2*i], span[2*i+1]
		if start >= 0 && end >= 0 {
			groups[i] = s[start:end]
		}
	}

	return groups
}
