package rewrite

import (
	"regexp"
	"strings"
)

var (
	tokenRe    = regexp.MustCompile(`\S+`)
	macroRefRe = regexp.MustCompile(`^\$\([A-Za-z0-9_]+\)`)
)

// PrefixWord returns prefix+token, unless token is a flag ("-DFOO"), starts
// with a macro reference ("$(srcdir)/x.c"), or is one of "Makefile", "\" or
// "@ALLOCA@". prefix is expected to carry its own trailing separator.
func PrefixWord(token, prefix string) string {
	if keepWord(token) {
		return token
	}

	return prefix + token
}

func keepWord(token string) bool {
	switch token {
	case "Makefile", `\`, "@ALLOCA@":
		return true
	}

	return strings.HasPrefix(token, "-") || macroRefRe.MatchString(token)
}

// PrefixWords applies [PrefixWord] to every whitespace-delimited token in
// text. The whitespace between tokens, newlines included, is preserved.
func PrefixWords(text, prefix string) string {
	return tokenRe.ReplaceAllStringFunc(text, func(token string) string {
		return PrefixWord(token, prefix)
	})
}
