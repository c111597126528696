package rewrite

import (
	"regexp"
	"strings"
)

var (
	// Tool paths, not file paths.
	gperfLHSRe = regexp.MustCompile(`^(GPERF|V_GPERF.*) =$`)

	// Variables the including Makefile.am may already set. Their values are
	// appended to rather than overwritten.
	accumulateLHSRe = regexp.MustCompile(
		`^(SUBDIRS|EXTRA_DIST|BUILT_SOURCES|SUFFIXES|MOSTLYCLEANFILES|CLEANFILES|` +
			`DISTCLEANFILES|MAINTAINERCLEANFILES|AM_GNU_GETTEXT)[ \t]*=$`,
	)

	// Global compile flags, which get scoped to the library.
	flagsLHSRe = regexp.MustCompile(`^AM_(CFLAGS|CPPFLAGS)[ \t]*\+?=$`)
)

// RewriteAssignment rewrites one assignment. lhsAndOp is the text from the
// start of the line through the operator ("libfoo_a_SOURCES =") and rhs is
// everything after it, leading whitespace and continuation lines included.
//
// The first matching rule decides what happens to the line:
//
//   - GPERF and V_GPERF* keep their value.
//   - HAVE_* variables are kept as they are.
//   - SUBDIRS, EXTRA_DIST, BUILT_SOURCES, SUFFIXES and the *CLEANFILES
//     variables (and AM_GNU_GETTEXT) switch from "=" to "+=".
//   - AM_CFLAGS and AM_CPPFLAGS become {libName}_a_CFLAGS and
//     {libName}_a_CPPFLAGS, seeded with the global value.
//   - AUTOMAKE_OPTIONS and SUFFIXES appends are commented out.
//   - Anything else has its value prefixed with [PrefixWords].
//
// Finally every occurrence of libName on the left hand side becomes
// lib_{libName}, the canonical name of the library once it lives in lib/.
func RewriteAssignment(lhsAndOp, rhs, prefix, libName string) string {
	switch {
	case gperfLHSRe.MatchString(lhsAndOp):
	case strings.HasPrefix(lhsAndOp, "HAVE_"):
	case accumulateLHSRe.MatchString(lhsAndOp):
		lhsAndOp = strings.TrimSuffix(lhsAndOp, "=") + "+="
	case flagsLHSRe.MatchString(lhsAndOp):
		flag := flagsLHSRe.FindStringSubmatch(lhsAndOp)[1]
		lhsAndOp = libName + "_a_" + flag + " ="
		rhs = " $(AM_" + flag + ")" + rhs
	case lhsAndOp == "AUTOMAKE_OPTIONS =",
		strings.HasPrefix(lhsAndOp, "SUFFIXES "):
		lhsAndOp = "# " + lhsAndOp
	default:
		rhs = PrefixWords(rhs, prefix)
	}

	if libName != "" {
		lhsAndOp = strings.ReplaceAll(lhsAndOp, libName, "lib_"+libName)
	}

	return lhsAndOp + rhs
}
