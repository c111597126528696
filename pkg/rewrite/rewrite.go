package rewrite

import (
	"regexp"
	"strings"
)

var mkdirPArgRe = regexp.MustCompile(`(\$\(MKDIR_P\)[ \t]+)([A-Za-z0-9_])`)

// Transform rewrites the fragment content so that it can be included from
// the parent directory. prefix is the fragment's directory with a trailing
// "/" (e.g. "lib/") and libName the library base name (e.g. "libfoo").
//
// The passes run in a fixed order, each over the whole document:
//
//  1. every rule line is prefixed, targets and prerequisites alike;
//  2. every assignment goes through [RewriteAssignment];
//  3. "$(srcdir)/" becomes "$(top_srcdir)/{prefix}";
//  4. "t-$@" becomes "$@-t", so temporary files stay next to their target;
//  5. "@MKDIR_P@" becomes "$(MKDIR_P)";
//  6. the directory argument of "$(MKDIR_P) dir" is prefixed.
//
// Transform never fails. Input that does not look like a generated fragment
// yields deterministic but possibly unhelpful output.
func Transform(content, prefix, libName string) string {
	content = replaceSpans(ruleLineRe, content, func(groups []string) string {
		return PrefixWords(groups[0], prefix)
	})

	content = replaceSpans(assignmentLineRe, content, func(groups []string) string {
		return RewriteAssignment(groups[1], groups[2], prefix, libName)
	})

	content = strings.ReplaceAll(content, "$(srcdir)/", "$(top_srcdir)/"+prefix)
	content = strings.ReplaceAll(content, "t-$@", "$@-t")
	content = strings.ReplaceAll(content, "@MKDIR_P@", "$(MKDIR_P)")

	return replaceSpans(mkdirPArgRe, content, func(groups []string) string {
		return groups[1] + prefix + groups[2]
	})
}
