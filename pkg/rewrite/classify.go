package rewrite

import (
	"regexp"
	"strings"
)

// Kind is the classification of a single fragment line.
type Kind int

const (
	// KindOther is any line the engine leaves alone (comments, recipes,
	// conditionals, suffix rules, blank lines).
	KindOther Kind = iota
	// KindRule is a "target.ext ...: prerequisites" line with at least one
	// prerequisite.
	KindRule
	// KindAssignment is a "NAME = value" or "NAME += value" line.
	KindAssignment
)

var (
	// ruleLineRe matches a rule whose first target has an extension and whose
	// prerequisite list is non-empty. A bare "target:" (suffix rules, phony
	// targets) does not match.
	ruleLineRe = regexp.MustCompile(
		`(?m)^[A-Za-z0-9_+./-]+\.[A-Za-z0-9_.-]+(?:[ \t]+[A-Za-z0-9_+./-]+)* *: *\S.*$`,
	)

	// assignmentLineRe captures the left hand side through the operator and
	// the value, including any backslash continuation lines.
	assignmentLineRe = regexp.MustCompile(
		`(?m)^([A-Za-z0-9_.]+[ \t]*\+?=)((?:[^\n]*\\\n)*[^\n]*)$`,
	)
)

func (k Kind) String() string {
	switch k {
	case KindRule:
		return "rule"
	case KindAssignment:
		return "assignment"
	case KindOther:
		return "other"
	}

	return "unknown"
}

// Classify reports how [Transform] treats line. A trailing newline is
// ignored. Rule lines take precedence over assignments, matching the order
// of the rewrite passes.
func Classify(line string) Kind {
	line = strings.TrimSuffix(line, "\n")
	if strings.Contains(line, "\n") {
		// Only the first physical line decides.
		line = line[:strings.IndexByte(line, '\n')]
	}

	switch {
	case ruleLineRe.MatchString(line):
		return KindRule
	case assignmentLineRe.MatchString(line):
		return KindAssignment
	}

	return KindOther
}

// Summary counts the lines of a fragment by [Kind]. Continuation lines of an
// assignment are counted with the assignment they belong to.
type Summary struct {
	Rules       int
	Assignments int
	Continued   int // Continuation lines folded into assignments.
	Other       int
}

// Total returns the number of physical lines counted.
func (s Summary) Total() int {
	return s.Rules + s.Assignments + s.Continued + s.Other
}

// Summarize classifies every line of content.
func Summarize(content string) Summary {
	var s Summary

	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return s
	}

	inAssignment := false
	for line := range strings.SplitSeq(content, "\n") {
		if inAssignment {
			s.Continued++
			inAssignment = strings.HasSuffix(line, `\`)

			continue
		}

		switch Classify(line) {
		case KindRule:
			s.Rules++
		case KindAssignment:
			s.Assignments++
			inAssignment = strings.HasSuffix(line, `\`)
		case KindOther:
			s.Other++
		}
	}

	return s
}
