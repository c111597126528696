package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/mkprefix/pkg/rewrite"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		line string
		want rewrite.Kind
	}{
		"rule":                     {line: "foo.h: foo.in.h", want: rewrite.KindRule},
		"rule with newline":        {line: "foo.h: foo.in.h\n", want: rewrite.KindRule},
		"rule with target list":    {line: "a.c b.h: c.c", want: rewrite.KindRule},
		"rule with nested target":  {line: "sys/stat.h: sys_stat.in.h", want: rewrite.KindRule},
		"suffix rule":              {line: ".c.o:", want: rewrite.KindOther},
		"phony target":             {line: "all-local:", want: rewrite.KindOther},
		"target without extension": {line: "distclean-local: clean-GNUmakefile", want: rewrite.KindOther},
		"assignment":               {line: "FOO = bar", want: rewrite.KindAssignment},
		"append":                   {line: "FOO += bar", want: rewrite.KindAssignment},
		"assignment without space": {line: "FOO=bar", want: rewrite.KindAssignment},
		"dotted name":              {line: "foo.bar = baz", want: rewrite.KindAssignment},
		"simple assignment":        {line: "FOO := bar", want: rewrite.KindOther},
		"recipe":                   {line: "\t$(MKDIR_P) sys", want: rewrite.KindOther},
		"comment":                  {line: "## begin gnulib module foo", want: rewrite.KindOther},
		"conditional":              {line: "if GL_COND_LIBTOOL", want: rewrite.KindOther},
		"blank":                    {line: "", want: rewrite.KindOther},
		"first line decides":       {line: "FOO = a \\\n\tb.c: c", want: rewrite.KindAssignment},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := rewrite.Classify(tc.line)
			assert.Equal(t, tc.want, got, "got %s", got)
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	content := "## header\n" +
		"FOO = a.c \\\n" +
		"\tb.c \\\n" +
		"\tc.c\n" +
		"BAR += d.c\n" +
		"x.h: x.in.h\n" +
		"\tcp $< $@\n" +
		".c.o:\n"

	got := rewrite.Summarize(content)

	assert.Equal(t, rewrite.Summary{
		Rules:       1,
		Assignments: 2,
		Continued:   2,
		Other:       3,
	}, got)
	assert.Equal(t, 8, got.Total())
	assert.Equal(t, rewrite.Summary{}, rewrite.Summarize(""))
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "rule", rewrite.KindRule.String())
	assert.Equal(t, "assignment", rewrite.KindAssignment.String())
	assert.Equal(t, "other", rewrite.KindOther.String())
	assert.Equal(t, "unknown", rewrite.Kind(42).String())
}
