package rewrite_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/mkprefix/pkg/rewrite"
)

func TestTransform(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    string
		prefix  string
		libName string
	}{
		"sources": {
			input:   "libfoo_a_SOURCES = a.c b.c\n",
			want:    "lib_libfoo_a_SOURCES = lib/a.c lib/b.c\n",
			prefix:  "lib/",
			libName: "libfoo",
		},
		"rule with several targets": {
			input:  "a.c b.h: c.c\n",
			want:   "lib/a.c lib/b.h: lib/c.c\n",
			prefix: "lib/",
		},
		"suffix rule is untouched": {
			input:  ".c.o:\n\t$(COMPILE) -c $<\n",
			want:   ".c.o:\n\t$(COMPILE) -c $<\n",
			prefix: "lib/",
		},
		"rule without extension is untouched": {
			input:  "mostlyclean-local: mostlyclean-generic\n",
			want:   "mostlyclean-local: mostlyclean-generic\n",
			prefix: "lib/",
		},
		"rule with empty prerequisites is untouched": {
			input:  "config.h:   \n",
			want:   "config.h:   \n",
			prefix: "lib/",
		},
		"srcdir is re-anchored": {
			input:  "\tcat $(srcdir)/foo.c\n",
			want:   "\tcat $(top_srcdir)/lib/foo.c\n",
			prefix: "lib/",
		},
		"srcdir in a rule": {
			input:  "foo.h: $(srcdir)/foo.in.h\n",
			want:   "lib/foo.h: $(top_srcdir)/lib/foo.in.h\n",
			prefix: "lib/",
		},
		"srcdir without slash is kept": {
			input:  "\tcd $(srcdir) && ls\n",
			want:   "\tcd $(srcdir) && ls\n",
			prefix: "lib/",
		},
		"temporary file naming": {
			input:  "\tsed -e 's/x/y/' < in > t-$@ && mv t-$@ $@\n",
			want:   "\tsed -e 's/x/y/' < in > $@-t && mv $@-t $@\n",
			prefix: "lib/",
		},
		"MKDIR_P placeholder": {
			input:  "\t@MKDIR_P@ sys\n",
			want:   "\t$(MKDIR_P) lib/sys\n",
			prefix: "lib/",
		},
		"MKDIR_P macro": {
			input:  "\t$(AM_V_at)$(MKDIR_P) netinet\n",
			want:   "\t$(AM_V_at)$(MKDIR_P) lib/netinet\n",
			prefix: "lib/",
		},
		"MKDIR_P with macro argument": {
			input:  "\t$(MKDIR_P) $(@D)\n",
			want:   "\t$(MKDIR_P) $(@D)\n",
			prefix: "lib/",
		},
		"flags": {
			input:   "AM_CPPFLAGS += -DX=1\n",
			want:    "lib_libfoo_a_CPPFLAGS = $(AM_CPPFLAGS) -DX=1\n",
			prefix:  "lib/",
			libName: "libfoo",
		},
		"comments and recipes are untouched": {
			input:  "# foo.c: bar.c\n\tfoo.c: bar.c\n",
			want:   "# foo.c: bar.c\n\tfoo.c: bar.c\n",
			prefix: "lib/",
		},
		"indented assignment is untouched": {
			input:  "  FOO = a.c\n",
			want:   "  FOO = a.c\n",
			prefix: "lib/",
		},
		"conditional assignment operators are untouched": {
			input:  "FOO := a.c\nBAR ?= b.c\n",
			want:   "FOO := a.c\nBAR ?= b.c\n",
			prefix: "lib/",
		},
		"continued assignment": {
			input:   "libfoo_a_SOURCES = \\\n\ta.c \\\n\tb.c\nnext.o: next.c\n",
			want:    "lib_libfoo_a_SOURCES = \\\n\tlib/a.c \\\n\tlib/b.c\nlib/next.o: lib/next.c\n",
			prefix:  "lib/",
			libName: "libfoo",
		},
		"no trailing newline": {
			input:  "FOO = a.c",
			want:   "FOO = lib/a.c",
			prefix: "lib/",
		},
		"current directory prefix": {
			input:  "FOO = a.c\n",
			want:   "FOO = ./a.c\n",
			prefix: "./",
		},
		"empty document": {
			input:  "",
			want:   "",
			prefix: "lib/",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := rewrite.Transform(tc.input, tc.prefix, tc.libName)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTransform_Fragment(t *testing.T) {
	t.Parallel()

	input, err := os.ReadFile(filepath.Join("testdata", "gnulib.am"))
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("testdata", "gnulib.am.golden"))
	require.NoError(t, err)

	got := rewrite.Transform(string(input), "lib/", "libgnu")
	assert.Equal(t, string(want), got)
}

func TestTransform_LineOrderIndependent(t *testing.T) {
	t.Parallel()

	a := "FOO = a.c\n"
	b := "x.h: x.in.h\n"

	ab := rewrite.Transform(a+b, "lib/", "")
	ba := rewrite.Transform(b+a, "lib/", "")

	assert.Equal(t, "FOO = lib/a.c\nlib/x.h: lib/x.in.h\n", ab)
	assert.Equal(t, "lib/x.h: lib/x.in.h\nFOO = lib/a.c\n", ba)
}

// Running twice prefixes twice. Callers must only run it once per fragment.
func TestTransform_NotIdempotent(t *testing.T) {
	t.Parallel()

	once := rewrite.Transform("libfoo_a_SOURCES = a.c\n", "lib/", "libfoo")
	twice := rewrite.Transform(once, "lib/", "libfoo")

	assert.Equal(t, "lib_libfoo_a_SOURCES = lib/a.c\n", once)
	assert.Equal(t, "lib_lib_libfoo_a_SOURCES = lib/lib/a.c\n", twice)
}

func TestTransform_PrefixIsLiteral(t *testing.T) {
	t.Parallel()

	got := rewrite.Transform("\t$(MKDIR_P) sys\n\tcat $(srcdir)/a\n", "$1/", "")
	assert.Equal(t, "\t$(MKDIR_P) $1/sys\n\tcat $(top_srcdir)/$1/a\n", got)
}
