package version_test

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/mkprefix/pkg/version"
)

func TestGetRevision(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		info *debug.BuildInfo
		ok   bool
		want string
	}{
		"no build info": {
			ok:   false,
			want: "unknown",
		},
		"no vcs settings": {
			info: &debug.BuildInfo{},
			ok:   true,
			want: "unknown",
		},
		"long revision is shortened": {
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
			}},
			ok:   true,
			want: "0123456",
		},
		"dirty tree": {
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			}},
			ok:   true,
			want: "abc-dirty",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := version.GetRevision(func() (*debug.BuildInfo, bool) {
				return tc.info, tc.ok
			})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Contains(t, version.String(), version.GetVersion())
	assert.Contains(t, version.String(), version.GoVersion)
}
