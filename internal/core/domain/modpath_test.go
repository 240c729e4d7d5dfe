package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kmpinstall/internal/core/domain"
)

func TestMatchModule(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantVersion string
		wantName    string
		wantOK      bool
	}{
		{
			name:        "plain ko",
			path:        "/lib/modules/5.14.21-150500.55.7-default/updates/foo.ko",
			wantVersion: "5.14.21-150500.55.7-default",
			wantName:    "foo",
			wantOK:      true,
		},
		{
			name:        "gzip compressed",
			path:        "/lib/modules/5.14.0/extra/bar.ko.gz",
			wantVersion: "5.14.0",
			wantName:    "bar",
			wantOK:      true,
		},
		{
			name:        "xz compressed",
			path:        "/lib/modules/5.14.0/kernel/drivers/net/e1000e.ko.xz",
			wantVersion: "5.14.0",
			wantName:    "e1000e",
			wantOK:      true,
		},
		{
			name:        "zstd compressed",
			path:        "/lib/modules/6.4.0/updates/baz.ko.zst",
			wantVersion: "6.4.0",
			wantName:    "baz",
			wantOK:      true,
		},
		{
			name:        "bare zst suffix",
			path:        "/lib/modules/6.4.0/updates/baz.zst",
			wantVersion: "6.4.0",
			wantName:    "baz",
			wantOK:      true,
		},
		{
			name:        "dashes normalized to underscores",
			path:        "/lib/modules/5.14.0/updates/dm-mod.ko",
			wantVersion: "5.14.0",
			wantName:    "dm_mod",
			wantOK:      true,
		},
		{
			name:        "deeply nested",
			path:        "/lib/modules/5.14.0/kernel/drivers/gpu/drm/nouveau/nouveau.ko.xz",
			wantVersion: "5.14.0",
			wantName:    "nouveau",
			wantOK:      true,
		},
		{
			name:   "license file",
			path:   "/usr/share/licenses/foo-kmp-default/LICENSE",
			wantOK: false,
		},
		{
			name:   "doc inside module root without suffix",
			path:   "/lib/modules/5.14.0/modules.dep",
			wantOK: false,
		},
		{
			name:   "module root itself",
			path:   "/lib/modules/5.14.0",
			wantOK: false,
		},
		{
			name:   "relative path",
			path:   "lib/modules/5.14.0/updates/foo.ko",
			wantOK: false,
		},
		{
			name:   "suffix only",
			path:   "/lib/modules/5.14.0/updates/.ko",
			wantOK: false,
		},
		{
			name:   "empty string",
			path:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, name, ok := domain.MatchModule(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantVersion, version)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

// Matching is pure: the same path always yields the same result.
func TestMatchModule_Stable(t *testing.T) {
	const path = "/lib/modules/5.14.0/updates/dm-thin-pool.ko.zst"

	v1, n1, ok1 := domain.MatchModule(path)
	v2, n2, ok2 := domain.MatchModule(path)

	assert.True(t, ok1)
	assert.Equal(t, v1, v2)
	assert.Equal(t, n1, n2)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, "dm_thin_pool", n1)
}
