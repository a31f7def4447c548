package platform

import (
	"runtime"
	"testing"

	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestReleaseTrimsWhitespace(t *testing.T) {
	t.Parallel()

	host := &Host{release: func() string { return " 6.18.44-fc \n" }}
	assert.Equal(t, "6.18.44-fc", host.Release())
}

func TestReleaseFeedsDefaultConfig(t *testing.T) {
	t.Parallel()

	host := &Host{release: func() string { return "6.1.0" }}
	cfg := domain.DefaultConfig(host.Release())
	assert.True(t, cfg.Compatibility.TransparentFallback)
}

func TestNewReportsHostRelease(t *testing.T) {
	t.Parallel()

	release := New().Release()
	if runtime.GOOS == "linux" {
		_, ok := domain.ReleaseMajor(release)
		assert.True(t, ok, "release %q", release)
	}
}
