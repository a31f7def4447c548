package platform

import (
	"strings"

	"github.com/bnema/assistant-shell/internal/ports"
)

// Host reports the release of the running operating system.
type Host struct {
	release func() string
}

var _ ports.Platform = (*Host)(nil)

func New() *Host {
	return &Host{release: osRelease}
}

func (h *Host) Release() string {
	return strings.TrimSpace(h.release())
}
