// Package platform carries the process-level hooks the terminal reports to:
// whether a status display is active and how file paths become links.
package platform

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
)

// Platform records terminal state other subsystems consult before writing
// to the terminal themselves.
type Platform struct {
	displayingStatus atomic.Bool
	goos             string
}

// New returns a Platform for the running OS
func New() *Platform {
	return &Platform{goos: runtime.GOOS}
}

// NotifyStatusActive is called when the first status is shown and when the
// last one is released
func (p *Platform) NotifyStatusActive(active bool) {
	p.displayingStatus.Store(active)
}

// DisplayingStatus reports whether a status spinner currently owns the
// terminal line
func (p *Platform) DisplayingStatus() bool {
	return p.displayingStatus.Load()
}

// FormatFileURI turns a path into an absolute file:// URI
func (p *Platform) FormatFileURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if p.goos == "windows" {
		// C:\a\b -> file:///C:/a/b
		path = "/" + strings.ReplaceAll(path, `\`, "/")
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
