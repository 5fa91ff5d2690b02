package platform

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifyStatusActive(t *testing.T) {
	p := New()
	assert.False(t, p.DisplayingStatus())

	p.NotifyStatusActive(true)
	assert.True(t, p.DisplayingStatus())

	p.NotifyStatusActive(false)
	assert.False(t, p.DisplayingStatus())
}

func TestFormatFileURI(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	p := New()

	assert.Equal(t, "file:///tmp/report.txt", p.FormatFileURI("/tmp/report.txt"))
	assert.Equal(t, "file:///tmp/with%20space.txt", p.FormatFileURI("/tmp/with space.txt"))

	rel := p.FormatFileURI("pyproject.toml")
	abs, _ := filepath.Abs("pyproject.toml")
	assert.True(t, strings.HasPrefix(rel, "file:///"))
	assert.True(t, strings.HasSuffix(rel, filepath.ToSlash(abs)))
}

func TestFormatFileURIWindows(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("windows paths")
	}
	p := New()
	assert.Equal(t, "file:///C:/Users/me/a.txt", p.FormatFileURI(`C:\Users\me\a.txt`))
}
