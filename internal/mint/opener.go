package mint

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// Opener hands a URL to something outside the process.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

// Open calls f(url).
func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// BrowserOpener opens URLs in the system default browser.
type BrowserOpener struct{}

// NewBrowserOpener returns an opener backed by the system browser.
// When quiet is set, output of the launched helper is discarded so it
// cannot scribble over a full-screen terminal UI.
func NewBrowserOpener(quiet bool) BrowserOpener {
	if quiet {
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
	}
	return BrowserOpener{}
}

// Open launches the browser.
func (BrowserOpener) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
