// Package browser opens a story's source page in the system browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

var ErrNoURL = errors.New("story has no source URL")

// launch starts the platform opener. Tests swap it out.
var launch = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Command returns the opener and its arguments for goos.
func Command(goos, rawURL string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		// rundll32 avoids cmd's shell interpretation of the URL
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}

// Validate accepts absolute http and https URLs only.
func Validate(rawURL string) error {
	if rawURL == "" {
		return ErrNoURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host", rawURL)
	}
	return nil
}

func Open(rawURL string) error {
	if err := Validate(rawURL); err != nil {
		return err
	}
	name, args := Command(runtime.GOOS, rawURL)
	if err := launch(name, args...); err != nil {
		return fmt.Errorf("opening browser: %w", err)
	}
	return nil
}
