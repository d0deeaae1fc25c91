// Package qr generates and cleans up the QR receipt images attached to
// products and sales. Records only ever store the relative URL path under
// URLPrefix, so served links stay host-independent.
package qr

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"
)

// URLPrefix is the static mount under which QR images are served.
const URLPrefix = "/qr-images/"

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// Generator writes QR images into a flat directory.
type Generator struct {
	Dir string
}

// New returns a Generator writing into dir.
func New(dir string) *Generator {
	return &Generator{Dir: dir}
}

// Slug lower-cases name and replaces every non-alphanumeric rune with an
// underscore.
func Slug(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(name), "_")
}

// Generate encodes payload into a PNG named after the current timestamp
// and the sanitized name, and returns the relative URL path to store.
// Regeneration always yields a new filename.
func (g *Generator) Generate(payload, name string) (string, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create QR directory: %w", err)
	}

	filename := fmt.Sprintf("%d_%s.png", time.Now().UnixMilli(), Slug(name))
	if err := qrcode.WriteFile(payload, qrcode.Medium, 256, filepath.Join(g.Dir, filename)); err != nil {
		return "", fmt.Errorf("failed to write QR image: %w", err)
	}

	return URLPrefix + filename, nil
}

// Remove deletes the image behind a stored relative path. Paths outside
// URLPrefix are ignored; a failed or already-done deletion is logged and
// swallowed so it never aborts the surrounding operation.
func (g *Generator) Remove(relPath string) {
	if !strings.HasPrefix(relPath, URLPrefix) {
		return
	}
	file := filepath.Join(g.Dir, path.Base(relPath))
	if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("file", file).Warn("Failed to remove QR image")
	}
}
