package ports

import "io"

// FileStore persists uploaded image payloads and reports the name each
// one was stored under.
type FileStore interface {
	// Save writes the payload under a generated name derived from the
	// original filename's extension and returns that name.
	Save(originalName string, r io.Reader) (string, error)
}
