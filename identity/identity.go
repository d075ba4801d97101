// Package identity issues and persists the opaque viewer identifier used to
// correlate likes and comments with a pseudo-identity. The identifier is
// self-assigned and never verified server-side; collisions across devices
// are possible in principle and simply tolerated. Nothing here is an
// authentication boundary and it must not be treated as one.
package identity

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const idFileName = "viewer_id"

// Provider hands out one viewer identifier per local profile, persisted to a
// single file so it survives restarts.
type Provider struct {
	mu   sync.Mutex
	path string
	id   string
}

// NewProvider stores the identifier under dir. An empty dir falls back to
// the user config directory.
func NewProvider(dir string) (*Provider, error) {
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(configDir, "communitywatch")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &Provider{path: filepath.Join(dir, idFileName)}, nil
}

// EnsureViewerID returns the persisted identifier, generating and persisting
// a fresh one on first use.
func (p *Provider) EnsureViewerID() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.id != "" {
		return p.id, nil
	}

	if data, err := os.ReadFile(p.path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			p.id = id
			return id, nil
		}
	}

	id := uuid.New().String()
	if err := os.WriteFile(p.path, []byte(id), 0o600); err != nil {
		return "", err
	}
	p.id = id
	return id, nil
}
