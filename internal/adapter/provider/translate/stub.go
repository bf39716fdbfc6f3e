package translate

import "context"

// Stub is a no-op translation provider for local development.
type Stub struct{}

// NewStub creates a new no-op translation provider.
func NewStub() *Stub { return &Stub{} }

// Translate always reports a miss.
func (s *Stub) Translate(ctx context.Context, text, source, target string) (string, error) {
	return "", nil
}
