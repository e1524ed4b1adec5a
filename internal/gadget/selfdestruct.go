package gadget

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// Self-destruct code constants.
const (
	// codeTTL is how long a pending confirmation code stays valid.
	// Codes live only in process memory; a restart clears them all and the
	// confirmation must be re-requested.
	codeTTL = 5 * time.Minute

	// codeSpace is the number of possible 5-digit codes (00000-99999).
	codeSpace = 100000
)

// CodeStore holds pending self-destruct confirmation codes, keyed by
// gadget ID. A code is single-use: confirming with the exact code consumes
// it, while a mismatch leaves it pending. Generating again for the same
// gadget replaces any earlier code.
//
// Thread Safety: all methods are safe for concurrent use. The mutex gives
// generate/confirm atomic read-modify-write semantics per gadget, so two
// racing confirms can never both consume the same code.
type CodeStore struct {
	mu    sync.Mutex
	codes map[string]codeEntry
}

type codeEntry struct {
	code      string
	expiresAt time.Time
}

// CodeTTL returns the lifetime of a pending confirmation code.
func CodeTTL() time.Duration {
	return codeTTL
}

// NewCodeStore creates an empty confirmation-code store.
func NewCodeStore() *CodeStore {
	return &CodeStore{
		codes: make(map[string]codeEntry),
	}
}

// Generate creates a fresh 5-digit confirmation code for the gadget,
// replacing any previous pending code for that gadget ID.
func (s *CodeStore) Generate(gadgetID string) (string, error) {
	code, err := randomCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.codes[gadgetID] = codeEntry{
		code:      code,
		expiresAt: time.Now().Add(codeTTL),
	}
	s.mu.Unlock()

	return code, nil
}

// Validate checks the supplied code against the pending one without
// consuming it. The caller consumes the code with Consume() once the
// destruction actually went through.
//
// Returns:
//   - ErrNoPendingCode: no code was generated (or it expired)
//   - ErrCodeMismatch: the supplied code is wrong; the pending code survives
//   - nil: exact match
func (s *CodeStore) Validate(gadgetID, supplied string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[gadgetID]
	if !ok {
		return ErrNoPendingCode
	}

	if time.Now().After(entry.expiresAt) {
		delete(s.codes, gadgetID)
		return ErrNoPendingCode
	}

	if entry.code != supplied {
		return ErrCodeMismatch
	}

	return nil
}

// Consume removes the pending code for a gadget (single use).
func (s *CodeStore) Consume(gadgetID string) {
	s.mu.Lock()
	delete(s.codes, gadgetID)
	s.mu.Unlock()
}

// Pending reports whether a live code exists for the gadget.
func (s *CodeStore) Pending(gadgetID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[gadgetID]
	return ok && time.Now().Before(entry.expiresAt)
}

// cleanExpired removes expired codes from the store.
func (s *CodeStore) cleanExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, entry := range s.codes {
		if now.After(entry.expiresAt) {
			delete(s.codes, id)
		}
	}
}

// CleanLoop runs cleanExpired periodically until the context is cancelled.
// Run it in a goroutine from the server lifecycle.
func (s *CodeStore) CleanLoop(ctx context.Context) {
	ticker := time.NewTicker(codeTTL)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.cleanExpired()
		}
	}
}

// randomCode generates a cryptographically random 5-digit numeric string.
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpace))
	if err != nil {
		return "", fmt.Errorf("generating confirmation code: %w", err)
	}
	return fmt.Sprintf("%05d", n.Int64()), nil
}
