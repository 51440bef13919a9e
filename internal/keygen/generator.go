package keygen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/goodnatureofminers/collider-backend/internal/model"
)

// ErrEntropyUnavailable is returned when the secure random source cannot be read.
var ErrEntropyUnavailable = errors.New("entropy unavailable")

// maxScalarDraws bounds redraws of out-of-range scalars. A healthy source needs
// a second draw with probability below 2^-127.
const maxScalarDraws = 8

// Generator produces candidates from a cryptographically secure random source.
// It holds no mutable state and is safe for concurrent use when the reader is.
type Generator struct {
	scheme Scheme
	rand   io.Reader
}

// NewGenerator builds a Generator backed by crypto/rand.
func NewGenerator(scheme Scheme) *Generator {
	return &Generator{scheme: scheme, rand: rand.Reader}
}

// Scheme returns the address scheme candidates are derived with.
func (g *Generator) Scheme() Scheme {
	return g.scheme
}

// Generate draws a fresh private key and derives its address.
func (g *Generator) Generate() (model.Candidate, error) {
	var c model.Candidate

	for range maxScalarDraws {
		if _, err := io.ReadFull(g.rand, c.Secret[:]); err != nil {
			return model.Candidate{}, fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
		}

		var scalar btcec.ModNScalar
		if overflow := scalar.SetByteSlice(c.Secret[:]); overflow || scalar.IsZero() {
			continue
		}

		priv := btcec.PrivKeyFromScalar(&scalar)
		c.Address = g.scheme.Derive(priv.PubKey())
		return c, nil
	}

	return model.Candidate{}, fmt.Errorf("%w: no valid scalar in %d draws", ErrEntropyUnavailable, maxScalarDraws)
}
