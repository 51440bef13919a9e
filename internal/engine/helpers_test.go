package engine

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/keygen"
	"github.com/goodnatureofminers/collider-backend/internal/model"
)

// countingGenerator yields distinct candidates whose address encodes the call
// number, so tests can count every Generate call exactly.
type countingGenerator struct {
	calls  atomic.Uint64
	gate   atomic.Pointer[chan struct{}]
	failAt uint64
}

func (g *countingGenerator) Generate() (model.Candidate, error) {
	if gate := g.gate.Load(); gate != nil {
		<-*gate
	}
	n := g.calls.Add(1)
	if g.failAt != 0 && n == g.failAt {
		return model.Candidate{}, fmt.Errorf("%w: %w", keygen.ErrEntropyUnavailable, io.ErrUnexpectedEOF)
	}
	return candidateFor(n), nil
}

func (g *countingGenerator) hold() chan struct{} {
	gate := make(chan struct{})
	g.gate.Store(&gate)
	return gate
}

func candidateFor(n uint64) model.Candidate {
	var c model.Candidate
	binary.BigEndian.PutUint64(c.Address[:8], n)
	binary.BigEndian.PutUint64(c.Secret[24:], n)
	return c
}

type fakeSet map[model.Address]struct{}

func newFakeSet(addrs ...model.Address) fakeSet {
	s := make(fakeSet, len(addrs))
	for _, a := range addrs {
		s[a] = struct{}{}
	}
	return s
}

func (s fakeSet) Test(addr model.Address) model.MembershipResult {
	if _, ok := s[addr]; ok {
		return model.Match
	}
	return model.NoMatch
}

func (s fakeSet) Len() int                    { return len(s) }
func (s fakeSet) LoadDuration() time.Duration { return 250 * time.Millisecond }
