// Package addrset holds the in-memory target address set and its loader.
package addrset

import (
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/model"
	"github.com/jcalabro/gloom"
)

// Set is the two-tier target address set: a bloom filter in front of an exact
// hash set. It is built once by Load and is read-only afterwards, so any number
// of goroutines may call Test concurrently.
type Set struct {
	filter       *gloom.Filter
	exact        map[model.Address]struct{}
	capacity     uint64
	fpRate       float64
	loadDuration time.Duration
	fillRatio    float64
	estimatedFPR float64

	falsePositives atomic.Uint64
}

func newSet(capacity uint64, fpRate float64, sizeHint int) *Set {
	return &Set{
		filter:   gloom.New(capacity, fpRate),
		exact:    make(map[model.Address]struct{}, sizeHint),
		capacity: capacity,
		fpRate:   fpRate,
	}
}

func (s *Set) add(addr model.Address) {
	if _, ok := s.exact[addr]; ok {
		return
	}
	s.exact[addr] = struct{}{}
	s.filter.Add(addr[:])
}

// rebuildFilter resizes the bloom tier from the exact set.
func (s *Set) rebuildFilter(capacity uint64) {
	filter := gloom.New(capacity, s.fpRate)
	for addr := range s.exact {
		filter.Add(addr[:])
	}
	s.filter = filter
	s.capacity = capacity
}

// seal captures the bloom tier statistics once the set is fully built. Both
// estimates scan every filter word, so they are not computed per call.
func (s *Set) seal() {
	s.fillRatio = s.filter.EstimatedFillRatio()
	s.estimatedFPR = s.filter.EstimatedFalsePositiveRate()
}

// Test checks the bloom tier first and confirms positives against the exact set.
// A bloom negative is authoritative; a bloom positive missing from the exact set
// is a false positive and reported as NoMatch.
func (s *Set) Test(addr model.Address) model.MembershipResult {
	if !s.filter.Test(addr[:]) {
		return model.NoMatch
	}
	if _, ok := s.exact[addr]; !ok {
		s.falsePositives.Add(1)
		return model.NoMatch
	}
	return model.Match
}

// Len returns the number of distinct target addresses.
func (s *Set) Len() int {
	return len(s.exact)
}

// Capacity returns the item count the bloom tier was sized for.
func (s *Set) Capacity() uint64 {
	return s.capacity
}

// FalsePositiveRate returns the configured bloom false-positive rate.
func (s *Set) FalsePositiveRate() float64 {
	return s.fpRate
}

// EstimatedFalsePositiveRate returns the bloom tier's estimate taken after load.
func (s *Set) EstimatedFalsePositiveRate() float64 {
	return s.estimatedFPR
}

// FillRatio returns the estimated fraction of set bits taken after load.
func (s *Set) FillRatio() float64 {
	return s.fillRatio
}

// FilterBytes returns the bloom tier's memory footprint.
func (s *Set) FilterBytes() uint64 {
	return s.filter.NumBlocks() * 64
}

// FalsePositives returns how many bloom positives the exact tier rejected.
func (s *Set) FalsePositives() uint64 {
	return s.falsePositives.Load()
}

// LoadDuration returns how long Load took to build the set.
func (s *Set) LoadDuration() time.Duration {
	return s.loadDuration
}
