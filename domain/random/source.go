package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	mathrand "math/rand/v2"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"
)

// Source is the randomness a shuffle consumes. IntN returns a uniform value in [0, n).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// SeedSource tells where a seed came from.
type SeedSource string

const (
	SeedSourceClient    SeedSource = "client"
	SeedSourceGenerated SeedSource = "generated"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// NewSource returns a PCG generator seeded with seed. Equal seeds give equal streams.
func NewSource(seed uint64) *mathrand.Rand {
	return mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// XOFSource draws integers from an extendable-output function of the Ed25519 suite.
// The whole stream is a function of the seed bytes, so two sources built from the
// same seed agree forever.
type XOFSource struct {
	xof kyber.XOF
	buf [8]byte
}

// NewXOFSource builds a source keyed by seed.
func NewXOFSource(seed []byte) *XOFSource {
	return &XOFSource{xof: suite.XOF(seed)}
}

// SeedBytes encodes a numeric seed for NewXOFSource.
func SeedBytes(seed uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seed)
	return b
}

// Uint64 reads the next 64 bits of the stream.
func (s *XOFSource) Uint64() uint64 {
	if _, err := s.xof.Read(s.buf[:]); err != nil {
		// an XOF never runs dry; a failing read means the stream is broken
		panic(fmt.Sprintf("random: xof read: %v", err))
	}
	return binary.BigEndian.Uint64(s.buf[:])
}

// IntN returns a uniform value in [0, n). It panics if n <= 0.
func (s *XOFSource) IntN(n int) int {
	if n <= 0 {
		panic("random: invalid argument to IntN")
	}
	bound := uint64(n)
	// reject the top partial bucket so every residue is equally likely
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		v := s.Uint64()
		if v < limit {
			return int(v % bound)
		}
	}
}

// ResolveSeed returns the requested seed when one is given, otherwise a fresh
// seed read from crypto/rand.
func ResolveSeed(requested *uint64) (uint64, SeedSource, error) {
	if requested != nil {
		return *requested, SeedSourceClient, nil
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, "", fmt.Errorf("generate seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), SeedSourceGenerated, nil
}
