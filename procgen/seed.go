// Package procgen generates star system architectures: planet rosters,
// asteroid belts, and cometary clouds, deterministically from a seed and
// the host star's parameters.
package procgen

import (
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Seed is the campaign-wide generation seed. Every random draw in the
// generator descends from it, so one Seed value pins the whole galaxy.
type Seed uint64

// SeedFromString hashes an arbitrary phrase into a seed so players can
// share readable seeds.
func SeedFromString(s string) Seed {
	return Seed(xxhash.Sum64String(s))
}

// SeedFromTime derives a seed from the wall clock, for unseeded sessions.
func SeedFromTime() Seed {
	return Seed(uint64(time.Now().UnixNano()))
}

// Stream salts for independent random sequences within one system.
// Adding a planet must not reshuffle the belt, so each concern draws
// from its own stream.
const (
	StreamArchitecture uint64 = iota + 1
	StreamBelt
	StreamCloud
	StreamResources
	StreamMetallicity
)

// Stream returns an rng for one concern of one system. The triple
// (seed, systemID, salt) is hashed so that neighbouring system IDs do
// not produce correlated sequences.
func (s Seed) Stream(systemID uint64, salt uint64) *rand.Rand {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(s))
	binary.LittleEndian.PutUint64(buf[8:16], systemID)
	binary.LittleEndian.PutUint64(buf[16:24], salt)
	return rand.New(rand.NewSource(int64(xxhash.Sum64(buf[:]))))
}
