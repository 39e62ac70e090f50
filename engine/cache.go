package engine

import (
	"math/rand"

	"tetrisearch/movesearch"
)

// zobristCell holds one random key per physical board cell, combined by XOR
// into a single hash identifying a field's filled-cell pattern. Adapted from
// goosemg's Zobrist piece-square hashing, collapsed to a single occupancy
// bit per square instead of a 15-way piece code.
var zobristCell [20][10]uint64

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))
	for row := 0; row < 20; row++ {
		for col := 0; col < 10; col++ {
			zobristCell[row][col] = rnd.Uint64()
		}
	}
}

// HashField computes a cache key for a field plus the query parameters that
// the resulting PossibleMoves also depends on. Two fields that are
// bit-identical but queried under a different piece, level or adjustment
// frame must not collide, so those are folded into the key too.
func HashField(f movesearch.Field, pieceName string, level movesearch.Level, adjFrame int) uint64 {
	var key uint64
	for row := 0; row < 20; row++ {
		for col := 0; col < 10; col++ {
			if f.Filled(row, col) {
				key ^= zobristCell[row][col]
			}
		}
	}
	for _, c := range pieceName {
		key = key*1099511628211 ^ uint64(c)
	}
	key ^= uint64(level) * 0x9E3779B97F4A7C15
	key ^= uint64(adjFrame+1) * 0xC2B2AE3D27D4EB4F
	return key
}

const (
	cacheClusterSize = 4
	// MoveCacheSizeMB is the default size, in MB, of a new MoveCache.
	MoveCacheSizeMB = 64
)

type cacheEntry struct {
	hash  uint64
	valid bool
	moves movesearch.PossibleMoves
}

// MoveCache is a clustered, hash-keyed cache of search results, the
// persisted-state-table collaborator that sits in front of repeated
// MoveSearch calls over the same field. Adapted from the always-replace
// transposition table: entries are grouped into fixed-size clusters indexed
// by hash modulo cluster count, searched linearly within a cluster.
type MoveCache struct {
	entries      []cacheEntry
	clusterCount uint64
}

// NewMoveCache allocates a cache sized to approximately sizeMB megabytes.
func NewMoveCache(sizeMB int) *MoveCache {
	if sizeMB <= 0 {
		sizeMB = MoveCacheSizeMB
	}
	entrySize := uint64(48) // rough PossibleMoves-header footprint, excludes slice backing arrays
	totalBytes := uint64(sizeMB) * 1024 * 1024
	clusterBytes := entrySize * cacheClusterSize
	clusterCount := totalBytes / clusterBytes
	if clusterCount == 0 {
		clusterCount = 1
	}
	return &MoveCache{
		entries:      make([]cacheEntry, clusterCount*cacheClusterSize),
		clusterCount: clusterCount,
	}
}

// Get returns the cached result for hash, if present.
func (c *MoveCache) Get(hash uint64) (movesearch.PossibleMoves, bool) {
	base := int((hash % c.clusterCount) * cacheClusterSize)
	for i := 0; i < cacheClusterSize; i++ {
		e := &c.entries[base+i]
		if e.valid && e.hash == hash {
			return e.moves, true
		}
	}
	return movesearch.PossibleMoves{}, false
}

// Store records moves under hash, replacing an existing entry for the same
// hash, an empty slot, or (failing both) the first slot in the cluster.
func (c *MoveCache) Store(hash uint64, moves movesearch.PossibleMoves) {
	base := int((hash % c.clusterCount) * cacheClusterSize)
	target := -1
	for i := 0; i < cacheClusterSize; i++ {
		if c.entries[base+i].valid && c.entries[base+i].hash == hash {
			target = base + i
			break
		}
	}
	if target == -1 {
		for i := 0; i < cacheClusterSize; i++ {
			if !c.entries[base+i].valid {
				target = base + i
				break
			}
		}
	}
	if target == -1 {
		target = base
	}
	c.entries[target] = cacheEntry{hash: hash, valid: true, moves: moves}
}
