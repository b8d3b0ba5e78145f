/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package eval

import (
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chessgo/staticeval/internal/logging"
	. "github.com/chessgo/staticeval/internal/types"
)

var out = message.NewPrinter(language.English)

// PawnKingEntry caches the pawn-only score and the passed-pawn bitboard
// for one pawn+king Zobrist hash. eval is the net (White minus Black)
// packed score, following the original's "store only pkeval[WHITE]"
// convention: pkeval[Black] is always zero on a cache hit (see
// newEvalInfo) and must be, or the hit path and the miss path would
// disagree.
type PawnKingEntry struct {
	pkhash Key
	passed Bitboard
	eval   Score
}

// packed XORs the three fields of an entry into one guard word so a
// torn concurrent write is detectable: a reader that sees a mix of two
// different writes' bytes will very likely recompute a guard that does
// not match the stored hash, and fall back to treating it as a miss
// rather than silently using corrupted data.
func packed(pkhash Key, passed Bitboard, eval Score) Key {
	return pkhash ^ Key(passed) ^ Key(uint32(uint16(eval.MG)))<<32 ^ Key(uint16(eval.EG))
}

type pkSlot struct {
	pkhash     Key
	passed     Bitboard
	evalPacked uint64
	guard      Key
}

// packScore and unpackScore let the two int16 halves of a Score travel
// through a single atomic uint64, the same way pkhash/passed/guard do:
// Score itself has no uint64-underlying type to hang atomic.LoadUint64
// off of directly.
func packScore(s Score) uint64 {
	return uint64(uint16(s.MG))<<16 | uint64(uint16(s.EG))
}

func unpackScore(p uint64) Score {
	return Score{MG: int16(uint16(p >> 16)), EG: int16(uint16(p))}
}

// PawnKingTable is a fixed-size, direct-mapped, lock-free cache. Writes
// overwrite a whole slot without synchronization; reads validate both the
// stored hash and the XOR guard before trusting a slot, so a write torn
// by concurrent access is treated as a miss rather than corrupting the
// evaluation (see the concurrency model this mirrors in searchharness).
type PawnKingTable struct {
	slots []pkSlot
	mask  uint64

	hits    uint64
	misses  uint64
	replace uint64
}

// NewPawnKingTable builds a table sized to the nearest power of two
// number of entries that fit in sizeMB megabytes.
func NewPawnKingTable(sizeMB int) *PawnKingTable {
	if sizeMB < 1 {
		sizeMB = 1
	}
	bytesAvailable := sizeMB * 1024 * 1024
	entrySize := 40 // pkSlot is a few words; a round number is fine here
	entries := 1
	for entries*2*entrySize <= bytesAvailable {
		entries *= 2
	}
	t := &PawnKingTable{
		slots: make([]pkSlot, entries),
		mask:  uint64(entries - 1),
	}
	logging.GetLog().Infof(out.Sprintf("pawn-king cache: %d entries (%.1f MiB)", entries, float64(entries*entrySize)/(1024*1024)))
	return t
}

func (t *PawnKingTable) index(hash Key) uint64 { return uint64(hash) & t.mask }

// probe returns the cached entry for hash, or nil on a miss (including a
// miss caused by a concurrently torn write).
func (t *PawnKingTable) probe(hash Key) *PawnKingEntry {
	slot := &t.slots[t.index(hash)]
	pkhash := Key(atomic.LoadUint64((*uint64)(&slot.pkhash)))
	passed := Bitboard(atomic.LoadUint64((*uint64)(&slot.passed)))
	guard := Key(atomic.LoadUint64((*uint64)(&slot.guard)))
	eval := unpackScore(atomic.LoadUint64(&slot.evalPacked))

	if pkhash != hash {
		atomic.AddUint64(&t.misses, 1)
		return nil
	}
	if packed(pkhash, passed, eval) != guard {
		atomic.AddUint64(&t.misses, 1)
		return nil
	}
	atomic.AddUint64(&t.hits, 1)
	return &PawnKingEntry{pkhash: pkhash, passed: passed, eval: eval}
}

// store writes a new entry, unconditionally overwriting whatever was in
// that slot. No lock is taken: concurrent writers may interleave, but any
// reader that observes a torn write will fail the guard check in probe
// and simply treat it as a miss.
func (t *PawnKingTable) store(hash Key, passed Bitboard, eval Score) {
	slot := &t.slots[t.index(hash)]
	if slot.pkhash != 0 {
		atomic.AddUint64(&t.replace, 1)
	}
	guard := packed(hash, passed, eval)
	atomic.StoreUint64(&slot.evalPacked, packScore(eval))
	atomic.StoreUint64((*uint64)(&slot.passed), uint64(passed))
	atomic.StoreUint64((*uint64)(&slot.guard), uint64(guard))
	atomic.StoreUint64((*uint64)(&slot.pkhash), uint64(hash))
}

// Clear resets every slot and statistic counter.
func (t *PawnKingTable) Clear() {
	for i := range t.slots {
		t.slots[i] = pkSlot{}
	}
	atomic.StoreUint64(&t.hits, 0)
	atomic.StoreUint64(&t.misses, 0)
	atomic.StoreUint64(&t.replace, 0)
	logging.GetLog().Debug("pawn-king cache cleared")
}

// Len returns the number of slots in the table.
func (t *PawnKingTable) Len() int { return len(t.slots) }

// Stats returns hit/miss/replace counters accumulated since construction
// or the last Clear.
func (t *PawnKingTable) Stats() (hits, misses, replace uint64) {
	return atomic.LoadUint64(&t.hits), atomic.LoadUint64(&t.misses), atomic.LoadUint64(&t.replace)
}

// HitRate returns hits / (hits+misses), or 0 if nothing has been probed.
func (t *PawnKingTable) HitRate() float64 {
	hits, misses, _ := t.Stats()
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}
