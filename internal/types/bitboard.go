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

package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit set of squares, bit 0 == a1, bit 63 == h8.
type Bitboard uint64

// Bb returns the singleton bitboard for a square.
func Bb(s Square) Bitboard { return Bitboard(1) << uint(s) }

const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	FileABb Bitboard = 0x0101010101010101
	FileHBb Bitboard = FileABb << 7
	Rank1Bb Bitboard = 0xFF
	Rank8Bb Bitboard = Rank1Bb << (8 * 7)
	Rank2Bb Bitboard = Rank1Bb << 8
	Rank3Bb Bitboard = Rank1Bb << 16
	Rank4Bb Bitboard = Rank1Bb << 24
	Rank5Bb Bitboard = Rank1Bb << 32
	Rank6Bb Bitboard = Rank1Bb << 40
	Rank7Bb Bitboard = Rank1Bb << 48
)

var fileBb = [FileLength]Bitboard{}
var rankBb = [RankLength]Bitboard{}

func init() {
	f := FileABb
	for i := range fileBb {
		fileBb[i] = f
		f <<= 1
	}
	r := Rank1Bb
	for i := range rankBb {
		rankBb[i] = r
		r <<= 8
	}
}

// FileBb returns the full file as a bitboard.
func FileBb(f File) Bitboard { return fileBb[f] }

// RankBb returns the full rank as a bitboard.
func RankBb(r Rank) Bitboard { return rankBb[r] }

// Has reports whether s is a member of b.
func (b Bitboard) Has(s Square) bool { return b&Bb(s) != 0 }

// PushSquare returns b with s added.
func (b Bitboard) PushSquare(s Square) Bitboard { return b | Bb(s) }

// PopSquare returns b with s removed.
func (b Bitboard) PopSquare(s Square) Bitboard { return b &^ Bb(s) }

// PopCount returns the number of set squares.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// Lsb returns the least significant set square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set square, or SqNone if empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns the remaining bitboard and the square that was removed.
func (b Bitboard) PopLsb() (Bitboard, Square) {
	s := b.Lsb()
	return b &^ Bb(s), s
}

// Direction is a compass shift expressed as a square-index delta.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West
)

// Shift moves every square of b one step in direction d, discarding
// squares that would wrap around the file A/H edges.
func Shift(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case NorthEast:
		return (b &^ FileHBb) << 9
	case NorthWest:
		return (b &^ FileABb) << 7
	case SouthEast:
		return (b &^ FileHBb) >> 7
	case SouthWest:
		return (b &^ FileABb) >> 9
	default:
		return 0
	}
}

// String renders the bitboard as an 8x8 ASCII board, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
