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

import "fmt"

// Score is a packed (middlegame, endgame) centipawn pair. All evaluation
// terms are Scores; they combine by componentwise addition and are
// tapered down to a single value once the game phase is known.
type Score struct {
	MG int16
	EG int16
}

// S builds a Score from a middlegame and endgame value.
func S(mg, eg int16) Score { return Score{MG: mg, EG: eg} }

// Add returns the componentwise sum of two scores.
func (s Score) Add(o Score) Score { return Score{MG: s.MG + o.MG, EG: s.EG + o.EG} }

// Sub returns the componentwise difference of two scores.
func (s Score) Sub(o Score) Score { return Score{MG: s.MG - o.MG, EG: s.EG - o.EG} }

// Neg negates both halves of the score.
func (s Score) Neg() Score { return Score{MG: -s.MG, EG: -s.EG} }

// MulInt scales both halves by a plain integer, used by per-count terms
// such as mobility and king-distance bonuses.
func (s Score) MulInt(n int) Score { return Score{MG: int16(int(s.MG) * n), EG: int16(int(s.EG) * n)} }

func (s Score) String() string { return fmt.Sprintf("(%d, %d)", s.MG, s.EG) }

// Key is a Zobrist hash key.
type Key uint64
