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
	"github.com/chessgo/staticeval/internal/attacks"
	. "github.com/chessgo/staticeval/internal/types"
)

// evaluatePawns scores color c's pawns into the net ei.pkeval[White]
// (added for White, subtracted for Black) and marks c's passers in
// ei.passedPawns. It is skipped entirely on a pawn-king cache hit; the
// caller checks that.
func evaluatePawns(ei *EvalInfo, c Color) {
	cfg := evalCfg()
	them := c.Other()
	ourPawns := ei.b.PiecesOf(c, Pawn)
	theirPawns := ei.b.PiecesOf(them, Pawn)

	var score Score
	remaining := ourPawns
	for remaining != 0 {
		var sq Square
		remaining, sq = remaining.PopLsb()

		passed := theirPawns&attacks.PassedPawnMasks(c, sq) == 0
		if passed {
			ei.passedPawns = ei.passedPawns.PushSquare(sq)
		}

		adjacent := attacks.AdjacentFilesMasks(FileOf(sq))
		if ourPawns&adjacent == 0 {
			score = score.Add(cfg.PawnIsolated)
		}

		// Stacked: only an own pawn still-to-be-processed (ahead on the
		// same file in iteration order) counts, so each doubled pair is
		// penalized exactly once rather than once per pawn in the stack.
		if remaining&FileBbOf(sq)&(ourPawns) != 0 {
			score = score.Add(cfg.PawnStacked)
		}

		stop := stopSquare(c, sq)
		backward := !pawnDefended(c, ourPawns, stop) && attacks.PawnAttacks(c, stop)&theirPawns != 0
		connected := adjacent&attacks.PawnConnectedMasks(c, sq)&ourPawns != 0

		switch {
		case connected:
			score = score.Add(cfg.PawnConnected32[relativeSquare32(sq, c)])
		case backward && !passed:
			openFile := 0
			if attacks.ForwardRanksMasks(c, RankOf(sq))&FileBbOf(sq)&theirPawns == 0 {
				openFile = 1
			}
			score = score.Add(cfg.PawnBackward[openFile])
		}

		if !passed && isCandidatePasser(c, sq, ourPawns, theirPawns) {
			supported := 0
			if (attacks.PawnAttacks(them, sq) & ourPawns).PopCount() >= (attacks.PawnAttacks(c, sq) & theirPawns).PopCount() {
				supported = 1
			}
			score = score.Add(cfg.PawnCandidatePasser[supported][attacks.RelativeRankOf(c, sq)])
		}
	}

	if c == White {
		ei.pkeval[White] = ei.pkeval[White].Add(score)
	} else {
		ei.pkeval[White] = ei.pkeval[White].Sub(score)
	}
}

// FileBbOf returns the full file bitboard a square sits on.
func FileBbOf(sq Square) Bitboard { return FileBb(FileOf(sq)) }

func stopSquare(c Color, sq Square) Square {
	s, ok := squareAhead(c, sq)
	if !ok {
		return sq
	}
	return s
}

func pawnDefended(c Color, ourPawns Bitboard, sq Square) bool {
	return attacks.PawnAttacks(c.Other(), sq)&ourPawns != 0
}

// isCandidatePasser reports whether sq holds a not-yet-passed pawn whose
// only obstacles ahead are capturable, and whose push square is at least
// as well supported by us as it is attacked by them.
func isCandidatePasser(c Color, sq Square, ourPawns, theirPawns Bitboard) bool {
	triangle := attacks.PassedPawnMasks(c, sq)
	blockers := triangle & theirPawns
	if blockers == 0 {
		return false
	}
	captureSquares := attacks.PawnAttacks(c, sq) | attacks.PawnAttacks(c, stopSquare(c, sq))
	if blockers&^captureSquares != 0 {
		return false
	}
	stop := stopSquare(c, sq)
	ourAttackers := attacks.PawnAttacks(c.Other(), stop) & ourPawns
	theirAttackers := attacks.PawnAttacks(c, stop) & theirPawns
	return ourAttackers.PopCount() >= theirAttackers.PopCount()
}
