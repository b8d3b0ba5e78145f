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
	"fmt"

	"github.com/chessgo/staticeval/internal/board"
	"github.com/chessgo/staticeval/internal/psqt"
	. "github.com/chessgo/staticeval/internal/types"
)

// Evaluate returns a centipawn score for b from the side-to-move's
// perspective. It is pure given b and pkTable's current contents, safe to
// call from any number of goroutines concurrently, and never blocks.
func Evaluate(b *board.Board, pkTable *PawnKingTable) int {
	ei := newEvalInfo(b, pkTable)

	score := b.PsqMat()

	if !ei.hasPawnKingHit() {
		evaluatePawns(ei, White)
		evaluatePawns(ei, Black)
	}

	score = score.Add(evaluateKnights(ei, White)).Sub(evaluateKnights(ei, Black))
	score = score.Add(evaluateBishops(ei, White)).Sub(evaluateBishops(ei, Black))
	score = score.Add(evaluateRooks(ei, White)).Sub(evaluateRooks(ei, Black))
	score = score.Add(evaluateQueens(ei, White)).Sub(evaluateQueens(ei, Black))
	score = score.Add(evaluateKings(ei, White)).Sub(evaluateKings(ei, Black))

	if !ei.hasPawnKingHit() {
		pkTable.store(b.PKHash(), ei.passedPawns, ei.pkeval[White])
	}
	score = score.Add(ei.pkeval[White]).Sub(ei.pkeval[Black])

	score = score.Add(evaluatePassedPawns(ei, White)).Sub(evaluatePassedPawns(ei, Black))
	score = score.Add(evaluateThreats(ei, White)).Sub(evaluateThreats(ei, Black))

	score = score.Add(evalCfg().Tempo[b.Turn()])

	return taper(b, score) * b.Turn().Direction()
}

// InitPSQT (re)builds the piece-square table from psqt.PieceValues and
// the psqt half-tables. Call once at startup, and again after
// psqt.PieceValues has been changed.
func InitPSQT() { psqt.Init() }

// Report renders a short breakdown of the evaluation for b, for ad-hoc
// debug output.
func Report(b *board.Board, pkTable *PawnKingTable) string {
	cp := Evaluate(b, pkTable)
	hits, misses, replace := pkTable.Stats()
	return fmt.Sprintf(
		"eval=%d cp, phase=%d, turn=%s, pkcache{hits=%d misses=%d replace=%d hitrate=%.1f%%}",
		cp, gamePhase(b), b.Turn(), hits, misses, replace, pkTable.HitRate()*100,
	)
}
