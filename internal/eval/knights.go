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

func evaluateKnights(ei *EvalInfo, c Color) Score {
	cfg := evalCfg()
	them := c.Other()

	var score Score
	knights := ei.b.PiecesOf(c, Knight)
	for knights != 0 {
		var sq Square
		knights, sq = knights.PopLsb()

		att := attacks.KnightAttacks(sq)
		ei.addAttack(c, Knight, att)
		ei.addKingAttackers(c, Knight, att)

		if attacks.OutpostRanksMasks(c).Has(sq) && attacks.OutpostSquareMasks(c, sq)&ei.b.PiecesOf(them, Pawn) == 0 {
			defended := 0
			if attacks.PawnAttacks(them, sq)&ei.b.PiecesOf(c, Pawn) != 0 {
				defended = 1
			}
			score = score.Add(cfg.KnightOutpost[defended])
		}

		if front, ok := squareAhead(c, sq); ok && ei.b.Pieces(Pawn).Has(front) {
			score = score.Add(cfg.KnightBehindPawn)
		}

		mob := (att & ei.mobilityAreas[c]).PopCount()
		score = score.Add(cfg.KnightMobility[mob])
	}
	return score
}
