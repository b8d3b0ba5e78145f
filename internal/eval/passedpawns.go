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

// evaluatePassedPawns reads ei.passedPawns, populated by evaluatePawns (or
// restored from the pawn-king cache), and scores every passer of color c.
func evaluatePassedPawns(ei *EvalInfo, c Color) Score {
	cfg := evalCfg()
	them := c.Other()
	occ := ei.b.Occupied()

	var score Score
	passers := ei.passedPawns & ei.b.PiecesOf(c, Pawn)
	for passers != 0 {
		var sq Square
		passers, sq = passers.PopLsb()

		rank := int(attacks.RelativeRankOf(c, sq))
		stop := stopSquare(c, sq)

		canAdvance := 0
		if !occ.Has(stop) {
			canAdvance = 1
		}
		safeAdvance := 0
		if attacks.PawnAttacks(c, stop)&ei.b.PiecesOf(them, Pawn) == 0 && !isSquareAttacked(ei, them, stop) {
			safeAdvance = 1
		}
		score = score.Add(cfg.PassedPawn[canAdvance][safeAdvance][rank])

		score = score.Add(cfg.PassedFriendlyDistance[rank].MulInt(kingDistance(sq, ei.kingSquare[c])))
		score = score.Add(cfg.PassedEnemyDistance[rank].MulInt(kingDistance(sq, ei.kingSquare[them])))

		if !fileAttackedAhead(ei, c, them, sq) {
			score = score.Add(cfg.PassedSafePromotionPath)
		}
	}
	return score
}

// isSquareAttacked reports whether any piece of color attacker attacks sq,
// using the attack maps already accumulated in ei by this point in the
// pipeline (pawns..queens and the opposing king).
func isSquareAttacked(ei *EvalInfo, attacker Color, sq Square) bool {
	return ei.attacked[attacker]&Bb(sq) != 0
}

// fileAttackedAhead reports whether any square ahead of sq on its file is
// attacked by the enemy, used to gate the passed-safe-promotion-path bonus.
func fileAttackedAhead(ei *EvalInfo, c, them Color, sq Square) bool {
	ahead := attacks.ForwardRanksMasks(c, RankOf(sq)) & FileBb(FileOf(sq))
	return ahead&ei.attacked[them] != 0
}
