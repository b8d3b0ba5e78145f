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

// evaluateThreats scores tactical motifs visible from the static attack
// maps: pieces hanging to a lesser attacker, overloaded defenders, and
// safe pawn pushes that would attack something.
func evaluateThreats(ei *EvalInfo, c Color) Score {
	cfg := evalCfg()
	them := c.Other()
	var score Score

	ourMinorsMajors := ei.b.PiecesOf(c, Knight) | ei.b.PiecesOf(c, Bishop) | ei.b.PiecesOf(c, Rook) | ei.b.PiecesOf(c, Queen)
	poorlyDefended := (ei.attacked[them] &^ ei.attacked[c]) |
		(ei.attackedBy2[them] &^ ei.attackedBy2[c] &^ ei.attackedBy[c][Pawn])

	weakPawns := ei.b.PiecesOf(c, Pawn) & poorlyDefended &^ ei.attackedBy[them][Pawn]
	score = score.Add(cfg.ThreatWeakPawn.MulInt(weakPawns.PopCount()))

	minors := ei.b.PiecesOf(c, Knight) | ei.b.PiecesOf(c, Bishop)
	minorsByPawn := minors & ei.attackedBy[them][Pawn]
	score = score.Add(cfg.ThreatMinorAttackedByPawn.MulInt(minorsByPawn.PopCount()))

	minorsByMinor := minors & (ei.attackedBy[them][Knight] | ei.attackedBy[them][Bishop])
	score = score.Add(cfg.ThreatMinorAttackedByMinor.MulInt(minorsByMinor.PopCount()))

	minorsByMajor := minors & (ei.attackedBy[them][Rook] | ei.attackedBy[them][Queen]) & poorlyDefended
	score = score.Add(cfg.ThreatMinorAttackedByMajor.MulInt(minorsByMajor.PopCount()))

	rooks := ei.b.PiecesOf(c, Rook)
	rooksByLesser := rooks & (ei.attackedBy[them][Pawn] | ei.attackedBy[them][Knight] | ei.attackedBy[them][Bishop])
	score = score.Add(cfg.ThreatRookAttackedByLesser.MulInt(rooksByLesser.PopCount()))

	queens := ei.b.PiecesOf(c, Queen)
	queenAttackers := (queens & ei.attacked[them]).PopCount()
	score = score.Add(cfg.ThreatQueenAttackedByOne.MulInt(queenAttackers))

	overloaded := overloadedPieces(ei, c, ourMinorsMajors)
	score = score.Add(cfg.ThreatOverloadedPieces.MulInt(overloaded))

	score = score.Add(cfg.ThreatByPawnPush.MulInt(safePawnPushThreats(ei, c)))

	return score
}

// overloadedPieces counts own minors/majors that are attacked and
// defended exactly once by each side: a piece that cannot be reinforced
// without giving something else up.
func overloadedPieces(ei *EvalInfo, c Color, candidates Bitboard) int {
	them := c.Other()
	count := 0
	remaining := candidates
	for remaining != 0 {
		var sq Square
		remaining, sq = remaining.PopLsb()
		attackedOnce := ei.attacked[them].Has(sq) && !ei.attackedBy2[them].Has(sq)
		defendedOnce := ei.attacked[c].Has(sq) && !ei.attackedBy2[c].Has(sq)
		if attackedOnce && defendedOnce {
			count++
		}
	}
	return count
}

// safePawnPushThreats counts enemy pieces that a safe single (or, from the
// starting rank, double) pawn push would newly attack.
func safePawnPushThreats(ei *EvalInfo, c Color) int {
	them := c.Other()
	occ := ei.b.Occupied()
	pawns := ei.b.PiecesOf(c, Pawn)

	single := attacks.PawnAdvance(pawns, occ, c) &^ ei.attackedBy[them][Pawn]
	double := attacks.PawnAdvance(single&rankAheadOf(c), occ, c)

	safe := (single | double) &^ ei.attackedBy[them][Pawn]
	safe &= ^ei.attacked[them] | ei.attacked[c]

	targets := (ei.b.Colours(them) &^ ei.b.PiecesOf(them, Pawn)) &^ ei.attackedBy[c][Pawn]
	threatened := attacks.PawnAttacksBb(c, safe) & targets
	return threatened.PopCount()
}

// rankAheadOf returns the rank a just-pushed pawn sits on when eligible
// for a further double push (rank 3 for White, rank 6 for Black).
func rankAheadOf(c Color) Bitboard {
	if c == White {
		return RankBb(Rank3)
	}
	return RankBb(Rank6)
}
