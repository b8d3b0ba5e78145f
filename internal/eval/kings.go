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

// evaluateKings must run after every other piece type of both colors has
// been processed, since it reads the attack maps they accumulated.
func evaluateKings(ei *EvalInfo, c Color) Score {
	var score Score

	score = score.Add(kingSafety(ei, c))
	score = score.Add(kingDefenders(ei, c))
	if !ei.hasPawnKingHit() {
		shelterAndStorm(ei, c)
	}
	return score
}

func kingDefenders(ei *EvalInfo, c Color) Score {
	cfg := evalCfg()
	area := ei.kingAreas[c]
	defenders := area & (ei.b.PiecesOf(c, Pawn) | ei.b.PiecesOf(c, Knight) | ei.b.PiecesOf(c, Bishop))
	n := minInt(defenders.PopCount(), len(cfg.KingDefenders)-1)
	return cfg.KingDefenders[n]
}

func kingSafety(ei *EvalInfo, c Color) Score {
	cfg := evalCfg()
	them := c.Other()

	enemyQueens := ei.b.PiecesOf(them, Queen).PopCount()
	// Clamped at 0: with 2+ enemy queens (only reachable via underpromotion)
	// this gate is stricter than the unclamped 1-enemyQueens formula.
	if ei.kingAttackersCount[them] <= maxInt(0, 1-enemyQueens) {
		return Score{}
	}

	ourKing := ei.kingSquare[c]
	weak := ei.attacked[them] &^ ei.attackedBy2[c] &
		(^ei.attacked[c] | ei.attackedBy[c][Queen] | ei.attackedBy[c][King])

	areaSize := ei.kingAreas[c].PopCount()
	if areaSize == 0 {
		areaSize = 1
	}
	scaledAttackCounts := 9.0 * float64(ei.kingAttacksCount[them]) / float64(areaSize)

	safe := ^ei.b.Colours(them) & (^ei.attacked[c] | (weak & ei.attackedBy2[them]))

	occ := ei.b.Occupied()
	knightChecks := (attacks.KnightAttacks(ourKing) & safe & ei.attackedBy[them][Knight]).PopCount()
	bishopChecks := (attacks.BishopAttacks(ourKing, occ) & safe & ei.attackedBy[them][Bishop]).PopCount()
	rookChecks := (attacks.RookAttacks(ourKing, occ) & safe & ei.attackedBy[them][Rook]).PopCount()
	queenChecks := ((attacks.BishopAttacks(ourKing, occ) | attacks.RookAttacks(ourKing, occ)) & safe & ei.attackedBy[them][Queen]).PopCount()

	danger := ei.kingAttackersCount[them]*ei.kingAttackersWeight[them] +
		cfg.KSAttackValue*int(scaledAttackCounts) +
		cfg.KSWeakSquares*(weak&ei.kingAreas[c]).PopCount() +
		cfg.KSFriendlyPawns*(ei.b.PiecesOf(c, Pawn)&ei.kingAreas[c]&^weak).PopCount() +
		cfg.KSSafeQueenCheck*queenChecks +
		cfg.KSSafeRookCheck*rookChecks +
		cfg.KSSafeBishopCheck*bishopChecks +
		cfg.KSSafeKnightCheck*knightChecks +
		cfg.KSAdjustment

	if enemyQueens == 0 {
		danger += cfg.KSNoEnemyQueens
	}

	if danger <= 0 {
		return Score{}
	}
	return Score{MG: int16(-danger * danger / 720), EG: int16(-danger / 20)}
}

func shelterAndStorm(ei *EvalInfo, c Color) {
	cfg := evalCfg()
	kingFile := FileOf(ei.kingSquare[c])
	them := c.Other()

	ourPawns := ei.b.PiecesOf(c, Pawn)
	theirPawns := ei.b.PiecesOf(them, Pawn)

	kingRank := attacks.RelativeRankOf(c, ei.kingSquare[c])
	atOrAhead := attacks.ForwardRanksMasks(c, RankOf(ei.kingSquare[c])) | RankBb(RankOf(ei.kingSquare[c]))

	var shelter, storm Score

	for f := maxInt(int(kingFile)-1, 0); f <= minInt(int(kingFile)+1, 7); f++ {
		file := File(f)
		fileBb := FileBb(file) & atOrAhead

		ourDist := 7
		if sq := attacks.Backmost(c, ourPawns&fileBb); sq != SqNone {
			ourDist = int(attacks.RelativeRankOf(c, sq) - kingRank)
		}
		theirDist := 7
		if sq := attacks.Backmost(c, theirPawns&fileBb); sq != SqNone {
			theirDist = int(attacks.RelativeRankOf(c, sq) - kingRank)
		}

		sameFile := 0
		if file == kingFile {
			sameFile = 1
		}
		shelter = shelter.Add(cfg.KingShelter[sameFile][f][ourDist])

		blocked := 0
		if ourDist != 7 && ourDist == theirDist-1 {
			blocked = 1
		}
		storm = storm.Add(cfg.KingStorm[blocked][attacks.MirrorFile(file)][theirDist])
	}

	net := shelter.Add(storm)
	if c == White {
		ei.pkeval[White] = ei.pkeval[White].Add(net)
	} else {
		ei.pkeval[White] = ei.pkeval[White].Sub(net)
	}
}
