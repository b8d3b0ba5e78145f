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

// Package eval is the static position evaluator: given a read-only Board
// and a shared pawn-king cache it returns a centipawn score from the
// side-to-move's perspective. It never blocks, never allocates on the
// heap beyond its own stack-local EvalInfo, and is safe to call from any
// number of goroutines concurrently against one shared PawnKingTable.
package eval

import (
	"github.com/chessgo/staticeval/internal/attacks"
	"github.com/chessgo/staticeval/internal/board"
	. "github.com/chessgo/staticeval/internal/types"
)

// EvalInfo is transient, stack-local scratch built once per Evaluate call
// and threaded through every per-piece-type pass.
type EvalInfo struct {
	b *board.Board

	pawnAttacks   [ColorLength]Bitboard
	rammedPawns   [ColorLength]Bitboard
	blockedPawns  [ColorLength]Bitboard
	kingAreas     [ColorLength]Bitboard
	mobilityAreas [ColorLength]Bitboard

	attacked    [ColorLength]Bitboard
	attackedBy  [ColorLength][PieceTypeLength]Bitboard
	attackedBy2 [ColorLength]Bitboard

	occupiedMinusBishops [ColorLength]Bitboard
	occupiedMinusRooks   [ColorLength]Bitboard

	kingSquare          [ColorLength]Square
	kingAttacksCount    [ColorLength]int
	kingAttackersCount  [ColorLength]int
	kingAttackersWeight [ColorLength]int

	passedPawns Bitboard

	pkentry *PawnKingEntry
	pkeval  [ColorLength]Score
}

// newEvalInfo builds and populates an EvalInfo for b, probing pkTable for
// a pawn-king cache hit. On hit, passedPawns and pkeval[White] are
// restored from the cached entry and pkeval[Black] stays zero: the cache
// stores one net pawn-king score, not a per-color pair.
func newEvalInfo(b *board.Board, pkTable *PawnKingTable) *EvalInfo {
	ei := &EvalInfo{b: b}

	occ := b.Occupied()
	for c := White; c <= Black; c++ {
		them := c.Other()
		pawns := b.PiecesOf(c, Pawn)
		theirPawns := b.PiecesOf(them, Pawn)

		ei.pawnAttacks[c] = attacks.PawnAttacksBb(c, pawns)

		if c == White {
			ei.rammedPawns[c] = pawns & Shift(theirPawns, South)
			ei.blockedPawns[c] = pawns & Shift(occ, South)
		} else {
			ei.rammedPawns[c] = pawns & Shift(theirPawns, North)
			ei.blockedPawns[c] = pawns & Shift(occ, North)
		}

		ei.kingSquare[c] = b.KingSquare(c)
		ei.kingAreas[c] = attacks.KingAreaMasks(c, ei.kingSquare[c])

		ei.occupiedMinusBishops[c] = occ &^ (b.PiecesOf(c, Bishop) | b.PiecesOf(c, Queen))
		ei.occupiedMinusRooks[c] = occ &^ (b.PiecesOf(c, Rook) | b.PiecesOf(c, Queen))
	}
	for c := White; c <= Black; c++ {
		them := c.Other()
		ei.mobilityAreas[c] = ^(ei.pawnAttacks[them] | Bb(ei.kingSquare[c]) | ei.blockedPawns[c])
		ei.attackedBy[c][King] = attacks.KingAttacks(ei.kingSquare[c])
		ei.attackedBy[c][Pawn] = ei.pawnAttacks[c]
		ei.attacked[c] = ei.attackedBy[c][King] | ei.attackedBy[c][Pawn]
	}
	ei.attackedBy2[White] = ei.attackedBy[White][King] & ei.attackedBy[White][Pawn]
	ei.attackedBy2[Black] = ei.attackedBy[Black][King] & ei.attackedBy[Black][Pawn]

	ei.pkentry = pkTable.probe(b.PKHash())
	if ei.pkentry != nil {
		ei.passedPawns = ei.pkentry.passed
		ei.pkeval[White] = ei.pkentry.eval
	}

	return ei
}

func (ei *EvalInfo) addAttack(c Color, pt PieceType, attacked Bitboard) {
	ei.attackedBy2[c] |= ei.attacked[c] & attacked
	ei.attackedBy[c][pt] |= attacked
	ei.attacked[c] |= attacked
}

func (ei *EvalInfo) addKingAttackers(c Color, pt PieceType, attacked Bitboard) {
	them := c.Other()
	inArea := attacked & ei.kingAreas[them]
	if inArea == 0 {
		return
	}
	cfg := evalCfg()
	ei.kingAttackersCount[c]++
	ei.kingAttackersWeight[c] += cfg.KSAttackWeight[pt]
	ei.kingAttacksCount[c] += inArea.PopCount()
}

func (ei *EvalInfo) hasPawnKingHit() bool { return ei.pkentry != nil }
