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

package config

import (
	. "github.com/chessgo/staticeval/internal/types"
)

// EvalConfiguration holds every weighted term the evaluator applies.
// Material is in the psqt package; everything else lives here so a
// config file can retune play strength without a rebuild.
type EvalConfiguration struct {
	Tempo [ColorLength]Score

	PawnIsolated        Score
	PawnStacked         Score
	PawnBackward        [2]Score // [openFile]
	PawnConnected32     [32]Score
	PawnCandidatePasser [2][8]Score // [supported][relativeRank]

	KnightOutpost    [2]Score // [defendedByPawn]
	KnightBehindPawn Score
	KnightMobility   [9]Score

	BishopPair        Score
	BishopRammedPawns Score
	BishopOutpost     [2]Score
	BishopBehindPawn  Score
	BishopMobility    [14]Score

	RookFile       [2]Score // [open]: 0 semi-open, 1 fully open
	RookOnSeventh  Score
	RookMobility   [15]Score

	QueenMobility [28]Score

	KingDefenders [12]Score
	KingShelter   [2][8][8]Score // [sameFileAsKing][file][distance]
	KingStorm     [2][4][8]Score // [blocked][mirroredFile][distance]

	KSAttackWeight   [PieceTypeLength]int
	KSAttackValue    int
	KSWeakSquares    int
	KSFriendlyPawns  int
	KSNoEnemyQueens  int
	KSSafeQueenCheck int
	KSSafeRookCheck  int
	KSSafeBishopCheck int
	KSSafeKnightCheck int
	KSAdjustment     int

	PassedPawn             [2][2][8]Score // [canAdvance][safeAdvance][relativeRank]
	PassedFriendlyDistance [8]Score
	PassedEnemyDistance    [8]Score
	PassedSafePromotionPath Score

	ThreatWeakPawn             Score
	ThreatMinorAttackedByPawn  Score
	ThreatMinorAttackedByMinor Score
	ThreatMinorAttackedByMajor Score
	ThreatRookAttackedByLesser Score
	ThreatQueenAttackedByOne   Score
	ThreatOverloadedPieces     Score
	ThreatByPawnPush           Score

	ScaleOCBBishopsOnly int
	ScaleOCBOneKnight   int
	ScaleOCBOneRook     int
	ScaleNormal         int
}

func defaultEvalConfiguration() EvalConfiguration {
	var e EvalConfiguration

	e.Tempo = [ColorLength]Score{S(25, 12), S(-25, -12)}

	e.PawnIsolated = S(-13, -17)
	e.PawnStacked = S(-5, -23)
	e.PawnBackward = [2]Score{S(-11, -7), S(-23, -15)}
	e.PawnConnected32 = [32]Score{
		S(0, 0), S(0, 0), S(0, 0), S(0, 0),
		S(2, -2), S(7, 1), S(4, 0), S(8, 4),
		S(5, 0), S(14, 3), S(9, 2), S(13, 7),
		S(5, 5), S(14, 9), S(16, 10), S(19, 15),
		S(11, 14), S(24, 19), S(26, 24), S(30, 28),
		S(26, 34), S(38, 45), S(46, 51), S(52, 60),
		S(75, 90), S(92, 105), S(98, 112), S(104, 118),
		S(0, 0), S(0, 0), S(0, 0), S(0, 0),
	}
	e.PawnCandidatePasser = [2][8]Score{
		{S(0, 0), S(0, 0), S(2, 7), S(2, 17), S(8, 25), S(20, 41), S(0, 0), S(0, 0)},
		{S(0, 0), S(0, 0), S(-3, 4), S(-5, 12), S(4, 22), S(17, 33), S(0, 0), S(0, 0)},
	}

	e.KnightOutpost = [2]Score{S(12, 5), S(30, 16)}
	e.KnightBehindPawn = S(3, 20)
	e.KnightMobility = [9]Score{
		S(-104, -139), S(-45, -114), S(-22, -37), S(-8, 3),
		S(5, 15), S(11, 34), S(19, 38), S(30, 37), S(43, 17),
	}

	e.BishopPair = S(22, 88)
	e.BishopRammedPawns = S(-8, -17)
	e.BishopOutpost = [2]Score{S(16, 2), S(40, 12)}
	e.BishopBehindPawn = S(5, 17)
	e.BishopMobility = [14]Score{
		S(-99, -186), S(-46, -124), S(-16, -54), S(-4, -14),
		S(6, -1), S(14, 12), S(17, 22), S(19, 28),
		S(19, 33), S(27, 33), S(26, 37), S(41, 28),
		S(48, 26), S(40, 20),
	}

	e.RookFile = [2]Score{S(13, 8), S(29, 5)}
	e.RookOnSeventh = S(-1, 36)
	e.RookMobility = [15]Score{
		S(-127, -148), S(-56, -127), S(-25, -85), S(-12, -28),
		S(-10, 2), S(-12, 27), S(-11, 42), S(-4, 46),
		S(1, 55), S(7, 61), S(10, 66), S(16, 68),
		S(18, 71), S(35, 59), S(102, 20),
	}

	e.QueenMobility = [28]Score{
		S(-111, -273), S(-253, -401), S(-127, -228), S(-46, -236),
		S(-20, -173), S(-9, -86), S(-1, -35), S(2, -13),
		S(7, 12), S(13, 22), S(16, 41), S(20, 47),
		S(22, 57), S(23, 65), S(23, 69), S(23, 72),
		S(21, 75), S(19, 76), S(18, 79), S(23, 73),
		S(23, 70), S(33, 56), S(30, 48), S(32, 34),
		S(22, 26), S(16, 16), S(3, 11), S(0, 1),
	}

	e.KingDefenders = [12]Score{
		S(-37, -3), S(-17, 2), S(0, 6), S(11, 8),
		S(21, 8), S(32, 4), S(38, -3), S(10, -4),
		S(0, 0), S(0, 0), S(0, 0), S(0, 0),
	}

	for sameFile := 0; sameFile < 2; sameFile++ {
		for f := 0; f < 8; f++ {
			for d := 0; d < 8; d++ {
				base := 8 - d
				mg := base * (4 + sameFile*2)
				e.KingShelter[sameFile][f][d] = S(int16(mg), int16(mg/4))
			}
		}
	}
	for blocked := 0; blocked < 2; blocked++ {
		for f := 0; f < 4; f++ {
			for d := 0; d < 8; d++ {
				base := -(8 - d)
				if blocked == 1 {
					base /= 2
				}
				e.KingStorm[blocked][f][d] = S(int16(base), int16(base/2))
			}
		}
	}

	e.KSAttackWeight = [PieceTypeLength]int{0, 20, 20, 40, 80, 0}
	e.KSAttackValue = 1
	e.KSWeakSquares = 35
	e.KSFriendlyPawns = -11
	e.KSNoEnemyQueens = -150
	e.KSSafeQueenCheck = 57
	e.KSSafeRookCheck = 57
	e.KSSafeBishopCheck = 24
	e.KSSafeKnightCheck = 68
	e.KSAdjustment = -9

	e.PassedPawn = [2][2][8]Score{
		{
			{S(0, 0), S(-7, -4), S(-10, 10), S(-9, 38), S(5, 59), S(22, 95), S(55, 143), S(0, 0)},
			{S(0, 0), S(-2, 6), S(-7, 16), S(-6, 49), S(9, 78), S(30, 121), S(68, 182), S(0, 0)},
		},
		{
			{S(0, 0), S(-6, 4), S(-8, 17), S(-5, 45), S(10, 68), S(30, 112), S(70, 168), S(0, 0)},
			{S(0, 0), S(0, 7), S(-3, 20), S(1, 53), S(18, 84), S(42, 133), S(90, 203), S(0, 0)},
		},
	}
	e.PassedFriendlyDistance = [8]Score{S(0, 0), S(0, -2), S(0, -4), S(0, -6), S(0, -8), S(0, -8), S(0, -8), S(0, -8)}
	e.PassedEnemyDistance = [8]Score{S(0, 0), S(0, 4), S(0, 8), S(0, 12), S(0, 16), S(0, 18), S(0, 20), S(0, 20)}
	e.PassedSafePromotionPath = S(-9, 49)

	e.ThreatWeakPawn = S(-11, -30)
	e.ThreatMinorAttackedByPawn = S(-55, -58)
	e.ThreatMinorAttackedByMinor = S(-22, -36)
	e.ThreatMinorAttackedByMajor = S(-26, -47)
	e.ThreatRookAttackedByLesser = S(-48, -28)
	e.ThreatQueenAttackedByOne = S(-45, -20)
	e.ThreatOverloadedPieces = S(-7, -15)
	e.ThreatByPawnPush = S(15, 18)

	e.ScaleOCBBishopsOnly = 64
	e.ScaleOCBOneKnight = 106
	e.ScaleOCBOneRook = 96
	e.ScaleNormal = 128

	return e
}
