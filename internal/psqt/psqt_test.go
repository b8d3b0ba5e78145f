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

package psqt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/chessgo/staticeval/internal/types"
)

// TestTable_BlackIsNegatedMirrorOfWhite checks the PSQT symmetry
// invariant: Black's value on a square is the negation of White's value
// on that square's vertical mirror, for every piece type and square.
func TestTable_BlackIsNegatedMirrorOfWhite(t *testing.T) {
	for pt := Pawn; pt < PieceTypeLength; pt++ {
		for s := SqA1; s <= SqH8; s++ {
			mirror := SquareOf(FileOf(s), Rank(7-int(RankOf(s))))
			white := Table[MakePiece(White, pt)][s]
			black := Table[MakePiece(Black, pt)][mirror]
			assert.Equal(t, white, black.Neg(), "piece %s square %s", pt, s)
		}
	}
}

// TestTable_FilesAreMirrorSymmetric checks that the half-table fold
// leaves the a/h, b/g, c/f and d/e files identical within one color,
// the defining property of a 32-entry file-mirrored table.
func TestTable_FilesAreMirrorSymmetric(t *testing.T) {
	for pt := Pawn; pt < PieceTypeLength; pt++ {
		for r := Rank1; r <= Rank8; r++ {
			for f := FileA; f <= FileD; f++ {
				mirroredFile := File(7 - int(f))
				left := Table[MakePiece(White, pt)][SquareOf(f, r)]
				right := Table[MakePiece(White, pt)][SquareOf(mirroredFile, r)]
				assert.Equal(t, left, right, "piece %s rank %d file %d vs %d", pt, r, f, mirroredFile)
			}
		}
	}
}

func TestInit_IsIdempotent(t *testing.T) {
	before := Table
	Init()
	assert.Equal(t, before, Table)
}
