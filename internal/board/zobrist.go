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

package board

import (
	. "github.com/chessgo/staticeval/internal/types"
)

// zobrist holds the random keys used to hash a position. The restricted
// hash the pawn-king cache is keyed on reuses the pieces keys, XORing in
// only the entries for pawns and kings (see isPawnOrKing).
type zobrist struct {
	pieces     [PieceLength][SqLength]Key
	castling   [16]Key
	enPassant  [FileLength]Key
	nextPlayer Key
}

var zobristBase = buildZobrist()

func buildZobrist() zobrist {
	var z zobrist
	r := NewRandom(1070372)
	for p := Piece(0); p < PieceLength; p++ {
		for s := SqA1; s <= SqH8; s++ {
			z.pieces[p][s] = Key(r.Rand64())
		}
	}
	for i := range z.castling {
		z.castling[i] = Key(r.Rand64())
	}
	for f := FileA; f <= FileH; f++ {
		z.enPassant[f] = Key(r.Rand64())
	}
	z.nextPlayer = Key(r.Rand64())
	return z
}

// isPawnOrKing reports whether a packed piece index is a pawn or king of
// either color, the only pieces the pawn-king hash tracks.
func isPawnOrKing(p Piece) bool {
	pt := p.TypeOf()
	return pt == Pawn || pt == King
}
