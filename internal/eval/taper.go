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
	"github.com/chessgo/staticeval/internal/board"
	. "github.com/chessgo/staticeval/internal/types"
)

// gamePhase returns a value in [0, 24]: 0 with every minor/major piece
// still on the board, 24 with only kings and pawns left, following the
// Fruit-style tapering method.
func gamePhase(b *board.Board) int {
	queens := b.Pieces(Queen).PopCount()
	rooks := b.Pieces(Rook).PopCount()
	minors := b.Pieces(Knight).PopCount() + b.Pieces(Bishop).PopCount()
	phase := 24 - 4*queens - 2*rooks - minors
	return clampInt(phase, 0, 24)
}

// scaleFactor scales down the endgame term for material draws the
// middlegame score can't see, chiefly opposite-colored-bishop endings.
func scaleFactor(b *board.Board) int {
	cfg := evalCfg()

	whiteBishops := b.PiecesOf(White, Bishop)
	blackBishops := b.PiecesOf(Black, Bishop)
	if whiteBishops.PopCount() != 1 || blackBishops.PopCount() != 1 {
		return cfg.ScaleNormal
	}
	if (whiteBishops&whiteSquares != 0) == (blackBishops&whiteSquares != 0) {
		return cfg.ScaleNormal
	}

	whiteKnights := b.PiecesOf(White, Knight).PopCount()
	blackKnights := b.PiecesOf(Black, Knight).PopCount()
	whiteRooks := b.PiecesOf(White, Rook).PopCount()
	blackRooks := b.PiecesOf(Black, Rook).PopCount()
	whiteQueens := b.PiecesOf(White, Queen).PopCount()
	blackQueens := b.PiecesOf(Black, Queen).PopCount()

	if whiteQueens+blackQueens > 0 {
		return cfg.ScaleNormal
	}

	switch {
	case whiteKnights == 0 && blackKnights == 0 && whiteRooks == 0 && blackRooks == 0:
		return cfg.ScaleOCBBishopsOnly
	case whiteKnights == 1 && blackKnights == 1 && whiteRooks == 0 && blackRooks == 0:
		return cfg.ScaleOCBOneKnight
	case whiteKnights == 0 && blackKnights == 0 && whiteRooks == 1 && blackRooks == 1:
		return cfg.ScaleOCBOneRook
	default:
		return cfg.ScaleNormal
	}
}

// taper combines a middlegame/endgame Score into a single centipawn
// value, White-relative, given the board's phase and scale factor.
func taper(b *board.Board, s Score) int {
	cfg := evalCfg()
	phase := gamePhase(b)
	phase256 := (phase*256 + 12) / 24
	factor := scaleFactor(b)

	mg := int(s.MG) * (256 - phase256)
	eg := int(s.EG) * phase256 * factor / cfg.ScaleNormal
	return (mg + eg) / 256
}
