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

package types

// Color is White or Black.
type Color int8

const (
	White Color = iota
	Black
	ColorLength
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

// Direction returns +1 for White, -1 for Black; used to flip a
// white-relative score into the side-to-move's perspective.
func (c Color) Direction() int { return 1 - 2*int(c) }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType enumerates the six chess piece kinds.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeLength
)

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

var pieceChars = [PieceTypeLength]byte{'p', 'n', 'b', 'r', 'q', 'k'}

// Char returns the lower-case FEN character for the piece type.
func (pt PieceType) Char() byte { return pieceChars[pt] }

// Piece is a (color, piece type) pair packed for PSQT indexing:
// index = color*6 + pieceType, giving the 12 rows of a PSQT table.
type Piece int8

const (
	PieceLength Piece = 12
)

// MakePiece packs a color and piece type into a Piece index.
func MakePiece(c Color, pt PieceType) Piece { return Piece(int8(c)*6 + int8(pt)) }

// ColorOf extracts the color from a packed Piece.
func (p Piece) ColorOf() Color { return Color(p / 6) }

// TypeOf extracts the piece type from a packed Piece.
func (p Piece) TypeOf() PieceType { return PieceType(p % 6) }
