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
	"fmt"
	"strconv"
	"strings"

	"github.com/chessgo/staticeval/internal/psqt"
	. "github.com/chessgo/staticeval/internal/types"
)

var pieceFromChar = map[byte]PieceType{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// FromFEN parses a FEN string into a Board, computing the running
// material+PSQT sum and both Zobrist hashes at construction time. This
// constructor is the only way to obtain a Board in this repository:
// there is no DoMove/UndoMove or incremental update.
func FromFEN(fen string) (*Board, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: fen %q: need at least 4 fields, got %d", fen, len(fields))
	}

	b := &Board{enPassant: SqNone, fullMoveNumber: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: fen %q: expected 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, ch := range []byte(rankStr) {
			switch {
			case ch >= '1' && ch <= '8':
				f += File(ch - '0')
			default:
				lower := ch | 0x20
				pt, ok := pieceFromChar[lower]
				if !ok {
					return nil, fmt.Errorf("board: fen %q: invalid piece char %q", fen, ch)
				}
				if f > FileH {
					return nil, fmt.Errorf("board: fen %q: rank %d overflows files", fen, 8-i)
				}
				c := White
				if ch == lower {
					c = Black
				}
				sq := SquareOf(f, r)
				b.colours[c] = b.colours[c].PushSquare(sq)
				b.pieces[pt] = b.pieces[pt].PushSquare(sq)
				f++
			}
		}
		if f != FileLength {
			return nil, fmt.Errorf("board: fen %q: rank %d has %d files, want 8", fen, 8-i, f)
		}
	}

	switch fields[1] {
	case "w":
		b.turn = White
	case "b":
		b.turn = Black
	default:
		return nil, fmt.Errorf("board: fen %q: invalid side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				b.castling |= CastleWhiteKing
			case 'Q':
				b.castling |= CastleWhiteQueen
			case 'k':
				b.castling |= CastleBlackKing
			case 'q':
				b.castling |= CastleBlackQueen
			default:
				return nil, fmt.Errorf("board: fen %q: invalid castling char %q", fen, ch)
			}
		}
	}

	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return nil, fmt.Errorf("board: fen %q: invalid en-passant square %q", fen, fields[3])
		}
		f := File(fields[3][0] - 'a')
		r := Rank(fields[3][1] - '1')
		if f < FileA || f > FileH || r < Rank1 || r > Rank8 {
			return nil, fmt.Errorf("board: fen %q: invalid en-passant square %q", fen, fields[3])
		}
		b.enPassant = SquareOf(f, r)
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("board: fen %q: invalid halfmove clock: %w", fen, err)
		}
		b.halfMoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("board: fen %q: invalid fullmove number: %w", fen, err)
		}
		b.fullMoveNumber = n
	}

	b.computeDerived()
	return b, nil
}

func (b *Board) computeDerived() {
	var psq Score
	var full, pk Key
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt < PieceTypeLength; pt++ {
			bb := b.colours[c] & b.pieces[pt]
			piece := MakePiece(c, pt)
			for bb != 0 {
				var sq Square
				bb, sq = bb.PopLsb()
				psq = psq.Add(psqt.Table[piece][sq])
				full ^= zobristBase.pieces[piece][sq]
				if isPawnOrKing(piece) {
					pk ^= zobristBase.pieces[piece][sq]
				}
			}
		}
	}
	if b.enPassant.IsValid() {
		full ^= zobristBase.enPassant[FileOf(b.enPassant)]
	}
	full ^= zobristBase.castling[b.castling]
	if b.turn == Black {
		full ^= zobristBase.nextPlayer
	}
	b.psqMat = psq
	b.fullHash = full
	b.pkHash = pk
}

// StringFen renders the board back to FEN, the inverse of FromFEN. Since
// this repository never mutates a Board after construction, the result
// is only used by round-trip tests.
func (b *Board) StringFen() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		r := Rank(7 - i)
		empty := 0
		for f := FileA; f <= FileH; f++ {
			sq := SquareOf(f, r)
			p, ok := b.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			ch := p.TypeOf().Char()
			if p.ColorOf() == White {
				ch = ch &^ 0x20
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if b.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		if b.castling&CastleWhiteKing != 0 {
			sb.WriteByte('K')
		}
		if b.castling&CastleWhiteQueen != 0 {
			sb.WriteByte('Q')
		}
		if b.castling&CastleBlackKing != 0 {
			sb.WriteByte('k')
		}
		if b.castling&CastleBlackQueen != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	if b.enPassant.IsValid() {
		sb.WriteString(b.enPassant.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", b.halfMoveClock, b.fullMoveNumber)
	return sb.String()
}
