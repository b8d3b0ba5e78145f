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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/chessgo/staticeval/internal/types"
)

var roundTripFens = []string{
	StartFen,
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"rnbqkb1r/pp1p1pPp/8/2p1pP2/1P1P4/3P3P/P1P1P3/RNBQKBNR w KQkq e6 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/8/8/8/8/8/8/k6K w - - 0 1",
}

func TestFromFEN_RoundTrip(t *testing.T) {
	for _, fen := range roundTripFens {
		b, err := FromFEN(fen)
		require.NoError(t, err, "fen: %s", fen)
		assert.Equal(t, fen, b.StringFen(), "round trip mismatch for %s", fen)
	}
}

func TestFromFEN_StartingPosition(t *testing.T) {
	b, err := FromFEN(StartFen)
	require.NoError(t, err)

	assert.Equal(t, White, b.Turn())
	assert.Equal(t, SqNone, b.EnPassant())
	assert.Equal(t, CastleWhiteKing|CastleWhiteQueen|CastleBlackKing|CastleBlackQueen, b.CastlingRights())
	assert.Equal(t, SqE1, b.KingSquare(White))
	assert.Equal(t, SqE8, b.KingSquare(Black))
	assert.EqualValues(t, 16, b.PiecesOf(White, Pawn).PopCount()+b.PiecesOf(Black, Pawn).PopCount())
	assert.EqualValues(t, 32, b.Occupied().PopCount())
}

func TestFromFEN_DerivedHashesDifferBetweenDistinctPositions(t *testing.T) {
	a, err := FromFEN(StartFen)
	require.NoError(t, err)
	b, err := FromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	require.NoError(t, err)

	assert.NotEqual(t, a.FullHash(), b.FullHash())
	assert.NotEqual(t, a.PKHash(), b.PKHash())
}

func TestFromFEN_PawnKingHashIgnoresNonPawnKingMaterial(t *testing.T) {
	a, err := FromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	b, err := FromFEN("4k3/8/8/8/8/8/8/3RK3 w Q - 0 1")
	require.NoError(t, err)

	assert.Equal(t, a.PKHash(), b.PKHash())
	assert.NotEqual(t, a.FullHash(), b.FullHash())
}

func TestFromFEN_InvalidInputs(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppX/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
	}
	for _, fen := range cases {
		_, err := FromFEN(fen)
		assert.Error(t, err, "expected error for fen %q", fen)
	}
}

func TestBoard_PieceAt(t *testing.T) {
	b, err := FromFEN(StartFen)
	require.NoError(t, err)

	p, ok := b.PieceAt(SqE1)
	require.True(t, ok)
	assert.Equal(t, White, p.ColorOf())
	assert.Equal(t, King, p.TypeOf())

	_, ok = b.PieceAt(SqE4)
	assert.False(t, ok)
}
