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

package eval_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessgo/staticeval/internal/board"
	"github.com/chessgo/staticeval/internal/config"
	"github.com/chessgo/staticeval/internal/eval"
)

func TestMain(m *testing.M) {
	config.Setup()
	eval.InitPSQT()
	os.Exit(m.Run())
}

func freshCache() *eval.PawnKingTable {
	return eval.NewPawnKingTable(1)
}

var sampleFens = []string{
	board.StartFen,
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/8/4k3/8/8/4K3/4P3/8 w - - 0 1",
	"6k1/6p1/7p/8/8/7P/6P1/6K1 w - - 0 1",
}

// TestEvaluate_StartingPositionIsTemposOnly asserts that with a symmetric
// starting position the only thing that can make White and Black scores
// differ is the side-to-move tempo bonus.
func TestEvaluate_StartingPositionIsTemposOnly(t *testing.T) {
	b, err := board.FromFEN(board.StartFen)
	require.NoError(t, err)

	cp := eval.Evaluate(b, freshCache())
	assert.InDelta(t, 0, cp, 30, "starting position should be near 0 (tempo aside), got %d", cp)
}

// TestEvaluate_MirroredPositionMatchesFromMoversPerspective checks the
// classic evaluator invariant: evaluating a position and its
// color-flipped mirror, each from its own side-to-move's perspective,
// gives the same score, since Evaluate always reports relative to the
// mover and the tempo bonus always favors whoever is to move.
func TestEvaluate_MirroredPositionMatchesFromMoversPerspective(t *testing.T) {
	white, err := board.FromFEN("4k3/8/8/3p4/3P4/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	black, err := board.FromFEN("4k2r/8/8/3p4/3P4/8/8/4K3 b k - 0 1")
	require.NoError(t, err)

	whiteCp := eval.Evaluate(white, freshCache())
	blackCp := eval.Evaluate(black, freshCache())
	assert.Equal(t, whiteCp, blackCp, "mirrored position evaluated from the mover's perspective should match")
}

// TestEvaluate_IsDeterministic checks that evaluating the same position
// twice against independent caches gives an identical score: the
// evaluator is a pure function of the board and must not depend on
// prior calls.
func TestEvaluate_IsDeterministic(t *testing.T) {
	for _, fen := range sampleFens {
		b, err := board.FromFEN(fen)
		require.NoError(t, err)
		a := eval.Evaluate(b, freshCache())
		c := eval.Evaluate(b, freshCache())
		assert.Equal(t, a, c, "fen %s", fen)
	}
}

// TestEvaluate_CacheHitMatchesCacheMiss asserts that warming the
// pawn-king cache with a position and then re-evaluating it (now a
// cache hit) produces the same score as the first, cold, evaluation:
// the cache must be a pure memoization, never an approximation.
func TestEvaluate_CacheHitMatchesCacheMiss(t *testing.T) {
	for _, fen := range sampleFens {
		b, err := board.FromFEN(fen)
		require.NoError(t, err)
		table := freshCache()

		miss := eval.Evaluate(b, table)
		hit := eval.Evaluate(b, table)
		assert.Equal(t, miss, hit, "fen %s: cache hit should reproduce the cold score", fen)
	}
}

// TestEvaluate_NeverPanics runs every sample FEN through Evaluate to
// exercise every per-piece-type pass without special-casing empty
// bitboards or missing piece types.
func TestEvaluate_NeverPanics(t *testing.T) {
	table := freshCache()
	for _, fen := range sampleFens {
		b, err := board.FromFEN(fen)
		require.NoError(t, err)
		assert.NotPanics(t, func() { eval.Evaluate(b, table) }, "fen %s", fen)
	}
}

func TestReport_ContainsHitRate(t *testing.T) {
	b, err := board.FromFEN(board.StartFen)
	require.NoError(t, err)
	table := freshCache()

	_ = eval.Evaluate(b, table)
	report := eval.Report(b, table)
	assert.Contains(t, report, "pkcache{")
	assert.Contains(t, report, "hitrate=")
}
