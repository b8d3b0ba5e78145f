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

package searchharness_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessgo/staticeval/internal/board"
	"github.com/chessgo/staticeval/internal/config"
	"github.com/chessgo/staticeval/internal/eval"
	"github.com/chessgo/staticeval/internal/searchharness"
)

func TestMain(m *testing.M) {
	config.Setup()
	eval.InitPSQT()
	os.Exit(m.Run())
}

var fens = []string{
	board.StartFen,
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/8/4k3/8/8/4K3/4P3/8 w - - 0 1",
	"6k1/6p1/7p/8/8/7P/6P1/6K1 w - - 0 1",
	"rnbqkb1r/pp1p1pPp/8/2p1pP2/1P1P4/3P3P/P1P1P3/RNBQKBNR w KQkq e6 0 1",
	"8/8/8/8/8/8/8/k6K w - - 0 1",
}

// TestEvaluateAll_MatchesSequential is the concurrency property every
// shared-cache evaluator must satisfy: fanning the same positions out
// across many goroutines against one pawn-king cache must give exactly
// the scores a plain sequential pass would, regardless of interleaving.
func TestEvaluateAll_MatchesSequential(t *testing.T) {
	sequential := eval.NewPawnKingTable(1)
	want := make([]int, len(fens))
	for i, fen := range fens {
		b, err := board.FromFEN(fen)
		require.NoError(t, err)
		want[i] = eval.Evaluate(b, sequential)
	}

	concurrentTable := eval.NewPawnKingTable(1)
	// Run several rounds so slots get reused and overwritten under
	// concurrent access, exercising the cache's torn-write tolerance.
	for round := 0; round < 8; round++ {
		results := searchharness.EvaluateAll(context.Background(), fens, concurrentTable, 8)
		require.Len(t, results, len(fens))
		for i, r := range results {
			require.NoError(t, r.Err, "fen %s", r.Fen)
			assert.Equal(t, want[i], r.Score, "round %d fen %s", round, r.Fen)
		}
	}
}

func TestEvaluateAll_PreservesOrderAndPropagatesParseErrors(t *testing.T) {
	table := eval.NewPawnKingTable(1)
	input := []string{fens[0], "not a fen", fens[1]}

	results := searchharness.EvaluateAll(context.Background(), input, table, 4)
	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
}

func TestEvaluateAll_SingleWorkerIsSequential(t *testing.T) {
	table := eval.NewPawnKingTable(1)
	results := searchharness.EvaluateAll(context.Background(), fens, table, 1)
	require.Len(t, results, len(fens))
	for _, r := range results {
		assert.NoError(t, r.Err)
	}
}
