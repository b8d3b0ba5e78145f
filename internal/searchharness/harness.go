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

// Package searchharness fans a batch of positions out across a bounded
// pool of goroutines, gating concurrent work with a weighted semaphore,
// and evaluates each one against a single shared pawn-king cache. It
// exists to exercise the evaluator's "N worker threads, one shared racy
// cache" concurrency model under real goroutine concurrency rather than
// only sequentially.
package searchharness

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/chessgo/staticeval/internal/board"
	"github.com/chessgo/staticeval/internal/eval"
)

// Result pairs a FEN with its evaluated score, preserving input order.
type Result struct {
	Fen   string
	Score int
	Err   error
}

// EvaluateAll evaluates every FEN in fens concurrently, bounded to at most
// maxWorkers goroutines in flight at once, all reading and writing one
// shared pkTable. Results are returned in the same order as fens.
func EvaluateAll(ctx context.Context, fens []string, pkTable *eval.PawnKingTable, maxWorkers int) []Result {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	sem := semaphore.NewWeighted(int64(maxWorkers))
	results := make([]Result, len(fens))

	done := make(chan int, len(fens))
	for i, fen := range fens {
		i, fen := i, fen
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = Result{Fen: fen, Err: err}
			done <- i
			continue
		}
		go func() {
			defer sem.Release(1)
			defer func() { done <- i }()
			b, err := board.FromFEN(fen)
			if err != nil {
				results[i] = Result{Fen: fen, Err: err}
				return
			}
			results[i] = Result{Fen: fen, Score: eval.Evaluate(b, pkTable)}
		}()
	}
	for range fens {
		<-done
	}
	return results
}
