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

// Command staticeval loads a FEN position and prints its static
// evaluation, exposing the evaluator's internals for ad-hoc inspection
// from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chessgo/staticeval/internal/board"
	"github.com/chessgo/staticeval/internal/config"
	"github.com/chessgo/staticeval/internal/eval"
	"github.com/chessgo/staticeval/internal/logging"
	"github.com/chessgo/staticeval/internal/searchharness"
)

func main() {
	fen := flag.String("fen", board.StartFen, "FEN position to evaluate")
	confFile := flag.String("config", config.ConfFile, "path to a TOML config file overriding evaluation weights")
	cacheMB := flag.Int("pkcache", 0, "pawn-king cache size in MB (0 uses the config default)")
	workers := flag.Int("workers", 1, "number of positions to evaluate concurrently when -fens is given")
	fensFile := flag.String("fens", "", "optional file of newline-separated FENs to evaluate concurrently instead of -fen")
	flag.Parse()

	config.ConfFile = *confFile
	config.Setup()
	eval.InitPSQT()
	log := logging.GetLog()

	sizeMB := *cacheMB
	if sizeMB <= 0 {
		sizeMB = config.PawnKingCacheSizeMB()
	}
	pkTable := eval.NewPawnKingTable(sizeMB)

	if *fensFile != "" {
		data, err := os.ReadFile(*fensFile)
		if err != nil {
			log.Errorf("reading fens file: %v", err)
			os.Exit(1)
		}
		var fens []string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				fens = append(fens, line)
			}
		}
		results := searchharness.EvaluateAll(context.Background(), fens, pkTable, *workers)
		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("%s: error: %v\n", r.Fen, r.Err)
				continue
			}
			fmt.Printf("%s: %d cp\n", r.Fen, r.Score)
		}
		return
	}

	b, err := board.FromFEN(*fen)
	if err != nil {
		log.Errorf("parsing fen: %v", err)
		os.Exit(1)
	}

	fmt.Println(b.String())
	fmt.Println(eval.Report(b, pkTable))
}
