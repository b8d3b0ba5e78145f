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

// Package config holds globally available configuration, populated with
// sensible defaults and optionally overridden by a TOML file. Cache and
// Eval sub-configurations are kept separate under one Settings value.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var (
	// ConfFile is the path to the config file, relative to the working
	// directory unless absolute. Can be overridden before calling Setup.
	ConfFile = "./config.toml"

	// LogLevel is the general logging verbosity, 0 (critical) .. 5 (debug).
	LogLevel = 4

	// Settings is the process-wide configuration, populated by Setup.
	Settings conf

	initialized = false
)

type conf struct {
	Cache cacheConfiguration
	Eval  EvalConfiguration
}

type cacheConfiguration struct {
	// PawnKingCacheSizeMB sizes the pawn-king cache; it is rounded down
	// to the nearest power of two number of entries.
	PawnKingCacheSizeMB int
}

func defaultConf() conf {
	return conf{
		Cache: cacheConfiguration{PawnKingCacheSizeMB: 4},
		Eval:  defaultEvalConfiguration(),
	}
}

// Setup loads ConfFile if present, leaving compiled-in defaults for any
// field the file does not mention. Safe to call more than once; only the
// first call has an effect.
func Setup() {
	if initialized {
		return
	}
	Settings = defaultConf()
	if _, err := os.Stat(ConfFile); err == nil {
		if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
			fmt.Fprintf(os.Stderr, "config: %s present but could not be parsed, using defaults: %v\n", ConfFile, err)
			Settings = defaultConf()
		}
	}
	initialized = true
}

// Eval exposes the active evaluation weights to the eval package.
func Eval() *EvalConfiguration {
	if !initialized {
		Setup()
	}
	return &Settings.Eval
}

// PawnKingCacheSizeMB returns the configured pawn-king cache size.
func PawnKingCacheSizeMB() int {
	if !initialized {
		Setup()
	}
	return Settings.Cache.PawnKingCacheSizeMB
}
