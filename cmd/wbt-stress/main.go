// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Command wbt-stress soaks the weight-balanced tree with a randomised
// concurrent workload and exits non-zero if any invariant check fails.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ajwerner/wbtree/internal/stress"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg := stress.NewConfig()
	err := cfg.Parse(os.Args[1:])
	switch errors.Cause(err) {
	case nil:
	case pflag.ErrHelp:
		os.Exit(0)
	default:
		log.Fatal("parse cmd flags error", zap.Error(err))
	}

	lg, props, err := log.InitLogger(&cfg.Log, zap.AddStacktrace(zapcore.FatalLevel))
	if err != nil {
		log.Fatal("initialize logger error", zap.Error(err))
	}
	log.ReplaceGlobals(lg, props)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sc := make(chan os.Signal, 1)
	signal.Notify(sc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		sig := <-sc
		log.Info("got signal to exit", zap.String("signal", sig.String()))
		cancel()
	}()

	log.Info("starting stress run",
		zap.Int("ops", cfg.Ops),
		zap.Int("readers", cfg.Readers),
		zap.Int("key-space", cfg.KeySpace),
		zap.Int64("seed", cfg.Seed))
	stats, err := stress.Run(ctx, cfg, lg)
	if err != nil {
		log.Fatal("stress run failed", zap.Error(err))
	}
	log.Info("stress run finished",
		zap.Int("inserts", stats.Inserts),
		zap.Int("deletes", stats.Deletes),
		zap.Int("unions", stats.Unions),
		zap.Int("differences", stats.Differences),
		zap.Int("checks", stats.Checks),
		zap.Int64("snapshots", stats.Snapshots),
		zap.Int("final-len", stats.FinalLen),
		zap.Duration("elapsed", stats.Elapsed))
}
