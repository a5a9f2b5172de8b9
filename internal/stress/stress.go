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

// Package stress runs a randomised workload against wbtree maps: one writer
// publishes versions through a Ref while readers check every snapshot they
// load.
package stress

import (
	"context"
	"math/rand"
	"time"

	"github.com/ajwerner/wbtree"
	"github.com/pingcap/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Stats summarises a run.
type Stats struct {
	Inserts     int
	Deletes     int
	Unions      int
	Differences int
	Checks      int
	// Snapshots is the number of versions verified by readers.
	Snapshots int64
	FinalLen  int
	Elapsed   time.Duration
}

type op int

const (
	opInsert op = iota
	opDelete
	opUnion
	opDifference
	numOps
)

// Run executes the workload described by cfg. It returns early with the
// context's error if ctx is cancelled, and with an annotated error as soon as
// any check fails.
func Run(ctx context.Context, cfg *Config, lg *zap.Logger) (Stats, error) {
	var (
		stats     Stats
		snapshots atomic.Int64
		done      atomic.Bool
		start     = time.Now()
		ref       = wbtree.NewRef(wbtree.MakeOrderedMap[int, int]())
	)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Readers; i++ {
		reader := i
		g.Go(func() error {
			for !done.Load() {
				if err := ctx.Err(); err != nil {
					return nil
				}
				if err := checkSnapshot(ref.Load()); err != nil {
					return errors.Annotatef(err, "reader %d", reader)
				}
				snapshots.Inc()
			}
			return nil
		})
	}
	g.Go(func() error {
		defer done.Store(true)
		w := newWriter(cfg, ref)
		err := w.run(ctx, lg)
		stats.Inserts = w.counts[opInsert]
		stats.Deletes = w.counts[opDelete]
		stats.Unions = w.counts[opUnion]
		stats.Differences = w.counts[opDifference]
		stats.Checks = w.checks
		return err
	})
	err := g.Wait()
	stats.Snapshots = snapshots.Load()
	stats.FinalLen = ref.Load().Len()
	stats.Elapsed = time.Since(start)
	return stats, err
}

type writer struct {
	cfg    *Config
	rng    *rand.Rand
	ref    *wbtree.Ref[wbtree.Map[int, int]]
	model  map[int]int
	counts [numOps]int
	checks int
}

func newWriter(cfg *Config, ref *wbtree.Ref[wbtree.Map[int, int]]) *writer {
	return &writer{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		ref:   ref,
		model: make(map[int]int),
	}
}

func (w *writer) run(ctx context.Context, lg *zap.Logger) error {
	for i := 1; i <= w.cfg.Ops; i++ {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}
		o := op(w.rng.Intn(int(numOps)))
		w.ref.Update(func(m wbtree.Map[int, int]) wbtree.Map[int, int] {
			return w.apply(o, m)
		})
		w.counts[o]++
		if i%w.cfg.VerifyEvery == 0 || i == w.cfg.Ops {
			if err := w.check(); err != nil {
				return errors.Annotatef(err, "after %d updates", i)
			}
			w.checks++
			lg.Debug("checked map against model",
				zap.Int("updates", i), zap.Int("len", len(w.model)))
		}
	}
	lg.Info("writer finished",
		zap.Int("inserts", w.counts[opInsert]),
		zap.Int("deletes", w.counts[opDelete]),
		zap.Int("unions", w.counts[opUnion]),
		zap.Int("differences", w.counts[opDifference]),
		zap.Int("len", len(w.model)))
	return nil
}

// apply derives the next version from m and updates the model to match.
// The writer is the only one publishing, so f runs once per update.
func (w *writer) apply(o op, m wbtree.Map[int, int]) wbtree.Map[int, int] {
	switch o {
	case opInsert:
		k, v := w.rng.Intn(w.cfg.KeySpace), w.rng.Int()
		w.model[k] = v
		return m.Insert(k, v)
	case opDelete:
		k := w.rng.Intn(w.cfg.KeySpace)
		delete(w.model, k)
		return m.Delete(k)
	case opUnion:
		batch := w.batch()
		batch.Ascend(func(k, v int) bool {
			if _, ok := w.model[k]; !ok {
				w.model[k] = v
			}
			return true
		})
		return m.Union(batch)
	default:
		batch := w.batch()
		batch.Ascend(func(k, _ int) bool {
			delete(w.model, k)
			return true
		})
		return m.Difference(batch)
	}
}

func (w *writer) batch() wbtree.Map[int, int] {
	b := wbtree.MakeOrderedMap[int, int]()
	for n := w.rng.Intn(w.cfg.BatchSize) + 1; n > 0; n-- {
		b = b.Insert(w.rng.Intn(w.cfg.KeySpace), w.rng.Int())
	}
	return b
}

func (w *writer) check() error {
	m := w.ref.Load()
	if err := m.Verify(); err != nil {
		return err
	}
	if m.Len() != len(w.model) {
		return errors.Errorf("map has %d keys, model has %d", m.Len(), len(w.model))
	}
	for k, want := range w.model {
		got, ok := m.Lookup(k)
		if !ok {
			return errors.Errorf("key %d missing from map", k)
		}
		if got != want {
			return errors.Errorf("key %d maps to %d, want %d", k, got, want)
		}
	}
	return nil
}

func checkSnapshot(m wbtree.Map[int, int]) error {
	if err := m.Verify(); err != nil {
		return err
	}
	var (
		err   error
		prev  int
		first = true
		n     int
	)
	m.Ascend(func(k, _ int) bool {
		if !first && k <= prev {
			err = errors.Errorf("keys out of order: %d after %d", k, prev)
			return false
		}
		prev, first = k, false
		n++
		return true
	})
	if err == nil && n != m.Len() {
		err = errors.Errorf("iterated %d keys, Len reports %d", n, m.Len())
	}
	return err
}
