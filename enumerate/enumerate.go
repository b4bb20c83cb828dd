// SPDX-License-Identifier: MIT
// Package: enumerate
//
// enumerate.go — exhaustive search with rotation deduplication.

package enumerate

import (
	"context"
	"sync"

	"github.com/katalvlaran/coronas"
	"github.com/katalvlaran/coronas/corona"
)

// Unique returns every valid corona of center with default options, one per
// rotation class, in first-encountered order.
func Unique(center int) ([]corona.Corona, error) {
	res, err := Enumerate(context.Background(), center, DefaultOptions())
	if err != nil {
		return nil, err
	}

	return res.Coronas, nil
}

// verdict is the per-candidate outcome, computed independently of any other
// candidate so it can be produced by any worker.
type verdict struct {
	c      corona.Corona
	result corona.Result
	key    corona.Key
}

func judge(center int, edges []corona.Edge, opts corona.Options) verdict {
	c := corona.New(center, edges...)
	v := verdict{c: c, result: corona.Validate(c, opts)}
	if v.result.OK {
		v.key = c.CanonicalKey()
	}

	return v
}

// Enumerate runs the exhaustive search for center.
//
// Candidates are validated sequentially, or by opts.Workers goroutines when
// Workers > 1; either way deduplication happens afterwards in candidate order,
// so the result is identical. The seen-key set lives only for this call.
//
// ctx is checked between candidates; on cancellation Enumerate returns ctx.Err().
func Enumerate(ctx context.Context, center int, opts Options) (*Result, error) {
	if opts.Workers < 0 {
		return nil, ErrBadWorkers
	}
	walks, err := Walks(center, opts.AllowedSizes)
	if err != nil {
		return nil, err
	}

	var verdicts []verdict
	if opts.Workers > 1 {
		verdicts, err = judgeParallel(ctx, center, walks, opts)
	} else {
		verdicts, err = judgeSequential(ctx, center, walks, opts)
	}
	if err != nil {
		return nil, err
	}

	res := collect(center, verdicts)
	log := coronas.Logger()
	if len(res.Rejected) > 0 {
		log.Debug("enumerate: rejections", "center", center, "by_reason", res.Rejected)
	}
	log.Info("enumerate: done",
		"center", center,
		"walks", len(walks),
		"candidates", res.Candidates,
		"valid", res.Valid,
		"unique", len(res.Coronas),
	)

	return res, nil
}

func judgeSequential(ctx context.Context, center int, walks []corona.Edge, opts Options) ([]verdict, error) {
	vopts := opts.validateOptions()
	var out []verdict
	for _, edges := range Candidates(walks) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, judge(center, edges, vopts))
	}

	return out, nil
}

func judgeParallel(ctx context.Context, center int, walks []corona.Edge, opts Options) ([]verdict, error) {
	vopts := opts.validateOptions()

	var combos [][]corona.Edge
	for _, edges := range Candidates(walks) {
		combos = append(combos, edges)
	}
	out := make([]verdict, len(combos))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = judge(center, combos[i], vopts)
			}
		}()
	}

	var err error
feed:
	for i := range combos {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, err
	}

	return out, nil
}

// collect folds verdicts, in candidate order, into a Result.
func collect(center int, verdicts []verdict) *Result {
	res := &Result{
		Center:     center,
		Candidates: len(verdicts),
		Rejected:   make(map[corona.Reason]int),
	}
	seen := make(map[corona.Key]struct{})
	for _, v := range verdicts {
		if !v.result.OK {
			res.Rejected[v.result.Reason]++
			continue
		}
		res.Valid++
		if _, dup := seen[v.key]; dup {
			continue
		}
		seen[v.key] = struct{}{}
		res.Coronas = append(res.Coronas, v.c)
		res.Keys = append(res.Keys, v.key)
	}

	return res
}
