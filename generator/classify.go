package generator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/realtransducer/periodic"
	"github.com/katalvlaran/realtransducer/transducer"
)

// Behaviors computes InitialBehavior(Bits) of every machine concurrently,
// at most Workers at a time. The result is indexed like machines.
func Behaviors(ctx context.Context, machines []*transducer.Automaton, opts ...Option) ([][]periodic.Value, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	out := make([][]periodic.Value, len(machines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, a := range machines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := a.InitialBehavior(o.Bits)
			if err != nil {
				return fmt.Errorf("generator: machine %d: %w", i, err)
			}
			out[i] = b
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Classify groups machines whose behaviors are elementwise Equal. Classes
// appear in order of their first member; each machine is compared with the
// class representatives in order and joins the first match.
func Classify(ctx context.Context, machines []*transducer.Automaton, opts ...Option) ([]Class, error) {
	behaviors, err := Behaviors(ctx, machines, opts...)
	if err != nil {
		return nil, err
	}

	var classes []Class
	for i, b := range behaviors {
		if k := findClass(classes, b); k >= 0 {
			classes[k].Members = append(classes[k].Members, i)
			continue
		}
		classes = append(classes, Class{Behavior: b, Members: []int{i}})
	}

	return classes, nil
}

// Minimal enumerates machines of sizes 1..MaxStates and keeps the first
// machine of every distinct behavior, so each Sample is a smallest machine
// for its behavior. It stops after Limit samples when Limit > 0.
func Minimal(ctx context.Context, opts ...Option) ([]Sample, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for size := 1; size <= o.MaxStates; size++ {
		for a := range Transducers(size, o.Metrics) {
			if err = ctx.Err(); err != nil {
				return samples, err
			}
			b, err := a.InitialBehavior(o.Bits)
			if err != nil {
				return samples, fmt.Errorf("generator: behavior: %w", err)
			}
			if findSample(samples, b) {
				continue
			}
			samples = append(samples, Sample{Automaton: a, Behavior: b})
			o.Logger.Debug("generator: new behavior", "size", size, "samples", len(samples))
			if o.Limit > 0 && len(samples) >= o.Limit {
				return samples, nil
			}
		}
	}

	return samples, nil
}

func findClass(classes []Class, b []periodic.Value) int {
	for k := range classes {
		if transducer.SameBehavior(classes[k].Behavior, b) {
			return k
		}
	}

	return -1
}

func findSample(samples []Sample, b []periodic.Value) bool {
	for _, s := range samples {
		if transducer.SameBehavior(s.Behavior, b) {
			return true
		}
	}

	return false
}
