package convert

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"quanta/circuit"
	"quanta/qiskit"
)

// Result pairs the outputs of one conversion in a batch.
type Result struct {
	Circuit  *qiskit.QuantumCircuit
	Metadata *Metadata
}

// ToQiskitBatch translates independent circuits concurrently. Results
// keep the input order. The first failing circuit cancels the rest and
// its error is returned, wrapped with the circuit's index.
func ToQiskitBatch(ctx context.Context, circuits []*circuit.Circuit, opts ...Option) ([]Result, error) {
	results := make([]Result, len(circuits))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, c := range circuits {
		i, c := i, c
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			qc, meta, err := ToQiskit(c, opts...)
			if err != nil {
				return fmt.Errorf("circuit %d: %w", i, err)
			}
			results[i] = Result{Circuit: qc, Metadata: meta}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
