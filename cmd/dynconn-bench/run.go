package main

import (
	"fmt"
	"hash/fnv"
	"io"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	dynconn "github.com/wengh/dynamic-connectivity"
	"github.com/wengh/dynamic-connectivity/internal/oracle"
)

// opKind enumerates the mixed workload's operation mix.
type opKind int

const (
	opAddEdge opKind = iota
	opRemoveEdge
	opIsConnected
)

func newRunCommand() *cobra.Command {
	var (
		seed     uint64
		vertices int
		initial  int
		ops      int
		optimize bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a randomized mixed add/remove/query workload against both the façade and the oracle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkload(workloadConfig{
				seed:     seed,
				vertices: vertices,
				initial:  initial,
				ops:      ops,
				optimize: optimize,
			})
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 1, "PRNG seed, for a reproducible run")
	cmd.Flags().IntVar(&vertices, "vertices", 10000, "vertex count")
	cmd.Flags().IntVar(&initial, "initial-edges", 30000, "initial edge count, added before the mixed workload begins")
	cmd.Flags().IntVar(&ops, "ops", 100000, "number of mixed add/remove/query operations to perform")
	cmd.Flags().BoolVar(&optimize, "optimize", true, "periodically call Optimize() during the run")

	return cmd
}

type workloadConfig struct {
	seed     uint64
	vertices int
	initial  int
	ops      int
	optimize bool
}

// runWorkload builds a random graph of the given size, drives it
// through a mixed workload of adds/removes/queries, cross-validates
// every connectivity query against a brute-force oracle, and prints a
// deterministic hash folding every operation's boolean result (add,
// remove and query) in issue order -- a single number a CI job can diff
// across commits.
func runWorkload(cfg workloadConfig) error {
	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15))

	g := dynconn.NewGraph(dynconn.WithRNG(rng), dynconn.WithRegistry(1024))
	o := oracle.New[*dynconn.Vertex, struct{}](nil)

	verts := make([]*dynconn.Vertex, cfg.vertices)
	for i := range verts {
		verts[i] = g.NewVertex()
	}

	logger.WithFields(logrus.Fields{
		"vertices":      cfg.vertices,
		"initial_edges": cfg.initial,
		"ops":           cfg.ops,
		"seed":          cfg.seed,
	}).Info("seeding initial graph")

	started := time.Now()
	for i := 0; i < cfg.initial; i++ {
		u, v := randomDistinctPair(rng, verts)
		if _, err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("seeding edge %d: %w", i, err)
		}
		o.AddEdge(u, v)
	}
	logger.WithField("elapsed", time.Since(started)).Info("initial graph seeded")

	digest := fnv.New64a()
	var mismatches int

	started = time.Now()
	for i := 0; i < cfg.ops; i++ {
		u, v := randomDistinctPair(rng, verts)
		switch opKind(rng.IntN(3)) {
		case opAddEdge:
			added, err := g.AddEdge(u, v)
			if err != nil {
				return fmt.Errorf("op %d AddEdge: %w", i, err)
			}
			o.AddEdge(u, v)
			writeBool(digest, added)

		case opRemoveEdge:
			removed, err := g.RemoveEdge(u, v)
			if err != nil {
				return fmt.Errorf("op %d RemoveEdge: %w", i, err)
			}
			o.RemoveEdge(u, v)
			writeBool(digest, removed)

		case opIsConnected:
			got := g.IsConnected(u, v)
			want := o.IsConnected(u, v)
			writeBool(digest, got)
			if got != want {
				mismatches++
				logger.WithFields(logrus.Fields{"op": i}).Error("connectivity mismatch against oracle")
			}
		}

		if cfg.optimize && cfg.ops > 0 && i%(cfg.ops/10+1) == 0 {
			g.Optimize()
		}
	}
	elapsed := time.Since(started)

	n, err := g.GetNumberOfComponents()
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"elapsed":    elapsed,
		"ops_per_s":  float64(cfg.ops) / elapsed.Seconds(),
		"components": n,
		"mismatches": mismatches,
		"hash":       fmt.Sprintf("%016x", digest.Sum64()),
	}).Info("workload complete")

	if mismatches > 0 {
		return fmt.Errorf("%d connectivity mismatches against the oracle", mismatches)
	}
	return nil
}

func randomDistinctPair(rng *rand.Rand, verts []*dynconn.Vertex) (*dynconn.Vertex, *dynconn.Vertex) {
	i := rng.IntN(len(verts))
	j := rng.IntN(len(verts))
	for j == i {
		j = rng.IntN(len(verts))
	}
	return verts[i], verts[j]
}

func writeBool(w io.Writer, b bool) {
	if b {
		w.Write([]byte{1})
	} else {
		w.Write([]byte{0})
	}
}
