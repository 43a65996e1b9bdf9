package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/homcount/catalog"
	"github.com/katalvlaran/homcount/config"
	"github.com/katalvlaran/homcount/graph"
	"github.com/katalvlaran/homcount/hom"
	"github.com/katalvlaran/homcount/ntd"
)

// jobFlags overrides job file values when set on the command line.
type jobFlags struct {
	path    string
	workers int
	timeout time.Duration
	catalog string
	method  string
}

func (f *jobFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.path, "config", "c", "", "path to the job file (.yaml or .toml)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for brute force")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "abort after this long (0 = no limit)")
	fs.StringVar(&f.catalog, "catalog", "", "badger directory caching results")
	fs.StringVarP(&f.method, "method", "m", "", fmt.Sprintf("counting method %v", hom.Methods()))
	_ = cmd.MarkFlagRequired("config")
}

// load reads the job file and applies the flags that were set.
func (f *jobFlags) load(flags *pflag.FlagSet) (*config.Job, error) {
	j, err := config.Load(f.path)
	if err != nil {
		return nil, err
	}
	if flags.Changed("workers") {
		j.Workers = f.workers
	}
	if flags.Changed("timeout") {
		j.Timeout = f.timeout
	}
	if flags.Changed("catalog") {
		j.Catalog = f.catalog
	}
	if flags.Changed("method") {
		j.Method = f.method
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return j, nil
}

func (a *app) options(ctx context.Context, j *config.Job) []hom.Option {
	opts := []hom.Option{hom.WithContext(ctx), hom.WithLogger(a.log)}
	if j.Workers > 0 {
		opts = append(opts, hom.WithWorkers(j.Workers))
	}
	return opts
}

func (a *app) withTimeout(j *config.Job) (context.Context, context.CancelFunc) {
	if j.Timeout > 0 {
		return context.WithTimeout(a.ctx, j.Timeout)
	}
	return context.WithCancel(a.ctx)
}

func newCountCmd(a *app) *cobra.Command {
	var f jobFlags
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count homomorphisms from the job's pattern to its target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			j, err := f.load(cmd.Flags())
			if err != nil {
				return err
			}
			n, err := a.count(j)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, n)
			return err
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) count(j *config.Job) (uint64, error) {
	method := j.MethodValue()
	if method == hom.MethodEquivalence {
		return 0, fmt.Errorf("method %q counts whole families; use the family command", method)
	}

	g, err := j.Pattern.Build()
	if err != nil {
		return 0, fmt.Errorf("pattern: %w", err)
	}
	h, err := j.Target.Build()
	if err != nil {
		return 0, fmt.Errorf("target: %w", err)
	}
	log := a.log.WithFields(logrus.Fields{
		"run": uuid.NewString(), "method": method, "n": g.VertexCount(), "m": h.VertexCount(),
	})

	var cat *catalog.Catalog
	if j.Catalog != "" {
		if cat, err = catalog.Open(catalog.Options{Path: j.Catalog, Logger: a.log}); err != nil {
			return 0, err
		}
		defer cat.Close()

		n, ok, err := cat.Lookup(g, h)
		if err != nil {
			return 0, err
		}
		if ok {
			log.WithField("count", n).Info("catalog hit")
			if err := closeCatalog(cat); err != nil {
				return 0, err
			}
			return n, nil
		}
	}

	var td *ntd.Decomposition
	if method == hom.MethodTreeDP {
		if td, err = decompositionFor(j, g); err != nil {
			return 0, err
		}
	}

	ctx, cancel := a.withTimeout(j)
	defer cancel()

	start := time.Now()
	n, err := hom.CountWith(method, g, td, h, append(a.options(ctx, j), hom.WithLogger(log))...)
	if err != nil {
		return 0, err
	}
	log.WithFields(logrus.Fields{"count": n, "elapsed": time.Since(start)}).Info("counted")

	if cat != nil {
		if err := cat.Store(g, h, n); err != nil {
			return 0, err
		}
		if err := closeCatalog(cat); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// closeCatalog flushes and closes cat. The deferred Close on error paths is a
// no-op once this has run.
func closeCatalog(cat *catalog.Catalog) error {
	if err := cat.Close(); err != nil {
		return fmt.Errorf("catalog: close: %w", err)
	}
	return nil
}

// decompositionFor builds the job's decomposition over g's vertices. A
// pattern without vertices gets the single empty leaf.
func decompositionFor(j *config.Job, g *graph.Graph) (*ntd.Decomposition, error) {
	if g.VertexCount() == 0 {
		t, err := ntd.NewTree(1)
		if err != nil {
			return nil, err
		}
		return ntd.New(t, []ntd.Node{{Type: ntd.Leaf, Bag: []int{}}})
	}
	return j.BuildDecomposition(g.VertexCount())
}
