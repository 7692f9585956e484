package expansion

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Process runs link enumeration, spatial resolution and gauge integration
// on cfg.
func (c *Configuration) Process() error {
	if err := c.EnumeratePaths(); err != nil {
		return err
	}
	if err := c.ResolveSpatial(); err != nil {
		return err
	}

	return c.GaugeIntegrate()
}

// Process runs Configuration.Process on every top-order configuration,
// using up to o.Workers goroutines. The first error aborts the remaining
// work.
func (c *Catalog) Process(o Options) error {
	if o.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, o.Workers)
	}
	top := c.Top()
	if len(top) == 0 {
		return ErrNotGenerated
	}
	log := o.Logger
	if log == nil {
		log = slog.Default()
	}

	workers := min(o.Workers, len(top))
	jobs := make(chan *Configuration)
	errs := make([]error, workers)
	var (
		wg   sync.WaitGroup
		once sync.Once
		stop = make(chan struct{})
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for cfg := range jobs {
				if err := cfg.Process(); err != nil {
					errs[w] = fmt.Errorf("configuration %s: %w", cfg, err)
					once.Do(func() { close(stop) })

					return
				}
				log.Debug("expansion: configuration processed",
					"configuration", cfg.String(),
					"paths", len(cfg.Paths),
					"terms", countTerms(cfg))
			}
		}(w)
	}

feed:
	for _, cfg := range top {
		select {
		case jobs <- cfg:
		case <-stop:
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return errors.Join(errs...)
}

// Run generates the catalog of the given order, processes it and submits
// every term to sink in catalog order. The processed catalog is returned
// for inspection.
func Run(order int, sink Sink, opts ...Option) (*Catalog, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if sink == nil {
		return nil, ErrNilSink
	}

	cat, err := Generate(order)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("expansion: catalog generated",
		"order", order,
		"single_trace", len(cat.SingleTrace()),
		"multi_trace", len(cat.MultiTrace()))

	if err := cat.Process(o); err != nil {
		return cat, err
	}

	submitted := 0
	for _, cfg := range cat.Top() {
		for _, p := range cfg.Paths {
			for _, w := range p.Terms {
				if err := sink.Submit(w); err != nil {
					return cat, fmt.Errorf("expansion: submit term of %s: %w", cfg, err)
				}
				submitted++
			}
		}
	}
	o.Logger.Debug("expansion: terms submitted", "order", order, "terms", submitted)

	return cat, nil
}

func countTerms(cfg *Configuration) int {
	n := 0
	for _, p := range cfg.Paths {
		n += len(p.Terms)
	}

	return n
}
