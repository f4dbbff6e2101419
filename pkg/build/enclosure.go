package build

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/pmuller/led-matrix-enclosure/pkg/enclosure"
)

// BuildEnclosure realizes every module concurrently. Modules are
// independent once split, so they build in parallel; the first failure
// cancels the rest. Results keep the input order.
func BuildEnclosure(ctx context.Context, modules []enclosure.Module, cfg enclosure.Config, logger *log.Logger) ([]ModuleGeometry, error) {
	if logger == nil {
		logger = log.Default()
	}

	results := make([]ModuleGeometry, len(modules))
	g, ctx := errgroup.WithContext(ctx)
	for i, m := range modules {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Debug("building module",
				"module", m.Label(),
				"inner", m.Inner.Size.String(),
				"borders", m.Borders.String())
			geometry, err := BuildModule(m, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", m.Label(), err)
			}
			results[i] = geometry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
