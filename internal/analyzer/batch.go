package analyzer

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/k5602/CV-Analayzer/internal/types"
)

// AnalyzeBatch runs each document's full pipeline independently across a
// bounded worker pool. Every document yields exactly one BatchItem, carrying
// either its result or its failure; per-document failures never abort the
// batch. Output order follows the input paths.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, paths []string, jobDescription, platform string) []types.BatchItem {
	items := make([]types.BatchItem, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, path := range paths {
		g.Go(func() error {
			result, failure := a.Analyze(gctx, path, jobDescription, platform)
			items[i] = types.BatchItem{
				FilePath: path,
				FileName: filepath.Base(path),
				Result:   result,
				Failure:  failure,
			}
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes completion.
	_ = g.Wait()

	a.log.Info("batch analysis complete",
		zap.Int("documents", len(paths)),
		zap.Int("workers", a.workers))
	return items
}
