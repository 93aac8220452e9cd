package importer

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gnana997/tokensmith/pkg/tokens"
)

// fileJob is one discovered file. Index is its position in path order.
type fileJob struct {
	Path  string
	Index int
}

// fileResult is the outcome of one fileJob.
type fileResult struct {
	Path  string
	Index int
	Set   tokens.ColorSet
	Err   error
}

// workerPool imports files on a fixed number of goroutines.
//
// The worker count matches the parser pool size so JS/TS jobs never wait on
// a parser held by another worker.
//
// **Usage:**
//
//	wp := newWorkerPool(n, im.ImportFile, logger)
//	results := wp.run(ctx, files)
//	// results[i] belongs to files[i]
type workerPool struct {
	numWorkers int
	importFn   func(path string) (tokens.ColorSet, error)
	logger     *slog.Logger

	processed atomic.Int64
	failed    atomic.Int64
}

func newWorkerPool(numWorkers int, importFn func(string) (tokens.ColorSet, error), logger *slog.Logger) *workerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &workerPool{numWorkers: numWorkers, importFn: importFn, logger: logger}
}

// run imports every path and returns results indexed like paths.
// A cancelled context marks the remaining jobs with ctx.Err().
func (wp *workerPool) run(ctx context.Context, paths []string) []fileResult {
	results := make([]fileResult, len(paths))
	if len(paths) == 0 {
		return results
	}

	workers := wp.numWorkers
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan fileJob, workers*2)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for job := range jobs {
				results[job.Index] = wp.process(ctx, id, job)
			}
		}(i)
	}

	for i, p := range paths {
		jobs <- fileJob{Path: p, Index: i}
	}
	close(jobs)
	wg.Wait()

	wp.logger.Debug("worker pool finished", "workers", workers,
		"processed", wp.processed.Load(), "failed", wp.failed.Load())
	return results
}

func (wp *workerPool) process(ctx context.Context, workerID int, job fileJob) fileResult {
	res := fileResult{Path: job.Path, Index: job.Index}
	if err := ctx.Err(); err != nil {
		res.Err = err
		wp.failed.Add(1)
		return res
	}

	wp.logger.Debug("importing file", "worker_id", workerID, "path", job.Path)
	res.Set, res.Err = wp.importFn(job.Path)
	if res.Err != nil {
		wp.failed.Add(1)
	} else {
		wp.processed.Add(1)
	}
	return res
}
