package estimate

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"
)

// Region is one labelled mask over a shared frame.
type Region struct {
	Name    string
	Surface SurfaceType
	Mask    image.Image
}

// RegionResult is the estimate for one Region. Err is set when that region alone failed.
type RegionResult struct {
	Region Region
	Info   ColorInfo
	Err    error
}

// EstimateRegions estimates every region of frame concurrently. Results are returned in the
// same order as regions. Regions not yet started when ctx is cancelled report ctx.Err().
func (e *Estimator) EstimateRegions(ctx context.Context, frame image.Image, regions []Region) ([]RegionResult, error) {
	if frame == nil {
		return nil, ErrNilImage
	}

	results := make([]RegionResult, len(regions))
	workers := min(runtime.GOMAXPROCS(0), len(regions))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r := regions[i]
				results[i].Region = r
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				info, err := e.Estimate(frame, r.Mask)
				if err != nil {
					results[i].Err = fmt.Errorf("region %q: %w", r.Name, err)
					continue
				}
				results[i].Info = info
			}
		}()
	}

	for i := range regions {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	e.logger.Debug("estimated regions", "count", len(regions), "workers", workers)
	return results, ctx.Err()
}
