package srt

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// KeywordFunc extracts short keyword phrases from chunk text.
type KeywordFunc func(ctx context.Context, text string) ([]string, error)

// SummaryFunc produces a short summary of chunk text.
type SummaryFunc func(ctx context.Context, text string) (string, error)

// AnnotateOptions bounds the enrichment fan-out.
type AnnotateOptions struct {
	// MaxConcurrent caps in-flight chunk enrichments. Values < 1 mean
	// unbounded.
	MaxConcurrent int
	// RatePerMinute throttles enrichment calls across all chunks.
	// Values < 1 disable throttling.
	RatePerMinute int
}

// Annotate enriches every chunk with keywords and a summary. Calls for
// distinct chunks run concurrently; results are collected in input
// order. A failed call never aborts the batch: the chunk keeps an
// empty keywords slice or summary and processing continues. If ctx is
// cancelled mid-batch, chunks not yet enriched are returned
// un-annotated while completed annotations are kept.
func Annotate(ctx context.Context, chunks []Chunk, keywords KeywordFunc, summary SummaryFunc, opts AnnotateOptions) []Chunk {
	out := make([]Chunk, len(chunks))
	copy(out, chunks)
	if len(chunks) == 0 {
		return out
	}

	var limiter *rate.Limiter
	if opts.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RatePerMinute)/60.0), 1)
	}

	g, gctx := errgroup.WithContext(ctx)
	if opts.MaxConcurrent > 0 {
		g.SetLimit(opts.MaxConcurrent)
	}

	for i := range out {
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(gctx); err != nil {
					return err
				}
			}

			c := &out[i]

			if keywords != nil {
				kw, err := keywords(gctx, c.Text)
				switch {
				case err != nil && gctx.Err() != nil:
					// Cancelled: leave the chunk un-annotated.
					return gctx.Err()
				case err != nil:
					log.Printf("chunk %d: keyword enrichment failed: %v", i+1, err)
					c.Keywords = []string{}
				default:
					c.Keywords = kw
				}
			}

			if summary != nil {
				sum, err := summary(gctx, c.Text)
				switch {
				case err != nil && gctx.Err() != nil:
					return gctx.Err()
				case err != nil:
					log.Printf("chunk %d: summary enrichment failed: %v", i+1, err)
					c.Summary = ""
				default:
					c.Summary = sum
				}
			}
			return nil
		})
	}

	// The only non-nil error here is cancellation; enrichment failures
	// are absorbed above.
	if err := g.Wait(); err != nil {
		log.Printf("annotation interrupted: %v", err)
	}
	return out
}
