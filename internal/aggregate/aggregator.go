// Package aggregate drives paged fetches of draw history and folds the pages
// into a deduplicated, ordered record sequence.
package aggregate

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lotto-works/ssqfetch/pkg/models"
)

// ErrNoRecords is returned when the paging loop finished without
// accumulating a single record.
var ErrNoRecords = errors.New("no draw records fetched")

// PageFetcher fetches one page of raw draw items.
type PageFetcher interface {
	FetchPage(ctx context.Context, pageSize, pageNo int) ([]models.RawDraw, error)
}

// Pacer blocks between successive page fetches.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Options tunes one aggregation run.
type Options struct {
	PageSize int
	MaxPages int

	// OnPage, if set, is called after each processed page with the page
	// number, the raw item count, and how many records were kept.
	OnPage func(pageNo, fetched, kept int)
}

// Aggregator accumulates the full draw history page by page.
type Aggregator struct {
	fetcher PageFetcher
	pacer   Pacer
	opts    Options
	logger  zerolog.Logger
}

// New creates an aggregator. pacer may be nil to disable pacing.
func New(fetcher PageFetcher, pacer Pacer, opts Options) *Aggregator {
	if opts.PageSize < 1 {
		opts.PageSize = 30
	}
	if opts.MaxPages < 1 {
		opts.MaxPages = 60
	}
	return &Aggregator{
		fetcher: fetcher,
		pacer:   pacer,
		opts:    opts,
		logger:  log.With().Str("component", "aggregate").Logger(),
	}
}

// FetchAll walks pages 1..MaxPages, normalizing and deduplicating by issue
// number. The first occurrence of an issue wins. An empty page or a page
// shorter than the requested size ends the walk; the first fetch error
// aborts it. The dedup state is local to the call, so independent runs do
// not interfere.
func (a *Aggregator) FetchAll(ctx context.Context) ([]models.DrawRecord, error) {
	records := make([]models.DrawRecord, 0, a.opts.PageSize)
	seen := make(map[string]struct{})

	for pageNo := 1; pageNo <= a.opts.MaxPages; pageNo++ {
		page, err := a.fetcher.FetchPage(ctx, a.opts.PageSize, pageNo)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNo, err)
		}

		if len(page) == 0 {
			a.logger.Info().Int("page", pageNo).Msg("Empty page, end of data")
			break
		}

		kept := 0
		for _, raw := range page {
			rec := models.NewDrawRecord(raw)
			if _, dup := seen[rec.Issue]; dup {
				continue
			}
			seen[rec.Issue] = struct{}{}
			records = append(records, rec)
			kept++
		}

		a.logger.Debug().
			Int("page", pageNo).
			Int("fetched", len(page)).
			Int("kept", kept).
			Int("total", len(records)).
			Msg("Page processed")

		if a.opts.OnPage != nil {
			a.opts.OnPage(pageNo, len(page), kept)
		}

		// A short page is the last page. Duplicates still count toward the
		// page length here, only the raw item count matters.
		if len(page) < a.opts.PageSize {
			a.logger.Info().
				Int("page", pageNo).
				Int("fetched", len(page)).
				Msg("Short page, last page reached")
			break
		}

		if a.pacer != nil && pageNo < a.opts.MaxPages {
			if err := a.pacer.Wait(ctx); err != nil {
				return nil, fmt.Errorf("pacing before page %d: %w", pageNo+1, err)
			}
		}
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	a.logger.Info().Int("records", len(records)).Msg("Draw history aggregated")
	return records, nil
}
