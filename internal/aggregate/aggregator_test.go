package aggregate

import (
	"context"
	"errors"
	"testing"

	"github.com/lotto-works/ssqfetch/pkg/models"
)

// scriptedFetcher serves a fixed sequence of pages and records how many
// fetches were made. Pages beyond the script are empty.
type scriptedFetcher struct {
	pages [][]models.RawDraw
	err   error // returned on the page at errPage
	errAt int
	calls int
}

func (f *scriptedFetcher) FetchPage(ctx context.Context, pageSize, pageNo int) ([]models.RawDraw, error) {
	f.calls++
	if f.err != nil && pageNo == f.errAt {
		return nil, f.err
	}
	if pageNo > len(f.pages) {
		return nil, nil
	}
	return f.pages[pageNo-1], nil
}

func draws(issues ...string) []models.RawDraw {
	page := make([]models.RawDraw, len(issues))
	for i, issue := range issues {
		page[i] = models.RawDraw{"code": issue, "date": "2024-01-0" + issue}
	}
	return page
}

func TestFetchAll_DedupFirstPageWins(t *testing.T) {
	fetcher := &scriptedFetcher{pages: [][]models.RawDraw{
		{
			{"code": "1", "date": "from-page-1"},
			{"code": "2", "date": "from-page-1"},
		},
		{
			{"code": "2", "date": "from-page-2"},
			{"code": "3", "date": "from-page-2"},
		},
	}}

	agg := New(fetcher, nil, Options{PageSize: 2, MaxPages: 10})
	records, err := agg.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, want := range []string{"1", "2", "3"} {
		if records[i].Issue != want {
			t.Errorf("records[%d].Issue = %q, want %q", i, records[i].Issue, want)
		}
	}
	// The duplicate kept the first page's values.
	if records[1].DrawDate != "from-page-1" {
		t.Errorf("duplicate issue kept %q, want first occurrence", records[1].DrawDate)
	}
}

func TestFetchAll_ShortPageStops(t *testing.T) {
	fetcher := &scriptedFetcher{pages: [][]models.RawDraw{
		draws("1", "2", "3"),
		draws("4"), // short: last page
		draws("5", "6", "7"),
	}}

	agg := New(fetcher, nil, Options{PageSize: 3, MaxPages: 10})
	records, err := agg.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if fetcher.calls != 2 {
		t.Errorf("fetched %d pages, want 2 (stop after short page)", fetcher.calls)
	}
	if len(records) != 4 {
		t.Errorf("got %d records, want 4", len(records))
	}
}

func TestFetchAll_EmptyPageStops(t *testing.T) {
	fetcher := &scriptedFetcher{pages: [][]models.RawDraw{
		draws("1", "2"),
		{}, // end of data, not an error
	}}

	agg := New(fetcher, nil, Options{PageSize: 2, MaxPages: 10})
	records, err := agg.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if fetcher.calls != 2 {
		t.Errorf("fetched %d pages, want 2", fetcher.calls)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestFetchAll_AllDuplicatesFullPageContinues(t *testing.T) {
	// A full page of already-seen issues must not end the walk early; only
	// the raw item count decides the short-page stop.
	fetcher := &scriptedFetcher{pages: [][]models.RawDraw{
		draws("1", "2"),
		draws("1", "2"), // all duplicates but full-length
		draws("3"),      // short page, stop here
	}}

	agg := New(fetcher, nil, Options{PageSize: 2, MaxPages: 10})
	records, err := agg.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if fetcher.calls != 3 {
		t.Errorf("fetched %d pages, want 3", fetcher.calls)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestFetchAll_NoRecordsError(t *testing.T) {
	fetcher := &scriptedFetcher{pages: [][]models.RawDraw{{}}}

	agg := New(fetcher, nil, Options{PageSize: 30, MaxPages: 10})
	_, err := agg.FetchAll(context.Background())
	if !errors.Is(err, ErrNoRecords) {
		t.Errorf("got %v, want ErrNoRecords", err)
	}
}

func TestFetchAll_FetchErrorAborts(t *testing.T) {
	boom := errors.New("http 403")
	fetcher := &scriptedFetcher{
		pages: [][]models.RawDraw{draws("1", "2"), draws("3", "4")},
		err:   boom,
		errAt: 2,
	}

	agg := New(fetcher, nil, Options{PageSize: 2, MaxPages: 10})
	_, err := agg.FetchAll(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped fetch error", err)
	}
}

func TestFetchAll_MaxPagesBound(t *testing.T) {
	// Every page is full, so only MaxPages stops the walk.
	var pages [][]models.RawDraw
	for i := 0; i < 20; i++ {
		pages = append(pages, draws("a", "b")) // duplicates beyond page 1
	}
	fetcher := &scriptedFetcher{pages: pages}

	agg := New(fetcher, nil, Options{PageSize: 2, MaxPages: 5})
	records, err := agg.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if fetcher.calls != 5 {
		t.Errorf("fetched %d pages, want MaxPages=5", fetcher.calls)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestFetchAll_OnPageCallback(t *testing.T) {
	fetcher := &scriptedFetcher{pages: [][]models.RawDraw{
		draws("1", "2"),
		draws("3"),
	}}

	var pagesSeen []int
	agg := New(fetcher, nil, Options{
		PageSize: 2,
		MaxPages: 10,
		OnPage: func(pageNo, fetched, kept int) {
			pagesSeen = append(pagesSeen, pageNo)
			if pageNo == 1 && (fetched != 2 || kept != 2) {
				t.Errorf("page 1 callback: fetched=%d kept=%d", fetched, kept)
			}
		},
	})
	if _, err := agg.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if len(pagesSeen) != 2 {
		t.Errorf("OnPage called for pages %v, want 2 calls", pagesSeen)
	}
}
