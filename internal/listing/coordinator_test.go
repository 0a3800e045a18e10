package listing

import (
	"context"
	"fmt"
	"testing"

	"github.com/jobdeck/jobdeck/internal/search"
	"github.com/jobdeck/jobdeck/pkg/models"
)

type fakeLister struct {
	listCalls   []string
	searchCalls []search.Criteria
	jobs        []models.Job
	total       int
	err         error
}

func (f *fakeLister) ListJobs(ctx context.Context, page, size int) (*models.PageResponse[models.Job], error) {
	f.listCalls = append(f.listCalls, fmt.Sprintf("page=%d size=%d", page, size))
	if f.err != nil {
		return nil, f.err
	}
	return &models.PageResponse[models.Job]{Content: f.jobs, TotalElements: f.total}, nil
}

func (f *fakeLister) SearchJobs(ctx context.Context, criteria search.Criteria) (*models.PageResponse[models.Job], error) {
	f.searchCalls = append(f.searchCalls, criteria)
	if f.err != nil {
		return nil, f.err
	}
	return &models.PageResponse[models.Job]{Content: f.jobs, TotalElements: f.total}, nil
}

func TestCoordinatorStartsUnfiltered(t *testing.T) {
	lister := &fakeLister{total: 42}
	coord := NewCoordinator(lister, 10)

	if err := coord.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if coord.InSearchMode() {
		t.Error("expected unfiltered mode after initial load")
	}
	if len(lister.listCalls) != 1 || lister.listCalls[0] != "page=0 size=10" {
		t.Errorf("list calls = %v", lister.listCalls)
	}
	if coord.Total() != 42 {
		t.Errorf("Total = %d, want 42", coord.Total())
	}
}

func TestCoordinatorSwitchesToSearchMode(t *testing.T) {
	lister := &fakeLister{}
	coord := NewCoordinator(lister, 10)

	criteria := search.Default()
	criteria.JobTitle = "Engineer"
	if err := coord.OnSearch(context.Background(), criteria); err != nil {
		t.Fatalf("OnSearch: %v", err)
	}
	if !coord.InSearchMode() {
		t.Error("expected search mode after filtered criteria")
	}
	if len(lister.searchCalls) != 1 {
		t.Fatalf("search calls = %d, want 1", len(lister.searchCalls))
	}
	if got := lister.searchCalls[0].JobTitle; got != "Engineer" {
		t.Errorf("criteria title = %q", got)
	}

	// Default criteria drop back to the unfiltered listing.
	if err := coord.OnSearch(context.Background(), search.Default()); err != nil {
		t.Fatalf("OnSearch: %v", err)
	}
	if coord.InSearchMode() {
		t.Error("expected unfiltered mode after default criteria")
	}
	if len(lister.listCalls) != 1 {
		t.Errorf("list calls = %d, want 1", len(lister.listCalls))
	}
}

func TestCoordinatorPageChange(t *testing.T) {
	lister := &fakeLister{}
	coord := NewCoordinator(lister, 10)

	// first=20 rows=10 is page 2.
	if err := coord.PageChange(context.Background(), 20, 10); err != nil {
		t.Fatalf("PageChange: %v", err)
	}
	if coord.Page() != 2 {
		t.Errorf("Page = %d, want 2", coord.Page())
	}
	if lister.listCalls[0] != "page=2 size=10" {
		t.Errorf("list call = %q", lister.listCalls[0])
	}

	// A rows change re-derives the page index.
	if err := coord.PageChange(context.Background(), 40, 20); err != nil {
		t.Fatalf("PageChange: %v", err)
	}
	if lister.listCalls[1] != "page=2 size=20" {
		t.Errorf("list call = %q", lister.listCalls[1])
	}
}

func TestCoordinatorSortChange(t *testing.T) {
	lister := &fakeLister{}
	coord := NewCoordinator(lister, 10)

	// Paginate away from page 0 first.
	if err := coord.PageChange(context.Background(), 30, 10); err != nil {
		t.Fatalf("PageChange: %v", err)
	}

	// A sort change while idle forces search mode with empty criteria and
	// resets to page 0.
	if err := coord.SortChange(context.Background(), SortCompanyAsc); err != nil {
		t.Fatalf("SortChange: %v", err)
	}
	if !coord.InSearchMode() {
		t.Error("expected search mode after sort change")
	}
	if len(lister.searchCalls) != 1 {
		t.Fatalf("search calls = %d, want 1", len(lister.searchCalls))
	}
	got := lister.searchCalls[0]
	if got.Page != 0 {
		t.Errorf("page = %d, want 0", got.Page)
	}
	if got.SortBy != "companyName" || got.SortDirection != "ASC" {
		t.Errorf("sort = %s %s, want companyName ASC", got.SortBy, got.SortDirection)
	}
	if got.HasFilters() {
		t.Error("forced search criteria should carry no filters")
	}
}

func TestCoordinatorSetSortDefersFetch(t *testing.T) {
	lister := &fakeLister{}
	coord := NewCoordinator(lister, 10)

	// Recording the sort alone must not hit the backend.
	coord.SetSort(SortCompanyAsc)
	if len(lister.listCalls)+len(lister.searchCalls) != 0 {
		t.Fatalf("SetSort issued requests: list=%v search=%v", lister.listCalls, lister.searchCalls)
	}
	if !coord.InSearchMode() {
		t.Error("expected search mode after sorting while idle")
	}

	// The next page change carries the sort in a single request.
	if err := coord.PageChange(context.Background(), 20, 10); err != nil {
		t.Fatalf("PageChange: %v", err)
	}
	if len(lister.searchCalls) != 1 || len(lister.listCalls) != 0 {
		t.Fatalf("calls after page change: list=%v search=%v, want one search", lister.listCalls, lister.searchCalls)
	}
	got := lister.searchCalls[0]
	if got.Page != 2 {
		t.Errorf("page = %d, want 2", got.Page)
	}
	if got.SortBy != "companyName" || got.SortDirection != "ASC" {
		t.Errorf("sort = %s %s, want companyName ASC", got.SortBy, got.SortDirection)
	}
}

func TestCoordinatorSortMapping(t *testing.T) {
	tests := []struct {
		sort      string
		by        string
		direction string
	}{
		{SortNewest, "createdAt", "DESC"},
		{SortOldest, "createdAt", "ASC"},
		{SortCompanyAsc, "companyName", "ASC"},
		{SortCompanyDesc, "companyName", "DESC"},
		{"bogus", "createdAt", "DESC"},
	}
	for _, tt := range tests {
		by, direction := sortParameters(tt.sort)
		if by != tt.by || direction != tt.direction {
			t.Errorf("sortParameters(%q) = %s %s, want %s %s", tt.sort, by, direction, tt.by, tt.direction)
		}
	}
}

func TestCoordinatorNormalizesLogos(t *testing.T) {
	lister := &fakeLister{jobs: []models.Job{
		{JobID: "j1", LogoBase64: "aGVsbG8=", LogoContentType: "image/png"},
		{JobID: "j2"},
	}, total: 2}
	coord := NewCoordinator(lister, 10)

	if err := coord.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	jobs := coord.Jobs()
	if jobs[0].LogoDataURL != "data:image/png;base64,aGVsbG8=" {
		t.Errorf("job 1 logo = %q", jobs[0].LogoDataURL)
	}
	if jobs[1].LogoDataURL != DefaultLogoPath {
		t.Errorf("job 2 logo = %q, want fallback", jobs[1].LogoDataURL)
	}

	coord.MarkLogoFailed("j1")
	if got := coord.Jobs()[0].LogoDataURL; got != "" {
		t.Errorf("logo after failure = %q, want cleared", got)
	}
}

func TestCoordinatorDeepLinkFlow(t *testing.T) {
	lister := &fakeLister{}
	coord := NewCoordinator(lister, 10)

	sync := search.NewSynchronizer(0, func(c search.Criteria) {
		if err := coord.OnSearch(context.Background(), c); err != nil {
			t.Errorf("OnSearch: %v", err)
		}
	})
	defer sync.Close()

	if err := sync.LoadQuery("title=Senior&location=NYC&page=1"); err != nil {
		t.Fatalf("LoadQuery: %v", err)
	}

	if !coord.InSearchMode() {
		t.Fatal("expected search mode from deep link")
	}
	if len(lister.searchCalls) != 1 {
		t.Fatalf("search calls = %d, want 1", len(lister.searchCalls))
	}
	got := lister.searchCalls[0]
	if got.JobTitle != "Senior" || got.Location != "NYC" {
		t.Errorf("criteria = %+v", got)
	}
	if got.Page != 1 {
		t.Errorf("page = %d, want 1 from deep link", got.Page)
	}
}
