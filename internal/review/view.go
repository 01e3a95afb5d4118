package review

import (
	"time"

	"github.com/share2solve/backend/internal/model"
)

// View holds the dashboard's browsing state over the fetched record set.
// The slice is always replaced wholesale after a mutation, never patched.
// Changing the search term or sort key resets the current page to 1.
type View struct {
	problems []*model.Problem
	search   string
	sortBy   string
	page     int
}

// NewView creates an empty View sorted newest-first.
func NewView() *View {
	return &View{sortBy: model.SortNewest, page: 1}
}

// SetProblems replaces the full record set, keeping search/sort/page.
func (v *View) SetProblems(problems []*model.Problem) {
	v.problems = problems
}

// SetSearch updates the search term. A changed term resets the page.
func (v *View) SetSearch(search string) {
	if search != v.search {
		v.page = 1
	}
	v.search = search
}

// SetSort updates the sort key. A changed key resets the page.
func (v *View) SetSort(sortBy string) {
	if sortBy != v.sortBy {
		v.page = 1
	}
	v.sortBy = sortBy
}

// SetPage moves to the given page; clamping happens when the page is built.
func (v *View) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

func (v *View) Search() string { return v.search }
func (v *View) SortBy() string { return v.sortBy }

// Page runs the filter → sort → paginate pipeline and returns the current
// page, with the stored page number clamped to the filtered result.
func (v *View) Page() Page {
	filtered := Filter(v.problems, v.search)
	sorted := Sort(filtered, v.sortBy)
	page := Paginate(sorted, v.page, PageSize)
	v.page = page.Number
	return page
}

// Stats summarizes the full (unfiltered) record set.
func (v *View) Stats(now time.Time) Stats {
	return Summarize(v.problems, now)
}
