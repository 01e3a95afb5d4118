// Package review implements the admin dashboard's in-memory list pipeline:
// filter by search term, sort, then paginate, over the full record set
// fetched from the server. The sort semantics are identical to the server's
// list endpoint so both sides agree on ordering.
package review

import (
	"sort"
	"strings"
	"time"

	"github.com/share2solve/backend/internal/model"
)

// PageSize is the fixed number of problems shown per dashboard page.
const PageSize = 10

// Filter returns the problems whose email or text contains the search term,
// case-insensitively. An empty or whitespace-only term keeps everything.
func Filter(problems []*model.Problem, search string) []*model.Problem {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return problems
	}
	var out []*model.Problem
	for _, p := range problems {
		if strings.Contains(strings.ToLower(p.Email), search) ||
			strings.Contains(strings.ToLower(p.Problem), search) {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a sorted copy of problems per the given sort key:
// newest/oldest by timestamp, email lexicographically ascending, status with
// the pending group first and each group newest-first. Unknown keys fall
// back to newest.
func Sort(problems []*model.Problem, sortBy string) []*model.Problem {
	sorted := make([]*model.Problem, len(problems))
	copy(sorted, problems)

	switch sortBy {
	case model.SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamp.Before(sorted[j].Timestamp)
		})
	case model.SortEmail:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Email < sorted[j].Email
		})
	case model.SortStatus:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Status != sorted[j].Status {
				return sorted[i].Status == model.StatusPending
			}
			return sorted[i].Timestamp.After(sorted[j].Timestamp)
		})
	default: // newest
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Timestamp.After(sorted[j].Timestamp)
		})
	}
	return sorted
}

// Page is one page of the filtered and sorted problem list.
type Page struct {
	Items      []*model.Problem
	Number     int
	TotalPages int
	TotalItems int
}

// Paginate slices problems into the requested page of the given size.
// The page number is clamped to [1, ceil(len/perPage)].
func Paginate(problems []*model.Problem, page, perPage int) Page {
	total := len(problems)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      problems[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// Stats are the dashboard counters, recomputed on every render.
type Stats struct {
	Total    int
	Pending  int
	Resolved int
	// Recent counts problems submitted within the last 24 hours.
	Recent int
}

// Summarize counts pending, resolved and recently submitted problems
// relative to now.
func Summarize(problems []*model.Problem, now time.Time) Stats {
	s := Stats{Total: len(problems)}
	dayAgo := now.Add(-24 * time.Hour)
	for _, p := range problems {
		switch p.Status {
		case model.StatusPending:
			s.Pending++
		case model.StatusResolved:
			s.Resolved++
		}
		if p.Timestamp.After(dayAgo) {
			s.Recent++
		}
	}
	return s
}
