package query

import (
	"strings"
	"time"

	"github.com/roach88/slf/internal/logline"
)

// Params are the user-facing filter parameters. Zero values mean "not set",
// except for Recent, which is a pointer because zero days is a valid window
// (today only).
type Params struct {
	// Begin is an inclusive lower bound compared against whole lines.
	Begin string

	// End is an exclusive upper bound compared against whole lines.
	End string

	// Tags must all appear in a line, each as "#" + tag.
	Tags []string

	// Recent keeps lines from the last N days (UTC date of now minus N days
	// onwards). Combines with Begin; both must pass.
	Recent *int

	// Limit caps the number of emitted lines. Zero or negative means no cap.
	Limit int
}

// Filter is a compiled Params for one query run.
type Filter struct {
	begin       string
	end         string
	tags        []string
	recentBound string
}

// NewFilter compiles p. The recent bound, if any, is computed here from now
// and stays fixed for the lifetime of the filter.
func NewFilter(p Params, now time.Time) *Filter {
	f := &Filter{
		begin: p.Begin,
		end:   p.End,
	}
	if len(p.Tags) > 0 {
		f.tags = make([]string, len(p.Tags))
		for i, t := range p.Tags {
			f.tags[i] = logline.Tag(t)
		}
	}
	if p.Recent != nil {
		f.recentBound = RecentBound(now, *p.Recent)
	}
	return f
}

// RecentBound returns the date-only lower bound for the last days days.
// Any non-negative day count is valid.
func RecentBound(now time.Time, days int) string {
	return logline.Date(now.UTC().AddDate(0, 0, -days))
}

// RecentBound reports the bound compiled into f, or "" when recency is not
// filtered.
func (f *Filter) RecentBound() string {
	return f.recentBound
}

// Match reports whether line passes every configured check.
func (f *Filter) Match(line string) bool {
	if f.begin != "" && line < f.begin {
		return false
	}
	if f.end != "" && line >= f.end {
		return false
	}
	for _, tag := range f.tags {
		if !strings.Contains(line, tag) {
			return false
		}
	}
	if f.recentBound != "" && line < f.recentBound {
		return false
	}
	return true
}
