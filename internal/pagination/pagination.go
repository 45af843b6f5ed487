// Package pagination implements skip/limit paging shared by the post,
// video and area-scoped listings. The engine is pure: it only turns raw
// query parameters into offsets and page counts.
package pagination

import "strconv"

// Params holds normalized paging parameters. A Limit of 0 means
// "unlimited": the whole result set is a single page.
type Params struct {
	Page  int
	Limit int
}

// Parse normalizes raw page/limit query values. Negative or non-numeric
// values fall back to the defaults (page 1, limit defaultLimit), so the
// computed skip can never be negative.
func Parse(pageStr, limitStr string, defaultLimit int) Params {
	page := 1

	if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
		page = p
	}

	limit := defaultLimit

	if l, err := strconv.Atoi(limitStr); err == nil && l >= 0 {
		limit = l
	}

	return Params{Page: page, Limit: limit}
}

// Limited reports whether a limit is in effect.
func (p Params) Limited() bool {
	return p.Limit > 0
}

// Skip is the number of items to skip before the requested page.
func (p Params) Skip() int {
	if !p.Limited() {
		return 0
	}

	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total/limit) when a limit is set, otherwise 1.
func (p Params) TotalPages(total int64) int {
	if !p.Limited() {
		return 1
	}

	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

// LimitOrTotal is the envelope field shared by the post and video
// listings: the requested limit when one is set, else the total count.
func (p Params) LimitOrTotal(total int64) int64 {
	if p.Limited() {
		return int64(p.Limit)
	}

	return total
}

// Bounds returns the half-open [lo, hi) slice bounds for paging an
// in-memory result set of n items. A page past the end yields an empty
// range rather than an error.
func (p Params) Bounds(n int) (int, int) {
	lo := p.Skip()

	if lo > n {
		lo = n
	}

	hi := n

	if p.Limited() && lo+p.Limit < n {
		hi = lo + p.Limit
	}

	return lo, hi
}
