// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination turns ?page=&limit= into SQL offsets and response metadata.
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

// Bounds applied by [FromRequest]. Pages are 1-indexed.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	// MaxPage keeps (MaxPage-1)*MaxLimit within int.
	MaxPage = math.MaxInt / MaxLimit
)

// Params is a normalized page request.
type Params struct {
	Page  int
	Limit int
}

// Offset is the number of rows to skip before this page. It saturates at
// math.MaxInt instead of wrapping negative.
func (p Params) Offset() int {
	skipped := max(p.Page-1, 0)
	if p.Limit <= 0 || skipped == 0 {
		return 0
	}
	if skipped > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return skipped * p.Limit
}

// Meta describes the page that was served.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta builds the metadata for a page out of total rows.
func NewMeta(page, limit, total int) Meta {
	meta := Meta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = (total + limit - 1) / limit
	}
	return meta
}

// FromRequest reads page and limit from the query string.
//
// Unparseable or non-positive values fall back to the defaults. A limit above
// [MaxLimit] or a page above [MaxPage] is clamped rather than rejected.
func FromRequest(r *http.Request) Params {
	query := r.URL.Query()

	page := min(positiveOr(query.Get("page"), DefaultPage), MaxPage)
	limit := min(positiveOr(query.Get("limit"), DefaultLimit), MaxLimit)

	return Params{Page: page, Limit: limit}
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
