// Package listx implements the list-page pattern shared by every catalog
// view: case-insensitive substring search over selected text fields, plus
// fixed-size pagination. Filtering is stable and idempotent.
package listx

import "strings"

// Field extracts one searchable text field from an item. Extractors for
// optional fields should return "" when the value is absent; an empty field
// never matches a non-empty query but is not an error.
type Field[T any] func(T) string

// Filter returns the items for which at least one field contains query,
// ignoring case. An empty query returns the input unchanged. Input order is
// preserved.
func Filter[T any](items []T, query string, fields ...Field[T]) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(it)), q) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Page is one slice of a filtered list.
type Page[T any] struct {
	Items  []T
	Number int // 1-based page number
	Pages  int // total pages; at least 1, even for an empty list
	Count  int // total items across all pages
}

// Paginate slices items into pages of the given size and returns page number
// n (clamped into range). An empty input yields a single empty page.
func Paginate[T any](items []T, n, size int) Page[T] {
	if size < 1 {
		size = 1
	}

	pages := (len(items) + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if n < 1 {
		n = 1
	}
	if n > pages {
		n = pages
	}

	start := (n - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:  items[start:end],
		Number: n,
		Pages:  pages,
		Count:  len(items),
	}
}

// Pager tracks the current query and page for one list view. Changing the
// query resets to the first page.
type Pager[T any] struct {
	size   int
	fields []Field[T]
	query  string
	page   int
}

func NewPager[T any](size int, fields ...Field[T]) *Pager[T] {
	return &Pager[T]{size: size, fields: fields, page: 1}
}

// SetQuery updates the search text. A changed query moves back to page 1.
func (p *Pager[T]) SetQuery(q string) {
	if q != p.query {
		p.page = 1
	}
	p.query = q
}

func (p *Pager[T]) Query() string { return p.query }

func (p *Pager[T]) Next() { p.page++ }

func (p *Pager[T]) Prev() {
	if p.page > 1 {
		p.page--
	}
}

// View applies the current query and page to items. The page number is
// clamped, so a Next past the end lands on the last page.
func (p *Pager[T]) View(items []T) Page[T] {
	filtered := Filter(items, p.query, p.fields...)
	page := Paginate(filtered, p.page, p.size)
	p.page = page.Number
	return page
}
