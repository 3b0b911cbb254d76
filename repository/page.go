// MIT License
//
// Copyright 2026 Bitxor Corp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS
// IN THE SOFTWARE.

package repository

import (
	"context"
	"net/url"
	"strconv"
)

// Order sorts search results.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Pagination selects a page of search results. Zero values are left to the
// gateway defaults.
type Pagination struct {
	PageSize   int
	PageNumber int
	// Offset is the id of the record to start after.
	Offset string
	Order  Order
}

func (p *Pagination) pagination() *Pagination { return p }

func (p Pagination) values() url.Values {
	q := make(url.Values)
	if p.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(p.PageSize))
	}
	if p.PageNumber > 0 {
		q.Set("pageNumber", strconv.Itoa(p.PageNumber))
	}
	if p.Offset != "" {
		q.Set("offset", p.Offset)
	}
	if p.Order != "" {
		q.Set("order", string(p.Order))
	}
	return q
}

// Page is one page of search results.
type Page[T any] struct {
	Data       []T
	PageNumber int
	PageSize   int
	IsLastPage bool
}

// NewPage computes IsLastPage: a page is the last one if it is empty or
// shorter than the page size.
func NewPage[T any](data []T, pageNumber, pageSize int) Page[T] {
	return Page[T]{
		Data:       data,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		IsLastPage: len(data) == 0 || pageSize > len(data),
	}
}

// SearchFunc returns one page of results matching criteria.
type SearchFunc[T, C any] func(ctx context.Context, criteria C) (Page[T], error)

// criteria is implemented by pointers to every search criteria type through
// the embedded Pagination.
type criteria[C any] interface {
	*C
	pagination() *Pagination
}

// Streamer delivers every result of a search, page after page.
type Streamer[T any] struct {
	items chan T
	err   error
}

// Stream walks the pages of search starting at the page number of criteria,
// or the first page, until the last page. Canceling ctx stops the walk. A
// caller that stops reading Items early must cancel ctx, otherwise the walk
// blocks forever.
func Stream[T, C any, PC criteria[C]](ctx context.Context,
	search SearchFunc[T, C], criteria C) *Streamer[T] {
	s := &Streamer[T]{items: make(chan T)}
	go func() {
		defer close(s.items)
		p := PC(&criteria).pagination()
		if p.PageNumber < 1 {
			p.PageNumber = 1
		}
		for {
			page, err := search(ctx, criteria)
			if err != nil {
				s.err = err
				return
			}
			for _, item := range page.Data {
				select {
				case s.items <- item:
				case <-ctx.Done():
					s.err = ctx.Err()
					return
				}
			}
			if page.IsLastPage {
				return
			}
			p.PageNumber++
		}
	}()
	return s
}

// Items returns the results. It is closed after the last result or the first
// error.
func (s *Streamer[T]) Items() <-chan T { return s.items }

// Err returns the error that ended the walk. It must only be called after
// Items is closed.
func (s *Streamer[T]) Err() error { return s.err }

// Collect returns every result of a search.
func Collect[T, C any, PC criteria[C]](ctx context.Context,
	search SearchFunc[T, C], criteria C) ([]T, error) {
	s := Stream[T, C, PC](ctx, search, criteria)
	var all []T
	for item := range s.Items() {
		all = append(all, item)
	}
	return all, s.Err()
}
