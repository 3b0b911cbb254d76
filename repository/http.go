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

	"github.com/bitxorcorp/bitxor-sdk-go/api"
	"github.com/bitxorcorp/bitxor-sdk-go/log"
)

var logger = log.New("repository")

// searchCriteria is implemented by every search criteria type.
type searchCriteria interface {
	values() url.Values
}

// search requests one page of path and maps every record.
func search[D, T any](ctx context.Context, c *api.Client, path string,
	criteria searchCriteria, mapper func(D) (T, error)) (Page[T], error) {
	var res api.ResultPage[D]
	if err := c.Get(ctx, path, criteria.values(), &res); err != nil {
		return Page[T]{}, err
	}
	data, err := mapAll(res.Data, mapper)
	if err != nil {
		return Page[T]{}, err
	}
	return NewPage(data, res.Pagination.PageNumber, res.Pagination.PageSize), nil
}

func mapAll[D, T any](list []D, mapper func(D) (T, error)) ([]T, error) {
	data := make([]T, len(list))
	for i, d := range list {
		v, err := mapper(d)
		if err != nil {
			return nil, err
		}
		data[i] = v
	}
	return data, nil
}

// infallible adapts a mapper that cannot fail.
func infallible[D, T any](mapper func(D) T) func(D) (T, error) {
	return func(d D) (T, error) { return mapper(d), nil }
}
