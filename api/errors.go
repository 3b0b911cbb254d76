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

package api

import (
	"encoding/json"
	"errors"
)

// Error is the single error shape of every failed request. Transport errors
// have a zero StatusCode and keep their cause in Err.
type Error struct {
	StatusCode    int
	StatusMessage string
	Body          string

	Err error
}

type errorJSON struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
	Body          string `json:"body"`
}

func newTransportError(err error) *Error {
	return &Error{StatusMessage: err.Error(), Err: err}
}

// Error returns the JSON encoding of the status code, the status message and
// the body.
func (e *Error) Error() string {
	data, _ := json.Marshal(errorJSON{e.StatusCode, e.StatusMessage, e.Body})
	return string(data)
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status code carried by err, or 0 if err is not
// an *Error.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound returns true if err is a 404 response.
func IsNotFound(err error) bool { return StatusCode(err) == 404 }
