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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bitxorcorp/bitxor-sdk-go/log"
)

// Client makes requests to the REST gateway of a Bitxor node. Use HTTPClient
// to configure timeouts, TLS and alternative transports.
type Client struct {
	URL        string
	HTTPClient *http.Client

	// DebugRequest logs every request and the status of its response.
	DebugRequest bool
}

// URLDefault is the REST gateway of a local node.
const URLDefault = "http://localhost:3000"

var logger = log.New("api")

// NewClient returns a Client for the gateway at baseURL, or URLDefault if
// baseURL is empty. A nil httpClient is replaced with one using a 15 second
// timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = URLDefault
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{URL: strings.TrimRight(baseURL, "/"), HTTPClient: httpClient}
}

// Get requests path with the given query and decodes the JSON response into
// result.
func (c *Client) Get(ctx context.Context, path string, query url.Values,
	result interface{}) error {
	return c.Request(ctx, http.MethodGet, path, query, nil, result)
}

// Post sends body as JSON to path and decodes the JSON response into result.
func (c *Client) Post(ctx context.Context, path string, body,
	result interface{}) error {
	return c.Request(ctx, http.MethodPost, path, nil, body, result)
}

// Put sends body as JSON to path and decodes the JSON response into result.
func (c *Client) Put(ctx context.Context, path string, body,
	result interface{}) error {
	return c.Request(ctx, http.MethodPut, path, nil, body, result)
}

// Request performs one request. Every failure, from building the request to
// decoding the response, is returned as an *Error. A nil result discards the
// response body.
func (c *Client) Request(ctx context.Context, method, path string,
	query url.Values, body, result interface{}) error {

	u := c.URL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return newTransportError(fmt.Errorf("%v %v: %w", method, path, err))
		}
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return newTransportError(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.DebugRequest {
		logger.Debugf("%v %v", method, u)
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	res, err := httpClient.Do(req)
	if err != nil {
		return newTransportError(err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return newTransportError(err)
	}
	if c.DebugRequest {
		logger.Debugf("%v %v: %v", method, u, res.Status)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &Error{
			StatusCode:    res.StatusCode,
			StatusMessage: statusMessage(res),
			Body:          string(data),
		}
	}
	if result == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return &Error{
			StatusCode:    res.StatusCode,
			StatusMessage: statusMessage(res),
			Body:          string(data),
			Err:           fmt.Errorf("%T: %w", result, err),
		}
	}
	return nil
}

func statusMessage(res *http.Response) string {
	if text := http.StatusText(res.StatusCode); text != "" {
		return text
	}
	return strings.TrimSpace(strings.TrimPrefix(res.Status,
		fmt.Sprint(res.StatusCode)))
}

