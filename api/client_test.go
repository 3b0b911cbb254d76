package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	var method, query, body string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			method, query = r.Method, r.URL.RawQuery
			data, _ := io.ReadAll(r.Body)
			body = string(data)
			switch r.URL.Path {
			case "/chain/info":
				w.Write([]byte(`{"height": "42"}`))
			case "/empty":
			case "/broken":
				w.Write([]byte(`{"height": `))
			case "/busy":
				w.WriteHeader(http.StatusConflict)
				w.Write([]byte(`{"code": "InvalidArgument", "message": "busy"}`))
			default:
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"code": "ResourceNotFound"}`))
			}
		}))
	defer srv.Close()
	c := NewClient(srv.URL+"/", nil)
	ctx := context.Background()

	var info ResultChainInfo
	require.NoError(t, c.Get(ctx, "/chain/info",
		url.Values{"pageSize": {"10"}}, &info))
	assert.Equal(t, "GET", method)
	assert.Equal(t, "pageSize=10", query)
	assert.EqualValues(t, 42, info.Height)

	require.NoError(t, c.Put(ctx, "/empty", ParamsPayload{Payload: "AB"}, nil))
	assert.Equal(t, "PUT", method)
	assert.JSONEq(t, `{"payload": "AB"}`, body)

	require.NoError(t, c.Post(ctx, "/empty",
		ParamsAddresses{Addresses: []string{}}, &info))

	for _, test := range []struct {
		Name    string
		Path    string
		Code    int
		Message string
		Decode  bool
	}{{
		Name:    "not found",
		Path:    "/missing",
		Code:    404,
		Message: "Not Found",
	}, {
		Name:    "conflict",
		Path:    "/busy",
		Code:    409,
		Message: "Conflict",
	}, {
		Name:    "invalid json",
		Path:    "/broken",
		Code:    200,
		Message: "OK",
		Decode:  true,
	}} {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			err := c.Get(ctx, test.Path, nil, &info)
			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, test.Code, StatusCode(err))
			assert.Equal(t, test.Code == 404, IsNotFound(err))

			var shape map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(err.Error()), &shape))
			assert.EqualValues(t, test.Code, shape["statusCode"])
			assert.Equal(t, test.Message, shape["statusMessage"])
			assert.NotEmpty(t, shape["body"])
			assert.Equal(t, test.Decode, apiErr.Unwrap() != nil)
		})
	}
}

func TestTransportError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	l.Close()

	c := NewClient("http://"+addr, nil)
	err = c.Get(context.Background(), "/node/info", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 0, StatusCode(err))
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.NotEmpty(t, apiErr.StatusMessage)
	var opErr *net.OpError
	assert.True(t, errors.As(err, &opErr))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = c.Get(ctx, "/node/info", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 0, StatusCode(errors.New("other")))
	assert.False(t, IsNotFound(nil))
}
