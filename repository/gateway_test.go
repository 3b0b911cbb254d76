package repository

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bitxorcorp/bitxor-sdk-go/api"
)

// gateway is a fake REST gateway answering "METHOD /path" routes with
// canned JSON bodies and counting every request.
type gateway struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]string
	requests []string
	bodies   map[string]string
}

func newGateway(t *testing.T, routes map[string]string) *gateway {
	g := &gateway{routes: routes, bodies: make(map[string]string)}
	g.Server = httptest.NewServer(http.HandlerFunc(g.serve))
	t.Cleanup(g.Close)
	return g
}

func (g *gateway) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	body, _ := io.ReadAll(r.Body)
	g.mu.Lock()
	g.requests = append(g.requests, key+"?"+r.URL.RawQuery)
	g.bodies[key] = string(body)
	res, ok := g.routes[key]
	g.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"code":"ResourceNotFound","message":"no resource exists with id"}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, res)
}

func (g *gateway) Requests() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.requests...)
}

func (g *gateway) Body(key string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bodies[key]
}

func (g *gateway) Client() *api.Client {
	return api.NewClient(g.URL, nil)
}

func (g *gateway) Set(key, body string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.routes[key] = body
}

// Count returns the number of requests to key, "METHOD /path".
func (g *gateway) Count(key string) int {
	n := 0
	for _, r := range g.Requests() {
		if len(r) > len(key) && r[:len(key)+1] == key+"?" {
			n++
		}
	}
	return n
}
