package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientExists(t *testing.T) {
	var method string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/gone":
			w.WriteHeader(http.StatusNotFound)
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	c := New(time.Second)
	ctx := context.Background()

	assert.True(t, c.Exists(ctx, server.URL+"/ok"))
	assert.Equal(t, http.MethodHead, method, "probe must use HEAD")
	assert.False(t, c.Exists(ctx, server.URL+"/gone"))
	assert.False(t, c.Exists(ctx, server.URL+"/broken"))
}

func TestClientExistsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	c := New(time.Second)
	assert.False(t, c.Exists(context.Background(), server.URL+"/ok"))
}

func TestClientExistsMalformedURL(t *testing.T) {
	c := New(time.Second)
	assert.False(t, c.Exists(context.Background(), "://not-a-url"))
}

func TestClientExistsCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(time.Second)
	assert.False(t, c.Exists(ctx, server.URL+"/ok"))
}
