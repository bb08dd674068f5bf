package memoryapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bnema/memory-garden/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientListDecodesMemories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/memories", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("user_id"))
		_, _ = fmt.Fprint(w, `[{"id":1,"user_id":2,"title":"Beach","created_at":"2025-08-01T10:00:00Z","emotion":"joy","media_path":"beach.jpg","media_type":"image"},{"id":2,"user_id":2,"title":"Pond","model_path":"/models/lotus_flower_by_geometry_nodes.glb","position":[1,0,2]}]`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL+"/api/", server.Client())
	require.NoError(t, err)

	memories, err := client.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, memories, 2)
	assert.Equal(t, domain.MemoryID(1), memories[0].ID)
	assert.Equal(t, "2025-08-01", memories[0].Date())
	assert.Equal(t, "beach.jpg", memories[0].MediaPath)
	require.NotNil(t, memories[1].Position)
	assert.Equal(t, domain.Vec3{1, 0, 2}, *memories[1].Position)
	assert.Equal(t, domain.LotusModelPath, memories[1].ModelPath)
}

func TestClientSearchSendsOnlyPresentFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/memories/search", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "7", query.Get("user_id"))
		assert.Equal(t, "beach", query.Get("q"))
		assert.Equal(t, "2025-08-01", query.Get("date_from"))
		assert.False(t, query.Has("emotion"))
		assert.False(t, query.Has("date_to"))
		_, _ = fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)

	memories, err := client.Search(context.Background(), domain.SearchQuery{UserID: 7, Text: " beach ", DateFrom: "2025-08-01"})
	require.NoError(t, err)
	assert.Empty(t, memories)
}

func TestClientListWrapsStatusErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, `{"detail":"boom"}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)

	_, err = client.List(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "boom")
}

func TestClientListWrapsDecodeErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"not":"an array"}`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)

	_, err = client.List(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Contains(t, err.Error(), "decode payload")
}

func TestNewClientRejectsEmptyBaseURL(t *testing.T) {
	_, err := NewClient("  ", nil)
	assert.ErrorContains(t, err, "api base url is empty")
}

func TestClientListHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.List(ctx, 1)
	require.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorIs(t, err, context.Canceled)
}
