package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/golinks/internal/analytics"
	"github.com/serroba/golinks/internal/handlers"
	"github.com/serroba/golinks/internal/links"
	"github.com/serroba/golinks/internal/messaging"
	"github.com/serroba/golinks/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// noopPublish returns a publish function that always succeeds.
func noopPublish[T any]() messaging.Publish[T] {
	return func(_ *T) error { return nil }
}

// errorPublish returns a publish function that always fails.
func errorPublish[T any](err error) messaging.Publish[T] {
	return func(_ *T) error { return err }
}

// capturePublish returns a publish function that sends events to a channel.
func capturePublish[T any](ch chan *T) messaging.Publish[T] {
	return func(event *T) error {
		ch <- event

		return nil
	}
}

func newTestHandler(s links.Store, publish messaging.Publish[analytics.LinkVisitedEvent]) *handlers.LinkHandler {
	service := links.NewService(s, links.ZeroStats{}, zap.NewNop())

	return handlers.NewLinkHandler(service, publish, zap.NewNop())
}

func upsertRequest(shortcut, url, description string) *handlers.UpsertLinkRequest {
	req := &handlers.UpsertLinkRequest{}
	req.Body.Shortcut = shortcut
	req.Body.URL = url
	req.Body.Description = description

	return req
}

func statusOf(t *testing.T, err error) int {
	t.Helper()

	var se huma.StatusError
	require.ErrorAs(t, err, &se)

	return se.GetStatus()
}

func TestUpsertLink(t *testing.T) {
	t.Run("creates a link with 201", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore, noopPublish[analytics.LinkVisitedEvent]())

		resp, err := handler.UpsertLink(context.Background(), upsertRequest("gh", "https://github.com", "code"))

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.Status)
		assert.True(t, resp.Body.Success)
		assert.Equal(t, "gh", resp.Body.Shortcut)
		assert.Equal(t, "Link created", resp.Body.Message)
	})

	t.Run("updates an existing link with 200 and preserved createdAt", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore, noopPublish[analytics.LinkVisitedEvent]())

		first, err := handler.UpsertLink(context.Background(), upsertRequest("gh", "https://github.com", ""))
		require.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		second, err := handler.UpsertLink(context.Background(), upsertRequest("gh", "https://github.com/serroba", ""))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, second.Status)
		assert.Equal(t, "Link updated", second.Body.Message)
		assert.Equal(t, "https://github.com/serroba", second.Body.URL)
		assert.Equal(t, first.Body.CreatedAt, second.Body.CreatedAt)
		assert.True(t, second.Body.UpdatedAt.After(first.Body.UpdatedAt))
	})

	t.Run("returns 400 on an invalid shortcut", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore, noopPublish[analytics.LinkVisitedEvent]())

		resp, err := handler.UpsertLink(context.Background(), upsertRequest("-bad", "https://github.com", ""))

		assert.Nil(t, resp)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

		keys, listErr := memStore.List(context.Background())
		require.NoError(t, listErr)
		assert.Empty(t, keys)
	})

	t.Run("returns 400 on an invalid url", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore, noopPublish[analytics.LinkVisitedEvent]())

		_, err := handler.UpsertLink(context.Background(), upsertRequest("gh", "ftp://x", ""))

		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
}

func TestGetLink(t *testing.T) {
	t.Run("returns the link with zero-click analytics", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore, noopPublish[analytics.LinkVisitedEvent]())

		_, err := handler.UpsertLink(context.Background(), upsertRequest("gh", "https://github.com", "code"))
		require.NoError(t, err)

		req := &handlers.GetLinkRequest{Shortcut: "GH"}
		resp, err := handler.GetLink(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "gh", resp.Body.Shortcut)
		assert.Equal(t, "https://github.com", resp.Body.URL)
		assert.Equal(t, "gh", resp.Body.Analytics.Shortcut)
		assert.Zero(t, resp.Body.Analytics.TotalClicks)
	})

	t.Run("returns 404 for an unknown shortcut", func(t *testing.T) {
		handler := newTestHandler(store.NewMemoryStore(), noopPublish[analytics.LinkVisitedEvent]())

		_, err := handler.GetLink(context.Background(), &handlers.GetLinkRequest{Shortcut: "nope"})

		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestListLinks(t *testing.T) {
	t.Run("returns every stored link", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore, noopPublish[analytics.LinkVisitedEvent]())

		_, err := handler.UpsertLink(context.Background(), upsertRequest("gh", "https://github.com", ""))
		require.NoError(t, err)
		_, err = handler.UpsertLink(context.Background(), upsertRequest("docs", "https://docs.example.com", ""))
		require.NoError(t, err)

		resp, err := handler.ListLinks(context.Background(), nil)

		require.NoError(t, err)
		assert.Len(t, resp.Body.Links, 2)
	})

	t.Run("returns an empty list for an empty store", func(t *testing.T) {
		handler := newTestHandler(store.NewMemoryStore(), noopPublish[analytics.LinkVisitedEvent]())

		resp, err := handler.ListLinks(context.Background(), nil)

		require.NoError(t, err)
		assert.NotNil(t, resp.Body.Links)
		assert.Empty(t, resp.Body.Links)
	})
}

func TestDeleteLink(t *testing.T) {
	t.Run("deletes an existing link", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore, noopPublish[analytics.LinkVisitedEvent]())

		_, err := handler.UpsertLink(context.Background(), upsertRequest("gh", "https://github.com", ""))
		require.NoError(t, err)

		resp, err := handler.DeleteLink(context.Background(), &handlers.DeleteLinkRequest{Shortcut: "GH"})

		require.NoError(t, err)
		assert.True(t, resp.Body.Success)
		assert.Equal(t, "Link deleted", resp.Body.Message)
		assert.Equal(t, "gh", resp.Body.Shortcut)

		keys, listErr := memStore.List(context.Background())
		require.NoError(t, listErr)
		assert.Empty(t, keys)
	})

	t.Run("returns 404 for an unknown shortcut", func(t *testing.T) {
		handler := newTestHandler(store.NewMemoryStore(), noopPublish[analytics.LinkVisitedEvent]())

		_, err := handler.DeleteLink(context.Background(), &handlers.DeleteLinkRequest{Shortcut: "nope"})

		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestRedirect(t *testing.T) {
	t.Run("redirects to the destination and records one visit", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		events := make(chan *analytics.LinkVisitedEvent, 2)
		handler := newTestHandler(memStore, capturePublish(events))

		_, err := handler.UpsertLink(context.Background(), upsertRequest("gh", "https://github.com", ""))
		require.NoError(t, err)

		ctx := handlers.ContextWithRequestMeta(context.Background(), handlers.RequestMeta{
			Referrer:  "https://example.com",
			UserAgent: "TestAgent/1.0",
			Country:   "NL",
		})

		resp, err := handler.Redirect(ctx, &handlers.RedirectRequest{Shortcut: "GH"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.Status)
		assert.Equal(t, "https://github.com", resp.Location)

		select {
		case event := <-events:
			assert.Equal(t, "gh", event.Shortcut)
			assert.Equal(t, "https://example.com", event.Referrer)
			assert.Equal(t, "TestAgent/1.0", event.UserAgent)
			assert.Equal(t, "NL", event.Country)
			assert.NotEmpty(t, event.ID)
			assert.False(t, event.VisitedAt.IsZero())
		case <-time.After(time.Second):
			t.Fatal("expected a visit event")
		}

		assert.Empty(t, events)
	})

	t.Run("redirects misses to the management page", func(t *testing.T) {
		events := make(chan *analytics.LinkVisitedEvent, 1)
		handler := newTestHandler(store.NewMemoryStore(), capturePublish(events))

		resp, err := handler.Redirect(context.Background(), &handlers.RedirectRequest{Shortcut: "Unknown"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.Status)
		assert.Equal(t, "/_manage?shortcut=unknown", resp.Location)

		time.Sleep(10 * time.Millisecond)
		assert.Empty(t, events)
	})

	t.Run("returns 500 on a corrupt record", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		require.NoError(t, memStore.Put(context.Background(), "bad", []byte("{not json")))
		handler := newTestHandler(memStore, noopPublish[analytics.LinkVisitedEvent]())

		_, err := handler.Redirect(context.Background(), &handlers.RedirectRequest{Shortcut: "bad"})

		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	})

	t.Run("publish failures never fail the redirect", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		handler := newTestHandler(memStore, errorPublish[analytics.LinkVisitedEvent](errors.New("sink down")))

		_, err := handler.UpsertLink(context.Background(), upsertRequest("gh", "https://github.com", ""))
		require.NoError(t, err)

		resp, err := handler.Redirect(context.Background(), &handlers.RedirectRequest{Shortcut: "gh"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.Status)
	})
}
