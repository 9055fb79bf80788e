package recsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramblinrecs/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(srv.URL, 5*time.Second)
}

func TestFeedEnvelope(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/feed", r.URL.Path)
		assert.Equal(t, "u-1", r.URL.Query().Get("user_id"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Write([]byte(`{
			"events": [
				{"id": "e-1", "title": "Hackathon", "start_time": "2025-03-01T09:00:00Z"},
				{"id": "e-2", "title": "Concert", "start_time": "2025-03-02T10:00:00Z"}
			],
			"pagination": {
				"current_page": 2,
				"total_pages": 3,
				"total_events": 49,
				"events_per_page": 20,
				"has_next": true,
				"has_previous": true
			}
		}`))
	})

	feed, err := client.Feed(context.Background(), "u-1", 20, 2)
	require.NoError(t, err)

	require.Len(t, feed.Events, 2)
	assert.Equal(t, "e-1", feed.Events[0].ID)
	assert.Equal(t, "Hackathon", feed.Events[0].Title)

	require.NotNil(t, feed.Pagination)
	assert.Equal(t, 2, feed.Pagination.CurrentPage)
	assert.True(t, feed.Pagination.HasNext)
	assert.True(t, feed.Pagination.HasPrevious)
}

func TestFeedBareArray(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": "e-1", "title": "Hackathon", "start_time": "2025-03-01T09:00:00Z"}]`))
	})

	feed, err := client.Feed(context.Background(), "", 20, 1)
	require.NoError(t, err)

	require.Len(t, feed.Events, 1)
	assert.Equal(t, "e-1", feed.Events[0].ID)
	assert.Nil(t, feed.Pagination)
}

func TestFeedPaginationFlags(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		page        int
		totalPages  int
		hasNext     bool
		hasPrevious bool
	}{
		{name: "First page", page: 1, totalPages: 3, hasNext: true, hasPrevious: false},
		{name: "Middle page", page: 2, totalPages: 3, hasNext: true, hasPrevious: true},
		{name: "Last page", page: 3, totalPages: 3, hasNext: false, hasPrevious: true},
		{name: "Single page", page: 1, totalPages: 1, hasNext: false, hasPrevious: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				page := r.URL.Query().Get("page")
				assert.NotEmpty(t, page)

				w.Write([]byte(`{
					"events": [],
					"pagination": {
						"current_page": ` + strconv.Itoa(tc.page) + `,
						"total_pages": ` + strconv.Itoa(tc.totalPages) + `,
						"total_events": 0,
						"events_per_page": 20,
						"has_next": ` + boolStr(tc.page < tc.totalPages) + `,
						"has_previous": ` + boolStr(tc.page > 1) + `
					}
				}`))
			})

			feed, err := client.Feed(context.Background(), "u-1", 20, tc.page)
			require.NoError(t, err)
			require.NotNil(t, feed.Pagination)

			assert.Equal(t, tc.hasNext, feed.Pagination.HasNext)
			assert.Equal(t, tc.hasPrevious, feed.Pagination.HasPrevious)
		})
	}
}

func TestBootstrap(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/bootstrap", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Write([]byte(`{"id": "u-42", "email": "buzz@gatech.edu", "interests": ["tech"]}`))
	})

	user, err := client.Bootstrap(context.Background(), "buzz@gatech.edu", "", []string{"tech"})
	require.NoError(t, err)

	assert.Equal(t, "u-42", user.ID)
	assert.Equal(t, "buzz@gatech.edu", user.Email)
	assert.Equal(t, []string{"tech"}, user.Interests)
}

func TestNon2xxSurfacesStatusError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Bootstrap(context.Background(), "buzz@gatech.edu", "", nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Contains(t, statusErr.Error(), "500")
}

func TestDeleteJSON(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "e-1", r.URL.Query().Get("event_id"))

		w.Write([]byte(`{"message": "removed"}`))
	})

	err := client.DeleteJSON(context.Background(), "/user/unsave-event", map[string][]string{
		"event_id": {"e-1"},
	})
	require.NoError(t, err)
}

func TestSendFeedback(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/feedback", r.URL.Path)
		w.Write([]byte(`{"ok": true}`))
	})

	err := client.SendFeedback(context.Background(), models.Feedback{
		UserID:  "u-1",
		EventID: "e-1",
		Clicked: true,
	})
	require.NoError(t, err)
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/metrics", r.URL.Path)
		w.Write([]byte(`{"window": "last_24h", "clicks": 3, "saves": 2, "rsvps": 1, "interactions": 6}`))
	})

	m, err := client.Metrics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "last_24h", m.Window)
	assert.Equal(t, 3, m.Clicks)
	assert.Equal(t, 6, m.Interactions)
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
