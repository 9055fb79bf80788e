package getFeed

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ramblinrecs/internal/http-server/handlers/feed/getFeed/mocks"
	"ramblinrecs/internal/lib/logger/handlers/slogdiscard"
	"ramblinrecs/internal/models"
)

const pageSize = 20

func TestGetFeedHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	testEvents := []models.Event{
		{ID: "e-1", Title: "Hackathon", StartTime: testTime},
		{ID: "e-2", Title: "Concert", StartTime: testTime.Add(24 * time.Hour)},
	}
	testPagination := &models.Pagination{
		CurrentPage:   1,
		TotalPages:    2,
		TotalEvents:   30,
		EventsPerPage: pageSize,
		HasNext:       true,
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(api *mocks.FeedProvider, store *mocks.LocalState)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "First page",
			url:  "/feed",
			mockSetup: func(api *mocks.FeedProvider, store *mocks.LocalState) {
				store.On("UserID").Return("u-1", nil)
				store.On("SavedEventIDs").Return([]string{"e-2"}, nil)
				api.On("Feed", mock.Anything, "u-1", pageSize, 1).
					Return(&models.FeedPage{Events: testEvents, Pagination: testPagination}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp FeedResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Events, 2)
				assert.False(t, resp.Events[0].Saved)
				assert.True(t, resp.Events[1].Saved)
				require.NotNil(t, resp.Pagination)
				assert.True(t, resp.Pagination.HasNext)
				assert.False(t, resp.Pagination.HasPrevious)
			},
		},
		{
			name: "Explicit page",
			url:  "/feed?page=3",
			mockSetup: func(api *mocks.FeedProvider, store *mocks.LocalState) {
				store.On("UserID").Return("u-1", nil)
				store.On("SavedEventIDs").Return([]string{}, nil)
				api.On("Feed", mock.Anything, "u-1", pageSize, 3).
					Return(&models.FeedPage{Events: []models.Event{}}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name: "Search supersedes feed",
			url:  "/feed?q=robotics&page=2",
			mockSetup: func(api *mocks.FeedProvider, store *mocks.LocalState) {
				store.On("UserID").Return("u-1", nil)
				store.On("SavedEventIDs").Return([]string{}, nil)
				api.On("Search", mock.Anything, "robotics", pageSize, "u-1").
					Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp FeedResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Len(t, resp.Events, 2)
				assert.Nil(t, resp.Pagination)
			},
		},
		{
			name: "Whitespace query loads unfiltered feed",
			url:  "/feed?q=%20%20%20",
			mockSetup: func(api *mocks.FeedProvider, store *mocks.LocalState) {
				store.On("UserID").Return("u-1", nil)
				store.On("SavedEventIDs").Return([]string{}, nil)
				api.On("Feed", mock.Anything, "u-1", pageSize, 1).
					Return(&models.FeedPage{Events: testEvents}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name: "No stored user id still loads feed",
			url:  "/feed",
			mockSetup: func(api *mocks.FeedProvider, store *mocks.LocalState) {
				store.On("UserID").Return("", nil)
				store.On("SavedEventIDs").Return([]string{}, nil)
				api.On("Feed", mock.Anything, "", pageSize, 1).
					Return(&models.FeedPage{Events: testEvents}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:           "Invalid page number",
			url:            "/feed?page=zero",
			mockSetup:      func(api *mocks.FeedProvider, store *mocks.LocalState) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid page number"}`,
		},
		{
			name:           "Negative page number",
			url:            "/feed?page=-1",
			mockSetup:      func(api *mocks.FeedProvider, store *mocks.LocalState) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid page number"}`,
		},
		{
			name: "Backend failure",
			url:  "/feed",
			mockSetup: func(api *mocks.FeedProvider, store *mocks.LocalState) {
				store.On("UserID").Return("u-1", nil)
				api.On("Feed", mock.Anything, "u-1", pageSize, 1).
					Return(nil, errors.New("unexpected status: 502 Bad Gateway"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"status":"Error","error":"failed to load feed"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockAPI := mocks.NewFeedProvider(t)
			mockStore := mocks.NewLocalState(t)
			tc.mockSetup(mockAPI, mockStore)

			handler := New(logger, mockAPI, mockStore, pageSize)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestSavedAnnotationSurvivesStorageError(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	mockAPI := mocks.NewFeedProvider(t)
	mockStore := mocks.NewLocalState(t)

	mockStore.On("UserID").Return("u-1", nil)
	mockStore.On("SavedEventIDs").Return(nil, errors.New("disk error"))
	mockAPI.On("Feed", mock.Anything, "u-1", pageSize, 1).
		Return(&models.FeedPage{Events: []models.Event{{ID: "e-1", Title: "Hackathon"}}}, nil)

	handler := New(logger, mockAPI, mockStore, pageSize)

	req := httptest.NewRequest("GET", "/feed", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp FeedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.False(t, resp.Events[0].Saved)
}
