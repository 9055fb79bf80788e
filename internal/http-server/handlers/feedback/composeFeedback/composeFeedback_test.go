package composeFeedback

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramblinrecs/internal/lib/logger/handlers/slogdiscard"
)

func TestComposeFeedbackHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			requestBody: `{
				"name": "Buzz",
				"email": "buzz@gatech.edu",
				"category": "Bug",
				"subject": "Feed is empty",
				"message": "Nothing loads on page two"
			}`,
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp FeedbackResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				assert.True(t, strings.HasPrefix(resp.MailtoLink, "mailto:feedback@ramblinrecs.app?"))
				assert.Contains(t, resp.MailtoLink, "subject=%5BBug%5D%20Feed%20is%20empty")
				assert.Contains(t, resp.MailtoLink, "buzz%40gatech.edu")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `oops`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing required fields",
			requestBody:    `{"name": "Buzz"}`,
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Email")
				assert.Contains(t, body, "Subject")
				assert.Contains(t, body, "Message")
			},
		},
		{
			name: "Malformed email",
			requestBody: `{
				"email": "not-an-email",
				"subject": "Hi",
				"message": "Hello"
			}`,
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Email")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := New(logger, "feedback@ramblinrecs.app")

			req, err := http.NewRequest("POST", "/feedback", bytes.NewBufferString(tc.requestBody))
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
