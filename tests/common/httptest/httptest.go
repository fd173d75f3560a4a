//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const sharerUserIDHeader = "X-Sharer-User-Id"

// PerformRequest sends a JSON request acting as actorID. Zero leaves the actor header unset.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, actorID int64) *httptest.ResponseRecorder {
	t.Helper()

	req := newRequest(t, method, path, body)
	if actorID != 0 {
		req.Header.Set(sharerUserIDHeader, strconv.FormatInt(actorID, 10))
	}
	return serve(router, req)
}

// PerformRequestWithToken sends a JSON request with a bearer token
func PerformRequestWithToken(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	req := newRequest(t, method, path, body)
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	return serve(router, req)
}

func PerformRequestWithCookies(t *testing.T, router *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := newRequest(t, method, path, body)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return serve(router, req)
}

// PerformRawRequest sends body verbatim, for malformed payload cases.
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path, body string, actorID int64) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if actorID != 0 {
		req.Header.Set(sharerUserIDHeader, strconv.FormatInt(actorID, 10))
	}
	return serve(router, req)
}

// extracts specific cookie by name from response
func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func newRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
