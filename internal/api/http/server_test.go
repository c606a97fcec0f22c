package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_RequiresFiberAndLogger(t *testing.T) {
	logger, _ := logtest.NewNullLogger()

	_, err := NewServer(WithLogger(logger))
	assert.Error(t, err)

	_, err = NewServer(WithFiber(NewFiber(1)))
	assert.Error(t, err)

	_, err = NewServer(WithFiber(NewFiber(1)), WithLogger(logger), WithHandler(nil))
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	a := newTestApp(t, newPipeline(nil, nil))

	resp, err := a.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Server is Healthy!", body["message"])
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	a := newTestApp(t, newPipeline(nil, nil))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://example.com")

	resp, err := a.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	a := newTestApp(t, newPipeline(nil, nil))

	resp, err := a.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(RequestIDKey), 26)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "given-id")
	resp, err = a.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "given-id", resp.Header.Get(RequestIDKey))
}

func TestUnknownRouteReturnsJSON(t *testing.T) {
	a := newTestApp(t, newPipeline(nil, nil))

	resp, err := a.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var out ErrorResponse
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}
