package utilities

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// RequestOption prepares the simulated gin context before the handler runs.
type RequestOption func(c *gin.Context)

// WithBearer sends token in the Authorization header.
func WithBearer(token string) RequestOption {
	return func(c *gin.Context) {
		c.Request.Header.Set("Authorization", "Bearer "+token)
	}
}

// WithValue stores a context key the way an upstream middleware would,
// e.g. "user" or "claims".
func WithValue(key string, value any) RequestOption {
	return func(c *gin.Context) {
		c.Set(key, value)
	}
}

// SimulateAPICall runs a single gin handler against a JSON request, without a
// router, and decodes the JSON object it wrote. A nil body sends no body.
func SimulateAPICall(
	handlerFunc gin.HandlerFunc,
	route string,
	method string,
	body any,
	opts ...RequestOption,
) (*httptest.ResponseRecorder, map[string]any, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, route, reader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = req
	for _, opt := range opts {
		opt(c)
	}
	handlerFunc(c)

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		return rec, nil, err
	}
	return rec, resp, nil
}
