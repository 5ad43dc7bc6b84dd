// Package handlertest drives gin handlers in-process for tests.
package handlertest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/staff-directory/internal/middleware"
)

// Response is the decoded envelope plus the HTTP status.
type Response struct {
	Code    int
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (r Response) IsSuccess() bool {
	return r.Status == "success"
}

// DecodeData unmarshals the data member into v.
func (r Response) DecodeData(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, v), "data: %s", string(r.Data))
}

// NewEngine returns a gin engine in test mode with the binding validators installed.
func NewEngine(register func(r gin.IRouter)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()

	engine := gin.New()
	register(engine)
	return engine
}

// Do sends a JSON request to h. body may be nil, a string sent verbatim, or a value to marshal.
func Do(t *testing.T, h http.Handler, method, path string, body interface{}, headers ...string) Response {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	resp := Response{Code: rec.Code}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	}
	return resp
}
