package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeforge/piston"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExecuteRouter(client *piston.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/execute", Execute(client))
	r.GET("/api/execute/runtimes", ListRuntimes(client))
	return r
}

func TestExecuteHandler_MissingFields(t *testing.T) {
	r := newExecuteRouter(piston.NewClient(""))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/execute", strings.NewReader(`{"language":"python"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Language and code are required", body["error"])
}

func TestExecuteHandler_ReturnsNormalizedResult(t *testing.T) {
	runner := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"run": map[string]interface{}{"stdout": "hi\n", "stderr": "", "code": 0},
		})
	}))
	defer runner.Close()

	r := newExecuteRouter(piston.NewClient(runner.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/execute",
		strings.NewReader(`{"language":"python","code":"print('hi')"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result piston.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "hi", result.Stdout)
	assert.Equal(t, 0, result.ExitCode)
}

func TestExecuteHandler_UpstreamFailureStill200(t *testing.T) {
	// The runner being down is domain data for the editor, not a fault.
	runner := httptest.NewServer(http.NotFoundHandler())
	runner.Close()

	r := newExecuteRouter(piston.NewClient(runner.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/execute",
		strings.NewReader(`{"language":"python","code":"pass"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result piston.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, 1, result.ExitCode)
}

func TestRuntimesHandler_Unreachable(t *testing.T) {
	runner := httptest.NewServer(http.NotFoundHandler())
	runner.Close()

	r := newExecuteRouter(piston.NewClient(runner.URL))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/execute/runtimes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}
