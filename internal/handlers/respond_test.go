package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"databridge-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(path string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c, w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestFailUsesTaxonomy(t *testing.T) {
	c, w := testContext("/api/jobs/9")
	fail(c, apperr.New(apperr.NotFound, "Job not found"), "Failed to fetch job")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Job not found", messageOf(t, w))
}

func TestFailHidesInternalDetail(t *testing.T) {
	c, w := testContext("/api/jobs")
	fail(c, errors.New("pq: relation \"jobs\" does not exist"), "Failed to fetch jobs")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch jobs", messageOf(t, w))
}

func TestIDParam(t *testing.T) {
	cases := []struct {
		raw  string
		want uint
		ok   bool
	}{
		{"42", 42, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		c, w := testContext("/api/jobs/" + tc.raw)
		c.Params = gin.Params{{Key: "id", Value: tc.raw}}

		id, ok := idParam(c)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.want, id, tc.raw)
		if !tc.ok {
			assert.Equal(t, http.StatusBadRequest, w.Code, tc.raw)
			assert.Equal(t, "Invalid id", messageOf(t, w))
		}
	}
}
