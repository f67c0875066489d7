package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "records metrics for unmatched route",
			path:           "/missing",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRecordBatchAssignment(t *testing.T) {
	RecordBatchAssignment("single", "ok")
	RecordBatchAssignment("multi", "error")
	RecordBatchAssignment("single", "status_update")
}

func TestRecordEstimation(t *testing.T) {
	RecordEstimation(10 * time.Millisecond)
	RecordEstimation(250 * time.Millisecond)
}

func TestRecordInventoryDispatch(t *testing.T) {
	RecordInventoryDispatch("enqueued")
	RecordInventoryDispatch("done")
	RecordInventoryDispatch("dropped")
	RecordInventoryDispatch("failed")
}
