package http_test

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/batch-service/internal/domain/dto"
	"github.com/guttosm/batch-service/internal/domain/model"
	internalhttp "github.com/guttosm/batch-service/internal/http"
	"github.com/guttosm/batch-service/internal/mocks"
	"github.com/guttosm/batch-service/internal/service"
)

func setupTestRouter(batchService service.BatchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	internalhttp.NewBatchRoutes(batchService).Register(api)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(nethttp.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBatchHandler_CreateBatch(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockBatchService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful assignment",
			body: dto.CreateBatchRequest{
				PackList:  []int64{10, 11},
				UserID:    1,
				SystemID:  3,
				BatchName: "Morning run",
				CompanyID: 7,
			},
			setupMock: func(m *mocks.MockBatchService) {
				m.On("CreateBatch", mock.Anything, mock.Anything).
					Return(&dto.BatchResult{BatchID: 42, BatchStatus: "PENDING"}, nil)
			},
			expectedStatus: nethttp.StatusOK,
		},
		{
			name:           "malformed body",
			body:           map[string]interface{}{"pack_list": "not-a-list"},
			setupMock:      func(m *mocks.MockBatchService) {},
			expectedStatus: nethttp.StatusBadRequest,
			expectedError:  "invalid_request",
		},
		{
			name: "validation rejection",
			body: dto.CreateBatchRequest{UserID: 1, SystemID: 3},
			setupMock: func(m *mocks.MockBatchService) {
				m.On("CreateBatch", mock.Anything, mock.Anything).
					Return(nil, service.NewBatchError(service.ErrCodeValidation, "batch_name: is required"))
			},
			expectedStatus: nethttp.StatusBadRequest,
			expectedError:  "invalid_request",
		},
		{
			name: "already imported conflict",
			body: dto.CreateBatchRequest{UserID: 1, SystemID: 3, BatchID: 5, Status: model.StatusPending},
			setupMock: func(m *mocks.MockBatchService) {
				m.On("CreateBatch", mock.Anything, mock.Anything).
					Return(nil, service.NewBatchError(service.ErrCodeAlreadyImported, "Already Imported."))
			},
			expectedStatus: nethttp.StatusConflict,
			expectedError:  "conflict",
		},
		{
			name: "unknown batch id",
			body: dto.CreateBatchRequest{UserID: 1, SystemID: 3, BatchID: 404, BatchName: "x"},
			setupMock: func(m *mocks.MockBatchService) {
				m.On("CreateBatch", mock.Anything, mock.Anything).
					Return(nil, service.NewBatchError(service.ErrCodeNotFound, "the parameter batch_id does not exist"))
			},
			expectedStatus: nethttp.StatusNotFound,
			expectedError:  "not_found",
		},
		{
			name: "persistence failure",
			body: dto.CreateBatchRequest{UserID: 1, SystemID: 3, BatchName: "x"},
			setupMock: func(m *mocks.MockBatchService) {
				m.On("CreateBatch", mock.Anything, mock.Anything).
					Return(nil, service.NewBatchError(service.ErrCodeInternal, "batch operation failed"))
			},
			expectedStatus: nethttp.StatusInternalServerError,
			expectedError:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(mocks.MockBatchService)
			tt.setupMock(mockService)
			router := setupTestRouter(mockService)

			w := postJSON(t, router, "/api/batches", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var resp dto.ErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp dto.SuccessResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotNil(t, resp.Data)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestBatchHandler_CreateMultiBatch(t *testing.T) {
	start := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	mockService := new(mocks.MockBatchService)
	mockService.On("CreateMultiBatch", mock.Anything, mock.MatchedBy(func(req *dto.CreateMultiBatchRequest) bool {
		return req.SystemID == 3 && req.ScheduledStartTime != nil && req.EstimatedProcessingTime == 4.5
	})).Return(&dto.BatchResult{BatchID: 42, BatchStatus: "PENDING"}, nil)
	router := setupTestRouter(mockService)

	w := postJSON(t, router, "/api/batches/multi", dto.CreateMultiBatchRequest{
		PackList:                []int64{10, 11},
		UserID:                  1,
		SystemID:                3,
		BatchName:               "Scheduled run",
		CompanyID:               7,
		ScheduledStartTime:      &start,
		EstimatedProcessingTime: 4.5,
	})

	assert.Equal(t, nethttp.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestBatchHandler_CreateBatchesForSystems(t *testing.T) {
	start := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mockService := new(mocks.MockBatchService)
		mockService.On("CreateBatchesForSystems", mock.Anything, mock.Anything).
			Return([]dto.BatchResult{
				{BatchID: 101, BatchStatus: "PENDING"},
				{BatchID: 102, BatchStatus: "PENDING"},
			}, nil)
		router := setupTestRouter(mockService)

		w := postJSON(t, router, "/api/systems/batches", []dto.CreateMultiBatchRequest{
			{PackList: []int64{10}, UserID: 1, SystemID: 3, BatchName: "a", CompanyID: 7, ScheduledStartTime: &start},
			{PackList: []int64{20}, UserID: 1, SystemID: 4, BatchName: "b", CompanyID: 7, ScheduledStartTime: &start},
		})

		assert.Equal(t, nethttp.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("empty list rejected", func(t *testing.T) {
		mockService := new(mocks.MockBatchService)
		router := setupTestRouter(mockService)

		w := postJSON(t, router, "/api/systems/batches", []dto.CreateMultiBatchRequest{})

		assert.Equal(t, nethttp.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "CreateBatchesForSystems", mock.Anything, mock.Anything)
	})
}

func TestBatchHandler_GetSystemPacks(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := new(mocks.MockBatchService)
		mockService.On("GetPacksByBatchIDs", mock.Anything, int64(3)).
			Return(map[int64]*model.BatchPackGroup{
				1: {BatchID: 1, EstimatedHours: 2.5, Packs: []model.PackSummary{{ID: 10, OrderNo: 1}}},
			}, nil)
		router := setupTestRouter(mockService)

		req := httptest.NewRequest(nethttp.MethodGet, "/api/systems/3/packs", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("non numeric system id", func(t *testing.T) {
		mockService := new(mocks.MockBatchService)
		router := setupTestRouter(mockService)

		req := httptest.NewRequest(nethttp.MethodGet, "/api/systems/abc/packs", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, nethttp.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetPacksByBatchIDs", mock.Anything, mock.Anything)
	})
}

func TestBatchHandler_GetSystemStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockService := new(mocks.MockBatchService)
		mockService.On("GetSystemStatus", mock.Anything, []int64{1, 2}).
			Return(map[int64]bool{1: true, 2: false}, nil)
		router := setupTestRouter(mockService)

		w := postJSON(t, router, "/api/systems/status", dto.SystemStatusRequest{SystemIDs: []int64{1, 2}})

		assert.Equal(t, nethttp.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("missing system ids", func(t *testing.T) {
		mockService := new(mocks.MockBatchService)
		router := setupTestRouter(mockService)

		w := postJSON(t, router, "/api/systems/status", map[string]interface{}{})

		assert.Equal(t, nethttp.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetSystemStatus", mock.Anything, mock.Anything)
	})
}
