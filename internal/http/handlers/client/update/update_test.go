package update

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/gym-client-manager/internal/lib/displaydate"
	"github.com/magabrotheeeer/gym-client-manager/internal/models"
	services "github.com/magabrotheeeer/gym-client-manager/internal/services/client"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, req models.DummyUpdateClient, id int) (int, error) {
	args := m.Called(ctx, req, id)
	return args.Int(0), args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		url            string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление клиента",
			url:  "/clients/123",
			requestBody: models.DummyUpdateClient{
				Name:      "Maria",
				Payment:   "Anual",
				StartDate: "15/03/2022",
			},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, mock.AnythingOfType("models.DummyUpdateClient"), 123).
					Return(1, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"updated_count":1`,
		},
		{
			name:        "частичное обновление с пустыми полями",
			url:         "/clients/123",
			requestBody: models.DummyUpdateClient{},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, models.DummyUpdateClient{}, 123).
					Return(1, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"updated_count":1`,
		},
		{
			name:           "некорректный JSON",
			url:            "/clients/123",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "некорректный id в url",
			url:            "/clients/abc",
			requestBody:    models.DummyUpdateClient{Name: "Maria"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode id from url"}`,
		},
		{
			name:        "клиент не найден",
			url:         "/clients/999",
			requestBody: models.DummyUpdateClient{Name: "Maria"},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, mock.AnythingOfType("models.DummyUpdateClient"), 999).
					Return(0, services.ErrClientNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `client not found`,
		},
		{
			name:        "некорректная дата начала",
			url:         "/clients/123",
			requestBody: models.DummyUpdateClient{StartDate: "30/02/2022"},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, mock.AnythingOfType("models.DummyUpdateClient"), 123).
					Return(0, displaydate.ErrInvalidDate)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `invalid start date`,
		},
		{
			name:        "ошибка сервиса",
			url:         "/clients/123",
			requestBody: models.DummyUpdateClient{Name: "Maria"},
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, mock.AnythingOfType("models.DummyUpdateClient"), 123).
					Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not update client`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPut, tt.url, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", strings.TrimPrefix(tt.url, "/clients/"))
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
