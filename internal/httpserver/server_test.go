package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"go-booking-cache/internal/cache"
	"go-booking-cache/internal/interfaces/mock"
	"go-booking-cache/internal/models"
	"go-booking-cache/internal/remote"
	"go-booking-cache/internal/timepolicy"
)

const testNow = 1_700_000_000

func setupServer(t *testing.T) (*Server, *mock.MockBookingRetriever) {
	ctrl := gomock.NewController(t)
	retriever := mock.NewMockBookingRetriever(ctrl)
	policy := timepolicy.New(func() time.Time { return time.Unix(testNow, 0) })

	return NewServer(retriever, policy, zaptest.NewLogger(t)), retriever
}

func testResult(source models.Source, expiry int64, expired bool) *models.RetrievalResult {
	return &models.RetrievalResult{
		Data: models.BookingRecord{
			ShipReference: "ABCDEF",
			ShipToken:     "AAAABBBCCCCDDD",
			ExpiryTime:    models.Timestamp(expiry),
			Duration:      2430,
			Segments:      []models.Segment{{ID: 1}, {ID: 2}},
		},
		Source:    source,
		IsExpired: expired,
	}
}

func serve(server *Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	server.createRouter().ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) BookingResponse {
	t.Helper()
	var response BookingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	return response
}

func TestServer_HandleGetBooking(t *testing.T) {
	tests := []struct {
		name                  string
		result                *models.RetrievalResult
		err                   error
		expectedStatus        int
		expectedSource        models.Source
		expectedExpired       bool
		expectedTimeRemaining string
	}{
		{
			name:                  "fresh from cache",
			result:                testResult(models.SourceCache, testNow+5400, false),
			expectedStatus:        http.StatusOK,
			expectedSource:        models.SourceCache,
			expectedTimeRemaining: "1h 30m remaining",
		},
		{
			name:                  "fetched from service",
			result:                testResult(models.SourceService, testNow+125, false),
			expectedStatus:        http.StatusOK,
			expectedSource:        models.SourceService,
			expectedTimeRemaining: "2m 5s remaining",
		},
		{
			name:                  "fetched but expired",
			result:                testResult(models.SourceService, testNow-10, true),
			expectedStatus:        http.StatusOK,
			expectedSource:        models.SourceService,
			expectedExpired:       true,
			expectedTimeRemaining: "Expired",
		},
		{
			name:           "fetch failed",
			err:            fmt.Errorf("%w: connection refused", remote.ErrFetch),
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, retriever := setupServer(t)
			retriever.EXPECT().GetBooking(gomock.Any(), false).Return(tt.result, tt.err)

			w := serve(server, http.MethodGet, "/booking")

			if w.Code != tt.expectedStatus {
				t.Errorf("GET /booking status = %v, want %v", w.Code, tt.expectedStatus)
			}

			response := decodeResponse(t, w)
			if tt.expectedStatus != http.StatusOK {
				if response.Success {
					t.Errorf("GET /booking Success = true, want false")
				}
				if response.Error != noDataMessage {
					t.Errorf("GET /booking Error = %q, want %q", response.Error, noDataMessage)
				}
				if response.Data != nil {
					t.Errorf("GET /booking Data = %v, want nil", response.Data)
				}
				return
			}

			if !response.Success {
				t.Errorf("GET /booking Success = false, want true")
			}
			if response.Source != tt.expectedSource {
				t.Errorf("GET /booking Source = %v, want %v", response.Source, tt.expectedSource)
			}
			if response.IsExpired != tt.expectedExpired {
				t.Errorf("GET /booking IsExpired = %v, want %v", response.IsExpired, tt.expectedExpired)
			}
			if response.TimeRemaining != tt.expectedTimeRemaining {
				t.Errorf("GET /booking TimeRemaining = %q, want %q", response.TimeRemaining, tt.expectedTimeRemaining)
			}
			if response.Data == nil || response.Data.ShipReference != "ABCDEF" {
				t.Errorf("GET /booking Data = %v, want booking ABCDEF", response.Data)
			}
		})
	}
}

func TestServer_HandleRefreshBooking(t *testing.T) {
	server, retriever := setupServer(t)
	retriever.EXPECT().GetBooking(gomock.Any(), gomock.Any()).Times(0)
	retriever.EXPECT().RefreshBooking(gomock.Any()).Return(testResult(models.SourceService, testNow+30, false), nil)

	w := serve(server, http.MethodPost, "/booking/refresh")

	if w.Code != http.StatusOK {
		t.Fatalf("POST /booking/refresh status = %v, want %v", w.Code, http.StatusOK)
	}

	response := decodeResponse(t, w)
	if response.Source != models.SourceService {
		t.Errorf("POST /booking/refresh Source = %v, want %v", response.Source, models.SourceService)
	}
	if response.TimeRemaining != "30s remaining" {
		t.Errorf("POST /booking/refresh TimeRemaining = %q, want %q", response.TimeRemaining, "30s remaining")
	}
}

func TestServer_HandleRefreshBooking_Failure(t *testing.T) {
	server, retriever := setupServer(t)
	retriever.EXPECT().RefreshBooking(gomock.Any()).Return(nil, remote.ErrFetch)

	w := serve(server, http.MethodPost, "/booking/refresh")

	if w.Code != http.StatusBadGateway {
		t.Errorf("POST /booking/refresh status = %v, want %v", w.Code, http.StatusBadGateway)
	}
}

func TestServer_HandleClearCache(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "cleared", expectedStatus: http.StatusOK},
		{
			name:           "clear failed",
			err:            fmt.Errorf("%w: %w", cache.ErrClear, errors.New("read-only")),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, retriever := setupServer(t)
			retriever.EXPECT().ClearCache(gomock.Any()).Return(tt.err)

			w := serve(server, http.MethodDelete, "/booking/cache")

			if w.Code != tt.expectedStatus {
				t.Errorf("DELETE /booking/cache status = %v, want %v", w.Code, tt.expectedStatus)
			}

			response := decodeResponse(t, w)
			if response.Success != (tt.err == nil) {
				t.Errorf("DELETE /booking/cache Success = %v, want %v", response.Success, tt.err == nil)
			}
		})
	}
}

func TestServer_MethodNotAllowed(t *testing.T) {
	server, _ := setupServer(t)

	w := serve(server, http.MethodPost, "/booking")

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /booking status = %v, want %v", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestServer_HandleHealth(t *testing.T) {
	server, _ := setupServer(t)

	w := serve(server, http.MethodGet, "/health")

	if w.Code != http.StatusOK {
		t.Fatalf("GET /health status = %v, want %v", w.Code, http.StatusOK)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("GET /health status field = %v, want healthy", response["status"])
	}
}

func TestServer_Metrics(t *testing.T) {
	server, _ := setupServer(t)

	w := serve(server, http.MethodGet, "/metrics")

	if w.Code != http.StatusOK {
		t.Errorf("GET /metrics status = %v, want %v", w.Code, http.StatusOK)
	}
}

func TestServer_RequestID(t *testing.T) {
	server, _ := setupServer(t)

	t.Run("generated", func(t *testing.T) {
		w := serve(server, http.MethodGet, "/health")

		if _, err := uuid.Parse(w.Header().Get(RequestIDHeader)); err != nil {
			t.Errorf("%s = %q, want a UUID", RequestIDHeader, w.Header().Get(RequestIDHeader))
		}
	})

	t.Run("propagated", func(t *testing.T) {
		requestID := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(RequestIDHeader, requestID)
		w := httptest.NewRecorder()

		server.createRouter().ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != requestID {
			t.Errorf("%s = %q, want %q", RequestIDHeader, got, requestID)
		}
	})

	t.Run("malformed replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")
		w := httptest.NewRecorder()

		server.createRouter().ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got == "not-a-uuid" {
			t.Errorf("%s kept malformed value", RequestIDHeader)
		}
	})
}

func TestServer_StopBeforeStart(t *testing.T) {
	server, _ := setupServer(t)

	if err := server.Stop(context.Background()); err != nil {
		t.Errorf("Stop() error = %v, want nil", err)
	}
}
