package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock window handler for testing
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) ShowWindow(w http.ResponseWriter, r *http.Request) {
	m.Called(w, r)
	w.WriteHeader(http.StatusOK)
}

func (m *MockHandler) GenerateClick(w http.ResponseWriter, r *http.Request) {
	m.Called(w, r)
	w.WriteHeader(http.StatusOK)
}

func (m *MockHandler) ServePreview(w http.ResponseWriter, r *http.Request) {
	m.Called(w, r)
	w.WriteHeader(http.StatusOK)
}

func newTestRouter(handler WindowHandler) *Router {
	router := NewRouter(handler)
	router.SetupRoutes()
	return router
}

func TestNewRouter(t *testing.T) {
	// Arrange
	mockHandler := new(MockHandler)

	// Act
	router := NewRouter(mockHandler)

	// Assert
	assert.NotNil(t, router)
	assert.Equal(t, mockHandler, router.handler)
	assert.NotNil(t, router.router)
}

func TestRouter_Healthcheck(t *testing.T) {
	// Arrange
	router := newTestRouter(new(MockHandler))
	req := httptest.NewRequest(http.MethodGet, constant.RouteHealthcheck, nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, constant.MsgHealthy, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(constant.HeaderRequestID))
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		target string
	}{
		{name: "window", method: http.MethodGet, path: "/", target: "ShowWindow"},
		{name: "generate", method: http.MethodPost, path: "/generate", target: "GenerateClick"},
		{name: "preview", method: http.MethodGet, path: "/preview/example.com", target: "ServePreview"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockHandler := new(MockHandler)
			mockHandler.On(tt.target, mock.Anything, mock.Anything).Return()
			router := newTestRouter(mockHandler)
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Host = "127.0.0.1:8765"
			w := httptest.NewRecorder()

			// Act
			router.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, http.StatusOK, w.Code)
			mockHandler.AssertExpectations(t)
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	// Arrange
	mockHandler := new(MockHandler)
	router := newTestRouter(mockHandler)
	req := httptest.NewRequest(http.MethodGet, constant.RouteGenerate, nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	mockHandler.AssertNotCalled(t, "GenerateClick", mock.Anything, mock.Anything)
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	// Arrange
	router := newTestRouter(&panicHandler{})
	req := httptest.NewRequest(http.MethodGet, constant.RouteWindow, nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

type panicHandler struct{}

func (panicHandler) ShowWindow(http.ResponseWriter, *http.Request)    { panic("boom") }
func (panicHandler) GenerateClick(http.ResponseWriter, *http.Request) {}
func (panicHandler) ServePreview(http.ResponseWriter, *http.Request)  {}

func TestRouter_GenerateRejectsOtherOrigins(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		headers map[string]string
		want    int
	}{
		{
			name:    "cross-site form post",
			host:    "127.0.0.1:8765",
			headers: map[string]string{"Origin": "https://evil.io", "Sec-Fetch-Site": "cross-site"},
			want:    http.StatusForbidden,
		},
		{
			name:    "foreign origin without fetch metadata",
			host:    "127.0.0.1:8765",
			headers: map[string]string{"Origin": "https://evil.io"},
			want:    http.StatusForbidden,
		},
		{
			name:    "opaque origin",
			host:    "127.0.0.1:8765",
			headers: map[string]string{"Origin": "null"},
			want:    http.StatusForbidden,
		},
		{
			name:    "rebound host name",
			host:    "evil.io:8765",
			headers: map[string]string{"Origin": "http://evil.io:8765", "Sec-Fetch-Site": "same-origin"},
			want:    http.StatusForbidden,
		},
		{
			name:    "window submit",
			host:    "127.0.0.1:8765",
			headers: map[string]string{"Origin": "http://127.0.0.1:8765", "Sec-Fetch-Site": "same-origin"},
			want:    http.StatusOK,
		},
		{
			name:    "localhost submit",
			host:    "localhost:8765",
			headers: map[string]string{"Origin": "http://localhost:8765"},
			want:    http.StatusOK,
		},
		{
			name: "command line client",
			host: "[::1]:8765",
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockHandler := new(MockHandler)
			mockHandler.On("GenerateClick", mock.Anything, mock.Anything).Return()
			router := newTestRouter(mockHandler)
			req := httptest.NewRequest(http.MethodPost, constant.RouteGenerate, nil)
			req.Host = tt.host
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			// Act
			router.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusForbidden {
				mockHandler.AssertNotCalled(t, "GenerateClick", mock.Anything, mock.Anything)
			} else {
				mockHandler.AssertExpectations(t)
			}
		})
	}
}
