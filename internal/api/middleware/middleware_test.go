package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type parserMock struct {
	mock.Mock
}

func (m *parserMock) Parse(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

type metricsMock struct {
	mock.Mock
}

func (m *metricsMock) ObserveHTTPRequest(method, path string, status int, seconds float64) {
	m.Called(method, path, status, seconds)
}

func echoProfessional(w http.ResponseWriter, r *http.Request) {
	id, _ := GetProfessionalID(r.Context())
	_, _ = w.Write([]byte(id))
}

func TestAuth(t *testing.T) {
	parser := &parserMock{}
	parser.On("Parse", "good").Return("p-1", nil)
	parser.On("Parse", "bad").Return("", errors.New("expired"))

	handler := Auth(parser)(http.HandlerFunc(echoProfessional))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantBody: "p-1"},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me/schedule", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestGetProfessionalID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetProfessionalID(req.Context())
	assert.False(t, ok)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	metrics := &metricsMock{}
	metrics.On("ObserveHTTPRequest", http.MethodGet, "/professionals/{professionalId}", http.StatusNotFound, mock.AnythingOfType("float64")).Once()

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(metrics))
	r.HandleFunc("/professionals/{professionalId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/professionals/p-1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	metrics.AssertExpectations(t)
}
