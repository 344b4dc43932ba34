package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *fakeCatalog) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, fc, _, _ := newFakeEnv()
	r := gin.New()
	NewHTTPHandler(svc, nil).RegisterRoutes(r)
	return r, fc
}

func doJSON(r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBookingEndpoint(t *testing.T) {
	r, fc := newTestRouter(t)
	seedService(fc)

	body := []byte(`{"service":{"id":"svc-1"},"vehicle":{"plateNumber":"KBD123","type":"SUV"},"bookingTime":"2025-01-20T10:00:00Z"}`)
	w := doJSON(r, http.MethodPost, "/api/booking/create", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, StatusPending, created.Status)
	assert.Nil(t, created.Rating)
	// 响应里 service/vehicle 整体展开
	assert.Equal(t, "Full Wash", created.Service.Name)
	assert.Equal(t, "KBD123", created.Vehicle.PlateNumber)
}

func TestCreateBookingEndpointErrors(t *testing.T) {
	r, fc := newTestRouter(t)
	seedService(fc)

	tests := []struct {
		description string
		body        string
		wantCode    int
	}{
		{"malformed json", `{"service":`, http.StatusBadRequest},
		{"missing service id", `{"vehicle":{"plateNumber":"KBD123"}}`, http.StatusBadRequest},
		{"missing vehicle", `{"service":{"id":"svc-1"}}`, http.StatusBadRequest},
		{"no vehicle id or plate", `{"service":{"id":"svc-1"},"vehicle":{"type":"SUV"}}`, http.StatusBadRequest},
		{"unknown service", `{"service":{"id":"nope"},"vehicle":{"plateNumber":"KBD123"}}`, http.StatusNotFound},
		{"unknown vehicle id", `{"service":{"id":"svc-1"},"vehicle":{"id":"nope"}}`, http.StatusNotFound},
	}
	for _, test := range tests {
		w := doJSON(r, http.MethodPost, "/api/booking/create", []byte(test.body))
		assert.Equalf(t, test.wantCode, w.Code, "%s: %s", test.description, w.Body.String())
	}
}

func TestGetBookingEndpoint(t *testing.T) {
	r, fc := newTestRouter(t)
	seedService(fc)

	w := doJSON(r, http.MethodPost, "/api/booking/create",
		[]byte(`{"service":{"id":"svc-1"},"vehicle":{"plateNumber":"KBD123"}}`))
	require.Equal(t, http.StatusCreated, w.Code)
	var created Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodGet, "/api/booking/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)

	w = doJSON(r, http.MethodGet, "/api/booking/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateBookingEndpoint(t *testing.T) {
	r, fc := newTestRouter(t)
	seedService(fc)

	w := doJSON(r, http.MethodPost, "/api/booking/create",
		[]byte(`{"service":{"id":"svc-1"},"vehicle":{"plateNumber":"KBD123"}}`))
	require.Equal(t, http.StatusCreated, w.Code)
	var created Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/booking/%s/rate?rating=5", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rated Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rated))
	require.NotNil(t, rated.Rating)
	assert.Equal(t, 5, *rated.Rating)
	assert.Equal(t, StatusCompleted, rated.Status)

	// 非法评分
	for _, q := range []string{"rating=0", "rating=6", "rating=abc", ""} {
		w = doJSON(r, http.MethodPost, fmt.Sprintf("/api/booking/%s/rate?%s", created.ID, q), nil)
		assert.Equalf(t, http.StatusBadRequest, w.Code, "query %q: %s", q, w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/api/booking/missing/rate?rating=3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfirmBookingEndpoint(t *testing.T) {
	r, fc := newTestRouter(t)
	seedService(fc)

	w := doJSON(r, http.MethodPost, "/api/booking/create",
		[]byte(`{"service":{"id":"svc-1"},"vehicle":{"plateNumber":"KBD123"}}`))
	require.Equal(t, http.StatusCreated, w.Code)
	var created Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPost, "/api/booking/"+created.ID+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var confirmed Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirmed))
	assert.Equal(t, StatusConfirmed, confirmed.Status)

	w = doJSON(r, http.MethodPost, "/api/booking/missing/confirm", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
