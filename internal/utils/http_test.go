package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pixel-analytics/models"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{name: "map", data: map[string]string{"status": "ok"}, status: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "error response", data: models.ErrorResponse{Error: "site not found", Code: "NOT_FOUND"}, status: http.StatusNotFound, wantBody: `{"error":"site not found","code":"NOT_FOUND"}`},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: "null"},
		{name: "accepted hit", data: models.TrackResponse{Accepted: true}, status: http.StatusAccepted, wantBody: `{"accepted":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, len(w.Body.String()), n)
		})
	}
}

func TestWriteJSON_UnmarshalableData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
