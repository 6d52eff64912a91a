package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/supermaker/experiments-api/internal/models"
	"github.com/supermaker/experiments-api/internal/services"
)

// serveWithID routes the request through chi so URLParam resolves.
func serveWithID(pattern string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(req.Method, pattern, handler)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestFileGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	fileID := uuid.New()

	tests := []struct {
		name         string
		rawID        string
		mockSetup    func(m *MockFileGetter)
		expectedCode int
	}{
		{
			name:  "success",
			rawID: fileID.String(),
			mockSetup: func(m *MockFileGetter) {
				m.EXPECT().
					Get(gomock.Any(), fileID).
					Return(&models.FileDB{FileID: fileID, Title: "my data"}, nil)
			},
			expectedCode: 200,
		},
		{
			name:  "not found",
			rawID: fileID.String(),
			mockSetup: func(m *MockFileGetter) {
				m.EXPECT().
					Get(gomock.Any(), fileID).
					Return(nil, services.ErrFileNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "malformed id",
			rawID:        "not-a-uuid",
			expectedCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFileGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewFileGetHandler(mockSvc, authorizedTokener(ctrl, userID))

			req := httptest.NewRequest(http.MethodGet, "/files/"+tt.rawID, nil)
			rr := serveWithID("/files/{id}", handler, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp models.FileDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, fileID, resp.FileID)
			}
		})
	}
}
