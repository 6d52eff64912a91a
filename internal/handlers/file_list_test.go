package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/supermaker/experiments-api/internal/models"
)

func TestFileListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockFileLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return([]models.FileDB{
				{FileID: uuid.New(), Title: "first"},
				{FileID: uuid.New(), Title: "second"},
			}, nil)

		handler := NewFileListHandler(mockSvc, authorizedTokener(ctrl, userID))

		req := httptest.NewRequest(http.MethodGet, "/files/", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)

		var resp []models.FileDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		mockSvc := NewMockFileLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return(nil, nil)

		handler := NewFileListHandler(mockSvc, authorizedTokener(ctrl, userID))

		req := httptest.NewRequest(http.MethodGet, "/files/", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockFileLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), userID).
			Return(nil, errors.New("database failure"))

		handler := NewFileListHandler(mockSvc, authorizedTokener(ctrl, userID))

		req := httptest.NewRequest(http.MethodGet, "/files/", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)
	})
}
