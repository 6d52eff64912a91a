package handlers

import (
	"errors"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

// authorizedTokener returns a Tokener mock resolving every request to userID.
func authorizedTokener(ctrl *gomock.Controller, userID uuid.UUID) *MockTokener {
	m := NewMockTokener(ctrl)
	m.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("token", nil).
		AnyTimes()
	m.EXPECT().
		GetUserID(gomock.Any(), "token").
		Return(userID, nil).
		AnyTimes()
	return m
}

// deniedTokener returns a Tokener mock rejecting every request.
func deniedTokener(ctrl *gomock.Controller) *MockTokener {
	m := NewMockTokener(ctrl)
	m.EXPECT().
		GetTokenFromRequest(gomock.Any(), gomock.Any()).
		Return("", errors.New("missing authorization header")).
		AnyTimes()
	return m
}
