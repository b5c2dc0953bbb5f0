package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ye-russell/art-platform/api/models"
)

func TestUserPostNotAllowed(t *testing.T) {
	req := newTestRequest("POST", "/api/user", "reqID", nil, nil, "{}")
	handler := NewHandler(req, testClaims("u1")).WithService(newMockService())
	resp, err := handler.handle(context.Background())
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	}
}

func TestUserGetRequiresAuth(t *testing.T) {
	req := newTestRequest("GET", "/api/user", "reqID", nil, nil, "")
	handler := NewHandler(req, nil).WithService(newMockService())
	resp, err := handler.handle(context.Background())
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestUserGetAccount(t *testing.T) {
	profile := &models.Artist{ArtistId: "a1", UserId: "u1", Name: "Maud"}
	account := &models.UserAccount{
		UserId:        "u1",
		Email:         "maud@example.com",
		IsArtist:      true,
		ArtistProfile: profile,
	}
	mockService := newMockService()
	mockService.On("GetUserAccount", context.Background(), "u1", "maud@example.com").Return(account, nil)

	req := newTestRequest("GET", "/api/user", "reqID", nil, nil, "")
	claims := testClaims("u1")
	claims.Email = "maud@example.com"
	handler := NewHandler(req, claims).WithService(mockService)
	resp, err := handler.handle(context.Background())
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result models.UserAccount
		if assert.NoError(t, json.Unmarshal([]byte(resp.Body), &result)) {
			assert.Equal(t, *account, result)
		}
		mockService.AssertExpectations(t)
	}
}

func TestUserGetNotArtist(t *testing.T) {
	account := &models.UserAccount{UserId: "u2", Email: "vik@example.com", IsArtist: false}
	mockService := newMockService()
	mockService.On("GetUserAccount", context.Background(), "u2", "u2@example.com").Return(account, nil)

	req := newTestRequest("GET", "/api/user", "reqID", nil, nil, "")
	handler := NewHandler(req, testClaims("u2")).WithService(mockService)
	resp, err := handler.handle(context.Background())
	if assert.NoError(t, err) {
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result models.UserAccount
		if assert.NoError(t, json.Unmarshal([]byte(resp.Body), &result)) {
			assert.False(t, result.IsArtist)
			assert.Nil(t, result.ArtistProfile)
		}
	}
}
