package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharanikumar/medvault/domain"
	"github.com/tharanikumar/medvault/internal/mocks"
)

func TestNotificationHandlers_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewMockNotificationService()
	var gotUnreadOnly bool
	svc.ListFunc = func(ctx context.Context, accountID uint, unreadOnly bool) ([]domain.Notification, error) {
		gotUnreadOnly = unreadOnly
		return []domain.Notification{
			{ID: 1, AccountID: accountID, Title: "Appointment Update", Category: "appointment", CreatedAt: time.Now()},
		}, nil
	}
	h := NewNotificationHandlers(svc)

	w := performAuthed(t, h.List, http.MethodGet, "/notifications?unread=true", nil, 1, "patient", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gotUnreadOnly)
	body := decodeBody(t, w)
	require.Len(t, body["data"], 1)
}

func TestNotificationHandlers_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		id             string
		markErr        error
		expectedStatus int
	}{
		{"successful mark read", "5", nil, http.StatusOK},
		{"invalid id", "abc", nil, http.StatusBadRequest},
		{"not owned or missing", "5", domain.ErrNotificationNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockNotificationService()
			svc.MarkReadFunc = func(ctx context.Context, accountID, id uint) error {
				return tt.markErr
			}
			h := NewNotificationHandlers(svc)

			w := performAuthed(t, h.MarkRead, http.MethodPost, "/notifications/5/read", nil, 1, "patient",
				gin.Params{{Key: "id", Value: tt.id}})
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}
