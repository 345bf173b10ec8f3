package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisly/beauty-store/internal/apperr"
	"github.com/krisly/beauty-store/internal/storetest"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(storetest.NewStore(t), nil, storetest.Logger())
}

func validRequest() CreateMessageRequest {
	return CreateMessageRequest{
		Name:    "María",
		Email:   "maria@example.com",
		Subject: "Pedido",
		Message: "¿Tienen envíos a Quito?",
	}
}

func TestServiceCreate(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *CreateMessageRequest)
		wantErr bool
	}{
		{"valid", func(r *CreateMessageRequest) {}, false},
		{"empty name", func(r *CreateMessageRequest) { r.Name = "" }, true},
		{"whitespace subject", func(r *CreateMessageRequest) { r.Subject = "   " }, true},
		{"empty message", func(r *CreateMessageRequest) { r.Message = "" }, true},
		{"empty email", func(r *CreateMessageRequest) { r.Email = "" }, true},
		{"malformed email", func(r *CreateMessageRequest) { r.Email = "maria-at-example" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			got, err := svc.Create(ctx, req)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, got.ID)
			assert.Equal(t, req.Email, got.Email)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestServiceGetAndDelete(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	empty, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	b, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	got, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pedido", got.Subject)

	require.NoError(t, svc.Delete(ctx, a.ID))
	assert.ErrorIs(t, svc.Delete(ctx, a.ID), apperr.ErrNotFound)

	_, err = svc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}
