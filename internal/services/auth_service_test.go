package services

import (
	"testing"

	"servibook_backend/internal/auth"
	"servibook_backend/internal/services/dto"
	"servibook_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthLogin(t *testing.T) {
	repo := newFakeWorkerRepo()
	workerSvc := newWorkerService(repo)
	tokens := auth.NewTokenManager("test-secret", 60)
	authSvc := NewAuthService(repo, fakeHasher{}, tokens, 60)

	created, err := workerSvc.Create(validWorkerRequest())
	require.NoError(t, err)

	t.Run("issues a parseable token for valid credentials", func(t *testing.T) {
		result, err := authSvc.Login(&dto.LoginRequest{
			Email:    "ana@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, 3600, result.ExpiresIn)

		claims, err := tokens.Parse(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, created.ID, claims.WorkerID)
		assert.Equal(t, "ana@example.com", claims.Email)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		_, err := authSvc.Login(&dto.LoginRequest{
			Email:    "ana@example.com",
			Password: "wrong",
		})

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
	})

	t.Run("rejects an unknown email with the same error", func(t *testing.T) {
		_, err := authSvc.Login(&dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
	})

	t.Run("rejects a soft-deleted worker", func(t *testing.T) {
		require.NoError(t, workerSvc.Delete(created.ID))

		_, err := authSvc.Login(&dto.LoginRequest{
			Email:    "ana@example.com",
			Password: "secret123",
		})

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
	})
}
