package services

import (
	"servibook_backend/internal/auth"
	"servibook_backend/internal/repositories"
	"servibook_backend/internal/services/dto"
	"servibook_backend/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	workers         repositories.WorkerRepository
	hasher          auth.Hasher
	tokens          *auth.TokenManager
	tokenTTLMinutes int
}

func NewAuthService(workers repositories.WorkerRepository, hasher auth.Hasher, tokens *auth.TokenManager, ttlMinutes int) AuthService {
	return &AuthServiceImpl{workers: workers, hasher: hasher, tokens: tokens, tokenTTLMinutes: ttlMinutes}
}

// Login authenticates an active worker by email and password. Inactive
// workers cannot log in; every failure mode returns the same credentials
// error.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	worker, err := s.workers.FindActiveByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkerNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Check(req.Password, worker.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(worker.ID, worker.Email)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   s.tokenTTLMinutes * 60,
	}, nil
}
