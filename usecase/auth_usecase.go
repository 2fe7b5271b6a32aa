package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/olprod/olprod-backend/domain"
	"github.com/olprod/olprod-backend/internal/logger"
	"github.com/olprod/olprod-backend/internal/tokenutil"
)

type authUsecase struct {
	repo        domain.UserRepository
	tokenSecret string
	tokenExpiry time.Duration
	timeout     time.Duration
}

func NewAuthUsecase(repo domain.UserRepository, tokenSecret string, tokenExpiry, timeout time.Duration) domain.AuthUsecase {
	return &authUsecase{
		repo:        repo,
		tokenSecret: tokenSecret,
		tokenExpiry: tokenExpiry,
		timeout:     timeout,
	}
}

func (uc *authUsecase) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	email := strings.TrimSpace(strings.ToLower(req.Email))
	artistName := strings.TrimSpace(req.ArtistName)
	if email == "" || req.Password == "" || artistName == "" {
		return nil, domain.NewValidationError("email, password and artistName are required")
	}

	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		ArtistName:   artistName,
		PasswordHash: string(hash),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info(logger.EventSignup, "new artist registered", logger.Fields("user_id", user.ID.Hex()))
	return uc.respond(user)
}

func (uc *authUsecase) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, domain.NewValidationError("email and password are required")
	}

	user, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrEmailNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn(logger.EventLoginFailure, "wrong password", logger.Fields("user_id", user.ID.Hex()))
		return nil, domain.ErrWrongPassword
	}

	logger.Info(logger.EventLoginSuccess, "artist logged in", logger.Fields("user_id", user.ID.Hex()))
	return uc.respond(user)
}

func (uc *authUsecase) ResetPassword(ctx context.Context, req *domain.ResetPasswordRequest) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.NewPassword == "" {
		return domain.NewValidationError("email and newPassword are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	found, err := uc.repo.UpdatePassword(ctx, email, string(hash))
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrEmailNotFound
	}

	logger.Info(logger.EventPasswordReset, "password reset", logger.Fields("email", email))
	return nil
}

func (uc *authUsecase) respond(user *domain.User) (*domain.AuthResponse, error) {
	token, err := tokenutil.CreateAccessToken(user, uc.tokenSecret, uc.tokenExpiry)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResponse{
		User:        user.Profile(),
		AccessToken: token,
	}, nil
}
