package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	ArtistName   string             `bson:"artist_name"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

type UserProfile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	ArtistName string `json:"artistName"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:         u.ID.Hex(),
		Email:      u.Email,
		ArtistName: u.ArtistName,
	}
}

type SignupRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	ArtistName string `json:"artistName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

type AuthResponse struct {
	User        UserProfile `json:"user"`
	AccessToken string      `json:"accessToken"`
}

// UserRepository is the credential store. FindByEmail returns (nil, nil)
// when no user matches.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error)
}

type AuthUsecase interface {
	Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
}
