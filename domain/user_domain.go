package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login success"
	MessageSuccessSendVerifyEmail  = "verification email sent"
	MessageSuccessVerifyEmail      = "email verified successfully"
	MessageSuccessGetMe            = "success get current user"
	MessageSuccessGetProfile       = "success get profile"
	MessageSuccessUpdateProfile    = "profile updated successfully"
	MessageSuccessForgotPassword   = "password reset email sent"
	MessageSuccessResetPassword    = "password reset successfully"
	MessageSuccessCreatePayment    = "payment transaction created"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedGetMe           = "failed to get current user"
	MessageFailedGetProfile      = "failed to get profile"
	MessageFailedUpdateProfile   = "failed to update profile"
	MessageFailedForgotPassword  = "failed to send password reset email"
	MessageFailedResetPassword   = "failed to reset password"
	MessageFailedCreatePayment   = "failed to create payment transaction"

	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrUserNotFound          = errors.New("user not found")
	ErrCredentialsInvalid    = errors.New("invalid email or password")
	ErrUserNotVerified       = errors.New("email not verified")
	ErrUserBanned            = errors.New("account is banned")
	ErrPasswordTooShort      = errors.New("password must be at least 8 characters")
)

type (
	RegisterRequest struct {
		Username    string `json:"username" validate:"required,min=3,max=30,alphanum"`
		DisplayName string `json:"display_name" validate:"required"`
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string      `json:"token"`
		User  UserPayload `json:"user"`
	}

	UserPayload struct {
		ID          string `json:"id"`
		Username    string `json:"username"`
		DisplayName string `json:"display_name"`
		Email       string `json:"email"`
		AvatarURL   string `json:"avatar_url,omitempty"`
		Role        string `json:"role"`
		Verified    bool   `json:"verified"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	UpdateProfileRequest struct {
		Username    string                `json:"username" form:"username" validate:"omitempty,min=3,max=30,alphanum"`
		DisplayName string                `json:"display_name" form:"display_name" validate:"omitempty"`
		Bio         string                `json:"bio" form:"bio" validate:"omitempty,max=500"`
		Avatar      *multipart.FileHeader `json:"avatar" form:"avatar" validate:"omitempty"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	ProfileResponse struct {
		ID             string    `json:"id"`
		Username       string    `json:"username"`
		DisplayName    string    `json:"display_name"`
		AvatarURL      string    `json:"avatar_url,omitempty"`
		Bio            string    `json:"bio,omitempty"`
		Role           string    `json:"role"`
		RecipeCount    int       `json:"recipe_count"`
		BookmarkCount  int       `json:"bookmark_count"`
		FollowerCount  int       `json:"follower_count"`
		FollowingCount int       `json:"following_count"`
		IsFollowed     bool      `json:"is_followed"`
		JoinedAt       time.Time `json:"joined_at"`
	}
)
