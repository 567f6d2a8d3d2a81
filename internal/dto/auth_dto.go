package dto

// RegisterDTO for user registration
type RegisterDTO struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	NickName string `json:"nick_name" binding:"max=100"`
}

// LoginDTO for user login
type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordDTO requests a reset token for the account with this email.
type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordDTO consumes a reset token.
type ResetPasswordDTO struct {
	Username string `json:"username" binding:"required"`
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthResponse returns the access token and basic profile after
// register/login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type UserProfile struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	NickName    string  `json:"nick_name"`
	Role        string  `json:"role"`
	TotalReview int     `json:"total_review"`
	RateAvg     float64 `json:"rate_avg"`
}
