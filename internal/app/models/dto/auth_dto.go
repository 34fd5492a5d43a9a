package dto

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Email     string  `json:"email" binding:"required,email" example:"jane@mes.edu"`
	Password  string  `json:"password" binding:"required,min=8" example:"Password123!"`
	FirstName string  `json:"firstName" binding:"required,min=2,max=50" example:"Jane"`
	LastName  string  `json:"lastName" binding:"required,min=2,max=50" example:"Doe"`
	Role      string  `json:"role" binding:"required,oneof=student alumni" example:"student"`
	Phone     *string `json:"phone,omitempty" example:"+915550001111"`
	StudentID *string `json:"studentId,omitempty" example:"MES2024001"`
	Year      *string `json:"year,omitempty" example:"2"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@mes.edu"`
	Password string `json:"password" binding:"required" example:"Password123!"`
}

// RefreshTokenRequest represents the request body for refreshing an access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required" example:"b3c1f0a2-..."`
}

// TokenResponse represents the token pair returned on login and refresh
type TokenResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	ExpiresIn    int64         `json:"expiresIn" example:"900"`
	User         *UserResponse `json:"user,omitempty"`
}
