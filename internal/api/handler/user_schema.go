package handler

// --- Request / Response types ---

type createUserRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	FullName string `json:"full_name"`
	Role     string `json:"role"      validate:"omitempty,oneof=admin staff client contractor"`
}

// updateUserRequest is a partial update: absent fields stay untouched.
type updateUserRequest struct {
	Email    *string `json:"email"     validate:"omitempty,email"`
	Password *string `json:"password"  validate:"omitempty,min=8"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role"      validate:"omitempty,oneof=admin staff client contractor"`
	IsActive *bool   `json:"is_active"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type messageResponse struct {
	Msg string `json:"msg"`
}
