package httpdto

// SendOTPRequest is used for POST /v1/auth/otp/send
type SendOTPRequest struct {
	Mobile string `json:"mobile" binding:"required"`
}

// RegisterRequest is used for POST /v1/auth/register
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`
	OTP      string `json:"otp" binding:"required"`
}

// LoginRequestRequest is used for POST /v1/auth/login/request
type LoginRequestRequest struct {
	Identifier string `json:"identifier" binding:"required"` // username or mobile
}

// LoginVerifyRequest is used for POST /v1/auth/login/verify
type LoginVerifyRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	OTP        string `json:"otp" binding:"required"`
}

// MessageResponse carries a plain acknowledgment message.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned after successful login verification.
type LoginResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// UserDTO represents an account in API responses.
type UserDTO struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
}
