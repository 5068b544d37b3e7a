package dto

import "github.com/golang-jwt/jwt/v5"

// RegisterRequest is the request body for account registration.
// @Description Request body for registering a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in.
// @Description Request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUserData echoes the account fields a client needs after auth.
type AuthUserData struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is returned by register and login on success.
// @Description Response body carrying the bearer token
type AuthResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Data    AuthUserData `json:"data"`
}

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}
