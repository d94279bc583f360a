package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims for admin authentication
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// UserClaims are JWT claims for end-user tokens
type UserClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}

// UserTokenRequest asks for an end-user token
type UserTokenRequest struct {
	Email string `json:"email"`
}

// UserTokenResponse is returned with a fresh user token
type UserTokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
