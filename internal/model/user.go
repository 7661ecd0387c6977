package model

import "time"

const (
	RoleJobSeeker = "job_seeker"
	RoleEmployer  = "employer"
)

// User represents a user account with its role-specific profile fields
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	FullName     string    `json:"full_name"`
	CreatedAt    time.Time `json:"created_at"`

	// Job seeker specific fields
	Skills     []string `json:"skills,omitempty"`
	Experience *string  `json:"experience,omitempty"`
	Education  *string  `json:"education,omitempty"`
	Phone      *string  `json:"phone,omitempty"`

	// Employer specific fields
	CompanyName        *string `json:"company_name,omitempty"`
	CompanyDescription *string `json:"company_description,omitempty"`
}

// RegisterRequest is the payload for creating a new account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=job_seeker employer"`
	FullName string `json:"full_name" binding:"required"`

	Skills             []string `json:"skills"`
	Experience         *string  `json:"experience"`
	Education          *string  `json:"education"`
	Phone              *string  `json:"phone"`
	CompanyName        *string  `json:"company_name"`
	CompanyDescription *string  `json:"company_description"`
}

// LoginRequest is the payload for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both register and login
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}

// ApplicantProfile is the subset of a seeker profile exposed to employers
// reviewing applications for their jobs.
type ApplicantProfile struct {
	ID         string   `json:"id"`
	FullName   string   `json:"full_name"`
	Email      string   `json:"email"`
	Skills     []string `json:"skills,omitempty"`
	Experience *string  `json:"experience,omitempty"`
	Education  *string  `json:"education,omitempty"`
}
