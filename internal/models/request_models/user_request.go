package request_models

import "budgy/internal/models/db_models"

type RegisterUserRequest struct {
	FirstName string             `json:"first_name" binding:"required"`
	LastName  string             `json:"last_name" binding:"required"`
	Email     string             `json:"email" binding:"required,email"`
	Gender    db_models.Gender   `json:"gender" binding:"required"`
	Dob       string             `json:"dob" example:"1990-04-21"`
	Image     string             `json:"image"`
	Password  string             `json:"password" binding:"required"`
	Role      db_models.UserRole `json:"role" binding:"required"`
}

// UpdateUserRequest overwrites every mutable field; an empty Password keeps
// the stored one.
type UpdateUserRequest struct {
	FirstName string             `json:"first_name" binding:"required"`
	LastName  string             `json:"last_name" binding:"required"`
	Email     string             `json:"email" binding:"required,email"`
	Gender    db_models.Gender   `json:"gender" binding:"required"`
	Dob       string             `json:"dob" example:"1990-04-21"`
	Image     string             `json:"image"`
	Password  string             `json:"password"`
	Role      db_models.UserRole `json:"role" binding:"required"`
}
