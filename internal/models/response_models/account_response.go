package response_models

import "budgy/internal/models/db_models"

type LoginResponse struct {
	Token string          `json:"token"`
	User  *db_models.User `json:"user"`
}
