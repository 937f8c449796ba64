package request_models

import "catcare/internal/models/db_models"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	Username string             `json:"username"`
	Password string             `json:"password"`
	Name     string             `json:"name"`
	Type     db_models.UserType `json:"type"`
}
