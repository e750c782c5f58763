package handlers

import "netflix-backend/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" example:"Test User"`
	Email    string `json:"email" example:"test@example.com"`
	Password string `json:"password" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"test@example.com"`
	Password string `json:"password" example:"password123"`
}

type RowResponse struct {
	Category models.Category `json:"category"`
	Movies   []models.Movie  `json:"movies"`
}

type RecentSearchesResponse struct {
	Terms []string `json:"terms" example:"avengers,heat"`
}
