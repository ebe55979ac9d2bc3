package rpc

import "github.com/isaacwassouf/cricket-betting-service/models"

type RegisterResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserResponse struct {
	Matches []string `json:"matches"`
}

type MatchListResponse struct {
	Matches []models.CricketMatch `json:"matches"`
}

type ListRequest struct{}

type GetRequest struct {
	ID int64 `json:"id"`
}

type CreatePaymentResponse struct {
	Message   string         `json:"message"`
	Payment   models.Payment `json:"payment"`
	Reference string         `json:"reference"`
}
