package model

type UpdateUserStatusRequest struct {
	UserID  string `json:"userId"`
	Blocked *bool  `json:"blocked"`
}

type UpdateUserStatusResponse struct{}
