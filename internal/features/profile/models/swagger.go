package models

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Error message"`
}

// ClaimResponse represents the outcome of a daily reward claim
type ClaimResponse struct {
	Claimed bool        `json:"claimed" example:"true"`
	Amount  int64       `json:"amount,omitempty" example:"500"`
	Profile UserProfile `json:"profile"`
}

// StatsResponse represents aggregate profile stats shown in settings
type StatsResponse struct {
	Botcoins      int64 `json:"botcoins" example:"9999999"`
	AssetsCreated int   `json:"assets_created" example:"12"`
	Rank          int   `json:"rank" example:"1"`
}

// HistoryResponse represents the capped activity history, newest first
type HistoryResponse struct {
	Items []ActivityItem `json:"items"`
	Total int            `json:"total" example:"12"`
}
