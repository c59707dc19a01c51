package fiber

type AveragePerUserResponse struct {
	AveragePerUser float64 `json:"average_per_user" example:"2.5"`
}

type UserAverageResponse struct {
	UserID          string  `json:"user_id" example:"4b7c2a4e-3f1d-4c7e-9a55-0f1e2d3c4b5a"`
	AverageDuration float64 `json:"average_duration" example:"12.5"`
}

type TotalsResponse struct {
	TotalUsers              int64                 `json:"total_users" example:"3"`
	OverallAverageDuration  float64               `json:"overall_average_duration" example:"8.3"`
	AverageDurationsPerUser []UserAverageResponse `json:"average_durations_per_user"`
}

type ItemAverageDurationResponse struct {
	AverageDurationMinutes float64 `json:"average_duration_minutes" example:"42"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"not_found"`
	Message string `json:"message" example:"item not found"`
}
