package domain

import "github.com/google/uuid"

// UserAverage is the mean duration of one owner's completed items.
type UserAverage struct {
	UserID          uuid.UUID
	AverageDuration float64
}

type Totals struct {
	TotalUsers              int64
	OverallAverageDuration  float64
	AverageDurationsPerUser []UserAverage
}
