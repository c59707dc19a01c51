package domain

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID        int64
	UserID    uuid.UUID
	Value     string
	Name      string
	Notes     *string
	Completed bool
	Duration  *float64 // minutes
	Created   time.Time
	Updated   time.Time
}
