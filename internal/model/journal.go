package model

import (
	"time"

	"github.com/google/uuid"
)

type UpsertAction string

const (
	UpsertActionCreated UpsertAction = "created"
	UpsertActionUpdated UpsertAction = "updated"
)

type JournalEntry struct {
	ID          uuid.UUID
	OrderID     int64
	Monto       Amount
	MetafieldID int64
	Action      UpsertAction
	CreatedAt   time.Time
}
