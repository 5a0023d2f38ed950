package usecase

import (
	"context"

	"handoff/internal/domain/entity"

	"github.com/google/uuid"
)

// MeetupUsecase recommends where two parties could meet.
type MeetupUsecase interface {
	// GetMeetupPoint returns the neighborhood between both parties' primary addresses.
	GetMeetupPoint(ctx context.Context, userID, counterpartyID uuid.UUID) (*entity.MeetupPoint, error)
}
