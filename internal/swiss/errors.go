package swiss

import (
	"errors"
	"fmt"
)

var (
	ErrPreconditionViolation = errors.New("pairing precondition violated")
	ErrInconsistentRecord    = errors.New("inconsistent tournament records")
)

// PreconditionError is returned when pairings are requested for an odd
// number of players.
type PreconditionError struct {
	Players int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot pair %d players: an even player count is required", e.Players)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPreconditionViolation
}

// InconsistentRecordError is returned when a match references a player
// that is not registered.
type InconsistentRecordError struct {
	MatchID  string
	PlayerID int64
}

func (e *InconsistentRecordError) Error() string {
	return fmt.Sprintf("match %s references unknown player %d", e.MatchID, e.PlayerID)
}

func (e *InconsistentRecordError) Is(target error) bool {
	return target == ErrInconsistentRecord
}
