package game

import "errors"

// StateHash is a permutation-invariant fingerprint of a BoardState.
type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Role
	LegalMoves() []Move
	Play(Move) BoardState
	Key() Key
	Hash() StateHash
	Winner() (Role, bool)
}

var _ State = BoardState{}

var (
	// ErrIllegalOrigin marks a move whose origin is not a piece of the side to move.
	ErrIllegalOrigin = errors.New("move origin is not occupied by the side to move")
	// ErrInvalidState marks a board that breaks the placement invariants.
	ErrInvalidState = errors.New("invalid board state")
)
