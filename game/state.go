package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	"hounds/utils"
)

// BoardState is a snapshot of the board between two moves.
type BoardState struct {
	Pursuers [3]Position // Stored positionally, compared as a set
	Evader   Position
	Ply      int  // Starts at 1, one per move
	Turn     Role // Side to move
}

// Key is the canonical form of a BoardState: pursuers sorted in Position
// order. Two states are equal iff their keys are equal.
type Key struct {
	Pursuers [3]Position
	Evader   Position
	Ply      int
	Turn     Role
}

// NewBoardState returns the starting layout.
func NewBoardState() BoardState {
	return BoardState{
		Pursuers: [3]Position{UpRear, Rear, DownRear},
		Evader:   Front,
		Ply:      1,
		Turn:     Pursuer,
	}
}

func (s BoardState) Player() Role {
	return s.Turn
}

// LegalMoves enumerates moves of the side to move: pursuers in stored order,
// then destinations in rule order. Only occupancy is checked.
func (s BoardState) LegalMoves() []Move {
	if s.Turn == Evader {
		return s.movesFrom(s.Evader, Evader)
	}

	var moves []Move
	for _, p := range s.Pursuers {
		moves = append(moves, s.movesFrom(p, Pursuer)...)
	}
	return moves
}

func (s BoardState) movesFrom(from Position, role Role) []Move {
	var moves []Move
	for _, to := range adjacencyTable(role)[from] {
		if s.IsEmpty(to) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// IsEmpty reports whether no piece stands on pos.
func (s BoardState) IsEmpty(pos Position) bool {
	return s.Evader != pos && !utils.Contains(s.Pursuers[:], pos)
}

// Play returns the state after move. It panics if the origin of the move is
// not a piece of the side to move.
func (s BoardState) Play(move Move) BoardState {
	next := s
	next.Ply = s.Ply + 1
	next.Turn = s.Turn.Opponent()

	switch s.Turn {
	case Pursuer:
		i := utils.FindIndex(s.Pursuers[:], move.From)
		if i < 0 {
			panic(fmt.Errorf("pursuer move %s at ply %d: %w", move, s.Ply, ErrIllegalOrigin))
		}
		next.Pursuers[i] = move.To
	case Evader:
		if s.Evader != move.From {
			panic(fmt.Errorf("evader move %s at ply %d: %w", move, s.Ply, ErrIllegalOrigin))
		}
		next.Evader = move.To
	default:
		panic(fmt.Errorf("turn %d: %w", s.Turn, ErrInvalidState))
	}
	return next
}

// Key returns the canonical memoization key.
func (s BoardState) Key() Key {
	pursuers := s.Pursuers
	slices.Sort(pursuers[:])
	return Key{
		Pursuers: pursuers,
		Evader:   s.Evader,
		Ply:      s.Ply,
		Turn:     s.Turn,
	}
}

// BoardState returns the canonical state the key was built from.
func (k Key) BoardState() BoardState {
	return BoardState{
		Pursuers: k.Pursuers,
		Evader:   k.Evader,
		Ply:      k.Ply,
		Turn:     k.Turn,
	}
}

// Equal compares pursuers as a set together with evader, ply and turn.
func (s BoardState) Equal(other BoardState) bool {
	return s.Key() == other.Key()
}

func (s BoardState) Hash() StateHash {
	key := s.Key()
	hasher := fnv.New64a()

	// Hash sorted pursuers
	for _, p := range key.Pursuers {
		binary.Write(hasher, binary.LittleEndian, uint8(p))
	}

	// Hash evader
	binary.Write(hasher, binary.LittleEndian, uint8(key.Evader))

	// Hash ply and turn
	binary.Write(hasher, binary.LittleEndian, int64(key.Ply))
	binary.Write(hasher, binary.LittleEndian, uint8(key.Turn))

	return StateHash(hasher.Sum64())
}

// Validate checks the placement invariants of a hand-built state.
func (s BoardState) Validate() error {
	for i, p := range s.Pursuers {
		if !p.Valid() {
			return fmt.Errorf("%w: pursuer %d on unknown position %d", ErrInvalidState, i, p)
		}
		if utils.Contains(s.Pursuers[i+1:], p) {
			return fmt.Errorf("%w: two pursuers on %s", ErrInvalidState, p)
		}
	}
	if !s.Evader.Valid() {
		return fmt.Errorf("%w: evader on unknown position %d", ErrInvalidState, s.Evader)
	}
	if utils.Contains(s.Pursuers[:], s.Evader) {
		return fmt.Errorf("%w: evader shares %s with a pursuer", ErrInvalidState, s.Evader)
	}
	if s.Ply < 1 {
		return fmt.Errorf("%w: ply %d", ErrInvalidState, s.Ply)
	}
	if s.Turn != Pursuer && s.Turn != Evader {
		return fmt.Errorf("%w: turn %d", ErrInvalidState, s.Turn)
	}
	return nil
}

func (s BoardState) String() string {
	names := make([]string, len(s.Pursuers))
	for i, p := range s.Key().Pursuers {
		names[i] = p.String()
	}
	return fmt.Sprintf("ply %d, %s to move, pursuers [%s], evader %s",
		s.Ply, s.Turn, strings.Join(names, " "), s.Evader)
}
