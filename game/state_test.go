package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLegalMoves(t *testing.T) {
	t.Run("initial state", func(t *testing.T) {
		moves := NewBoardState().LegalMoves()

		require.Equal(t, []Move{
			{UpRear, MidRear},
			{UpRear, UpCenter},
			{UpRear, MidCenter},
			{Rear, MidRear},
			{DownRear, MidRear},
			{DownRear, MidCenter},
			{DownRear, DownCenter},
		}, moves, "Pursuer moves should follow piece order then rule order")
		for _, m := range moves {
			require.NotEqual(t, Front, m.From, "No move should involve the evader")
		}
	})

	t.Run("evader to move", func(t *testing.T) {
		s := NewBoardState().Play(Move{Rear, MidRear})
		require.Equal(t, []Move{
			{Front, UpFront},
			{Front, MidFront},
			{Front, DownFront},
		}, s.LegalMoves())
	})

	t.Run("destinations shared by several pursuers are kept", func(t *testing.T) {
		s := BoardState{
			Pursuers: [3]Position{UpRear, MidRear, Front},
			Evader:   UpFront,
			Ply:      3,
			Turn:     Pursuer,
		}
		moves := s.LegalMoves()
		require.Contains(t, moves, Move{UpRear, MidCenter})
		require.Contains(t, moves, Move{MidRear, MidCenter})
	})

	t.Run("trapped evader has no move", func(t *testing.T) {
		s := BoardState{
			Pursuers: [3]Position{UpFront, MidFront, DownFront},
			Evader:   Front,
			Ply:      12,
			Turn:     Evader,
		}
		require.Empty(t, s.LegalMoves(), "Stuck side should get an empty move list")
	})
}

func TestIsEmpty(t *testing.T) {
	s := NewBoardState()
	require.True(t, s.IsEmpty(MidCenter))
	require.False(t, s.IsEmpty(Front), "Evader square is occupied")
	require.False(t, s.IsEmpty(Rear), "Pursuer square is occupied")
}

func TestPlay(t *testing.T) {
	t.Run("pursuer then evader", func(t *testing.T) {
		s0 := NewBoardState()
		s1 := s0.Play(Move{UpRear, UpCenter})
		require.Equal(t, BoardState{
			Pursuers: [3]Position{UpCenter, Rear, DownRear},
			Evader:   Front,
			Ply:      2,
			Turn:     Evader,
		}, s1)

		s2 := s1.Play(Move{Front, MidFront})
		require.Equal(t, BoardState{
			Pursuers: [3]Position{UpCenter, Rear, DownRear},
			Evader:   MidFront,
			Ply:      3,
			Turn:     Pursuer,
		}, s2)

		require.Equal(t, NewBoardState(), s0, "Original state should not change")
	})

	t.Run("panics on a move from an empty square", func(t *testing.T) {
		require.PanicsWithError(t,
			"pursuer move mid-center->up-front at ply 1: "+ErrIllegalOrigin.Error(),
			func() { NewBoardState().Play(Move{MidCenter, UpFront}) })
	})

	t.Run("panics on an evader move from the wrong square", func(t *testing.T) {
		s := NewBoardState().Play(Move{Rear, MidRear})
		require.Panics(t, func() { s.Play(Move{UpFront, Front}) })
	})
}

func TestEquality(t *testing.T) {
	t.Run("permuted pursuers", func(t *testing.T) {
		s1 := NewBoardState()
		s2 := s1
		s2.Pursuers = [3]Position{s1.Pursuers[1], s1.Pursuers[2], s1.Pursuers[0]}

		require.True(t, s1.Equal(s2))
		require.Equal(t, s1.Key(), s2.Key())
		require.Equal(t, s1.Hash(), s2.Hash())
	})

	t.Run("differences outside the pursuer order", func(t *testing.T) {
		base := NewBoardState()
		tests := map[string]func(s *BoardState){
			"ply":      func(s *BoardState) { s.Ply++ },
			"turn":     func(s *BoardState) { s.Turn = Evader },
			"evader":   func(s *BoardState) { s.Evader = MidFront },
			"pursuers": func(s *BoardState) { s.Pursuers[0] = MidCenter },
		}
		for name, change := range tests {
			t.Run(name, func(t *testing.T) {
				other := base
				change(&other)
				require.False(t, base.Equal(other))
				require.NotEqual(t, base.Key(), other.Key())
				require.NotEqual(t, base.Hash(), other.Hash())
			})
		}
	})

	t.Run("every permutation of random layouts", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		perms := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
		for i := 0; i < 200; i++ {
			picked := rng.Perm(NumPositions)
			s := BoardState{
				Pursuers: [3]Position{Position(picked[0]), Position(picked[1]), Position(picked[2])},
				Evader:   Position(picked[3]),
				Ply:      1 + rng.Intn(PlyCap),
				Turn:     Role(rng.Intn(2)),
			}
			for _, perm := range perms {
				permuted := s
				for j, k := range perm {
					permuted.Pursuers[j] = s.Pursuers[k]
				}
				require.True(t, s.Equal(permuted))
				require.Equal(t, s.Hash(), permuted.Hash())
			}
		}
	})
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		s := NewBoardState()
		for !s.IsTerminal() {
			moves := s.LegalMoves()
			if len(moves) == 0 {
				break
			}
			next := s.Play(moves[rng.Intn(len(moves))])

			require.NoError(t, next.Validate())
			require.Equal(t, s.Ply+1, next.Ply, "Ply should increase by one")
			require.Equal(t, s.Turn.Opponent(), next.Turn, "Turn should alternate")
			if s.Turn == Pursuer {
				require.Equal(t, s.Evader, next.Evader, "Pursuer move should not move the evader")
			} else {
				require.Equal(t, s.Pursuers, next.Pursuers, "Evader move should not move pursuers")
			}
			s = next
		}
		require.LessOrEqual(t, s.Ply, PlyCap+1, "Games should stop at the ply cap")
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, NewBoardState().Validate())

	tests := map[string]BoardState{
		"duplicate pursuers": {Pursuers: [3]Position{Rear, Rear, UpRear}, Evader: Front, Ply: 1},
		"evader on pursuer":  {Pursuers: [3]Position{Rear, MidRear, UpRear}, Evader: Rear, Ply: 1},
		"unknown position":   {Pursuers: [3]Position{Rear, MidRear, 42}, Evader: Front, Ply: 1},
		"zero ply":           {Pursuers: [3]Position{Rear, MidRear, UpRear}, Evader: Front, Ply: 0},
		"unknown turn":       {Pursuers: [3]Position{Rear, MidRear, UpRear}, Evader: Front, Ply: 1, Turn: 9},
	}
	for name, s := range tests {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, s.Validate(), ErrInvalidState)
		})
	}
}
