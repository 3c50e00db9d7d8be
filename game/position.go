package game

import "fmt"

// Position is one of the 11 nodes of the board. The declaration order is the
// order used to canonicalize Pursuer sets.
type Position uint8

const (
	Rear Position = iota
	UpRear
	MidRear
	DownRear
	UpCenter
	MidCenter
	DownCenter
	UpFront
	MidFront
	DownFront
	Front
)

// NumPositions is the number of nodes on the board.
const NumPositions = int(Front) + 1

var positionNames = [NumPositions]string{
	"rear", "up-rear", "mid-rear", "down-rear",
	"up-center", "mid-center", "down-center",
	"up-front", "mid-front", "down-front", "front",
}

// Column of every node, indexed by Position
var positionRanks = [NumPositions]int{
	0,
	1, 1, 1,
	2, 2, 2,
	3, 3, 3,
	4,
}

// Positions returns every node in canonical order.
func Positions() []Position {
	all := make([]Position, NumPositions)
	for i := range all {
		all[i] = Position(i)
	}
	return all
}

func (p Position) Valid() bool {
	return int(p) < NumPositions
}

// Rank returns the column of the node, 0 (pursuers' side) to 4 (evader's side).
func (p Position) Rank() int {
	if !p.Valid() {
		panic(fmt.Sprintf("rank of unknown position %d", p))
	}
	return positionRanks[p]
}

func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("position(%d)", p)
	}
	return positionNames[p]
}
