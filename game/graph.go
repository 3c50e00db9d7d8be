package game

import "fmt"

// Neighbors returns the nodes a piece of the given role may step into from
// pos, in rule order. The returned slice is a copy.
func Neighbors(pos Position, role Role) []Position {
	table := adjacencyTable(role)
	if !pos.Valid() {
		panic(fmt.Sprintf("neighbors of unknown position %d", pos))
	}
	neighbors := make([]Position, len(table[pos]))
	copy(neighbors, table[pos])
	return neighbors
}

// AreAdjacent reports whether a piece of the given role may step from one node to the other.
func AreAdjacent(from, to Position, role Role) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	for _, p := range adjacencyTable(role)[from] {
		if p == to {
			return true
		}
	}
	return false
}

func adjacencyTable(role Role) *[NumPositions][]Position {
	switch role {
	case Pursuer:
		return &pursuerAdjacency
	case Evader:
		return &evaderAdjacency
	default:
		panic(fmt.Sprintf("no adjacency for role %d", role))
	}
}

// RULE DATA. Pursuers may never step back towards the rear; the evader may
// travel both ways along every link.

// Adjacency of pursuer pieces, indexed by Position
var pursuerAdjacency = [NumPositions][]Position{
	Rear:       {UpRear, MidRear, DownRear},
	UpRear:     {MidRear, UpCenter, MidCenter},
	MidRear:    {UpRear, DownRear, MidCenter},
	DownRear:   {MidRear, MidCenter, DownCenter},
	UpCenter:   {MidCenter, UpFront},
	MidCenter:  {UpCenter, DownCenter, UpFront, MidFront, DownFront},
	DownCenter: {MidCenter, DownFront},
	UpFront:    {MidFront, Front},
	MidFront:   {UpFront, DownFront, Front},
	DownFront:  {MidFront, Front},
	Front:      {},
}

// Adjacency of the evader piece, indexed by Position
var evaderAdjacency = [NumPositions][]Position{
	Rear:       {UpRear, MidRear, DownRear},
	UpRear:     {Rear, MidRear, UpCenter, MidCenter},
	MidRear:    {Rear, UpRear, DownRear, MidCenter},
	DownRear:   {Rear, MidRear, MidCenter, DownCenter},
	UpCenter:   {UpRear, MidCenter, UpFront},
	MidCenter:  {UpRear, MidRear, DownRear, UpCenter, DownCenter, UpFront, MidFront, DownFront},
	DownCenter: {DownRear, MidCenter, DownFront},
	UpFront:    {UpCenter, MidCenter, MidFront, Front},
	MidFront:   {MidCenter, UpFront, DownFront, Front},
	DownFront:  {DownCenter, MidFront, Front},
	Front:      {UpFront, MidFront, DownFront},
}
