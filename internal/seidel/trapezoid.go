package seidel

// neighborList holds up to two neighbor trapezoids in one vertical direction.
// When both slots are occupied, slot 0 is the left one and slot 1 is the
// right one, ordered by their shared horizontal boundary.
type neighborList [2]TrapID

func (nl neighborList) len() int {
	n := 0
	for _, id := range nl {
		if id != noTrap {
			n++
		}
	}
	return n
}

func (nl neighborList) has(id TrapID) bool {
	return nl[0] == id || nl[1] == id
}

// replace swaps old for new in place, wherever it occurs. It is a no-op if
// old is not present.
func (nl *neighborList) replace(old, new TrapID) {
	for i, id := range nl {
		if id == old {
			nl[i] = new
		}
	}
}

// trapRecord is the arena-backed representation of a Trapezoid. A missing
// boundary (TopVertex/BottomVertex/LeftEdge/RightEdge) is represented by the
// matching "no*" sentinel and means infinite extent in that direction.
type trapRecord struct {
	TopVertex, BottomVertex VertexID
	LeftEdge, RightEdge     EdgeID
	Above, Below            neighborList
	Node                    NodeID

	insideKnown bool
	inside      bool
}

func emptyTrapRecord() trapRecord {
	return trapRecord{
		TopVertex:    noVertex,
		BottomVertex: noVertex,
		LeftEdge:     noEdge,
		RightEdge:    noEdge,
		Above:        neighborList{noTrap, noTrap},
		Below:        neighborList{noTrap, noTrap},
		Node:         noNode,
	}
}

// isOutsideByBoundary reports the "missing a side edge" half of the inside
// test: a trapezoid with no left edge or no right edge is outside.
func (t trapRecord) isOutsideByBoundary() bool {
	return t.LeftEdge == noEdge || t.RightEdge == noEdge
}

type trapArena struct {
	traps []trapRecord
}

func newTrapArena() *trapArena {
	return &trapArena{}
}

func (a *trapArena) alloc(rec trapRecord) TrapID {
	id := TrapID(len(a.traps))
	a.traps = append(a.traps, rec)
	return id
}

func (a *trapArena) get(id TrapID) trapRecord {
	return a.traps[id]
}

func (a *trapArena) set(id TrapID, rec trapRecord) {
	a.traps[id] = rec
}
