package solver

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/drencher/drench/bitset"
	"github.com/drencher/drench/board"
	"github.com/drencher/drench/color"
	"github.com/drencher/drench/islands"
)

// Exact always finds a minimum-length solution. It searches the island
// graph of the board breadth-first, one level per move, so the first
// terminal state it reaches is optimal. It only supports boards whose
// graph fits 256 islands; every board of size 16 or less does.
type Exact struct {
	// disablePruning turns the dominance check off. Only the
	// equivalence tests use it; pruning changes cost, never results.
	disablePruning bool
}

// PrintsOutput implements Solver.
func (Exact) PrintsOutput() bool { return false }

// searchState is one node of the game tree: the moves that led here,
// the island ids merged into the player's region, and the frontier of
// reachable but unowned islands. owned and adjacent are disjoint and
// island 0 is always owned.
type searchState struct {
	moves    Solution
	owned    bitset.Set
	adjacent bitset.Set
}

// Solve implements Solver. It never returns ErrOutOfMoves: the owned
// set grows with every generated child and is bounded by the island
// count, so the search always terminates with a solution.
func (e Exact) Solve(b *board.Board) (Solution, error) {
	g, err := islands.FromBoard(b)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("islands", len(g.Nodes)).Msg("built island graph")

	if len(g.Nodes) == 1 {
		return Solution{}, nil
	}

	nodesWithColor := g.NodesWithColor()

	states := []*searchState{{
		owned:    bitset.WithFirst(),
		adjacent: g.Nodes[0].Adjacent,
	}}

	for ply := 1; ; ply++ {
		if !e.disablePruning {
			states = pruneDominated(states)
		}
		log.Debug().Int("ply", ply).Int("states", len(states)).Msg("expanding level")

		next := make([]*searchState, 0, 2*len(states))
		for _, st := range states {
			for _, c := range candidateColors(st, &nodesWithColor) {
				child := expand(st, c, g, &nodesWithColor)
				if child.adjacent.Empty() {
					// Level synchrony makes the first full
					// ownership optimal.
					return child.moves, nil
				}
				next = append(next, child)
			}
		}
		states = next
	}
}

// pruneDominated drops every state whose owned set is a subset of
// another same-level state's: any continuation from the dominated state
// also works, in no more moves, from the dominating one. Sorting by
// descending owned cardinality first means a true superset always sorts
// at or before the current position, so each state only needs checking
// against the already-kept prefix.
func pruneDominated(states []*searchState) []*searchState {
	sort.Slice(states, func(i, j int) bool {
		return states[i].owned.Len() > states[j].owned.Len()
	})
	kept := 0
	for i := range states {
		dominated := false
		for a := 0; a < kept; a++ {
			if states[i].owned.SubsetOf(states[a].owned) {
				dominated = true
				break
			}
		}
		if !dominated {
			states[i], states[kept] = states[kept], states[i]
			kept++
		}
	}
	return states[:kept]
}

// candidateColors picks the colors worth trying from st. If some color's
// frontier count equals its board-wide unowned count, a single move
// exhausts that color entirely; no other move can do better this ply,
// so it is chosen exclusively and scanning stops.
func candidateColors(st *searchState, byColor *[color.Num]bitset.Set) []color.Color {
	cands := make([]color.Color, 0, color.Num)
	for _, c := range color.All {
		numAdj := bitset.CountCommon(st.adjacent, byColor[c])
		if numAdj == 0 {
			continue
		}
		if numAdj == bitset.CountOnlyInFirst(byColor[c], st.owned) {
			return append(cands[:0], c)
		}
		cands = append(cands, c)
	}
	return cands
}

// expand builds the child state of st after drenching with c.
func expand(st *searchState, c color.Color, g *islands.Graph, byColor *[color.Num]bitset.Set) *searchState {
	active := bitset.Intersection(st.adjacent, byColor[c])

	owned := bitset.Union(st.owned, active)
	adjacent := st.adjacent
	it := active.Iter()
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		adjacent.UnionWith(g.Nodes[id].Adjacent)
	}
	adjacent.Without(owned)

	moves := make(Solution, len(st.moves)+1)
	copy(moves, st.moves)
	moves[len(st.moves)] = c

	return &searchState{moves: moves, owned: owned, adjacent: adjacent}
}
