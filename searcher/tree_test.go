package searcher

import (
	"pacman/game"

	"golang.org/x/exp/rand"
)

// node is a hand-built game tree position. Every agent sees the same children, except ghosts when
// stuck is set.
type node struct {
	value    float64
	terminal bool
	stuck    bool
	children []*node
}

// treeState plays a node tree with a fixed number of agents and counts expansions.
type treeState struct {
	node       *node
	agents     int
	successors *int
}

func newTreeState(root *node, agents int) treeState {
	return treeState{node: root, agents: agents, successors: new(int)}
}

func (s treeState) LegalActions(agent int) []game.Action {
	if s.node.terminal || (agent != game.Pacman && s.node.stuck) {
		return nil
	}
	actions := make([]game.Action, len(s.node.children))
	for i := range s.node.children {
		actions[i] = game.Action(i)
	}
	return actions
}

func (s treeState) Successor(agent int, action game.Action) game.State {
	*s.successors++
	return treeState{node: s.node.children[action], agents: s.agents, successors: s.successors}
}

func (s treeState) NumAgents() int { return s.agents }

func (s treeState) IsWin() bool { return s.node.terminal }

func (s treeState) IsLose() bool { return false }

func (s treeState) Score() float64 { return s.node.value }

func leaves(values ...float64) []*node {
	nodes := make([]*node, len(values))
	for i, v := range values {
		nodes[i] = &node{value: v, terminal: true}
	}
	return nodes
}

// randomTree builds a tree levels deep with 1 to 3 children per node and small integer values so
// that ties are common. Some interior nodes are terminal.
func randomTree(r *rand.Rand, levels int) *node {
	n := &node{value: float64(r.Intn(21) - 10)}
	if levels == 0 {
		return n
	}
	if r.Intn(10) == 0 {
		n.terminal = true
		return n
	}
	n.children = make([]*node, 1+r.Intn(3))
	for i := range n.children {
		n.children[i] = randomTree(r, levels-1)
	}
	return n
}
