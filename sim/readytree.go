package sim

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// treeKey orders the SRTF ready set. Remaining time changes tick by tick, so
// the running task is removed and reinserted around each decrement; arrival
// and ID pin down a total order for equal remaining times.
type treeKey struct {
	remaining int64
	arrival   int64
	id        int
}

func treeCmp(a, b any) int {
	ka, kb := a.(treeKey), b.(treeKey)
	switch {
	case ka.remaining < kb.remaining:
		return -1
	case ka.remaining > kb.remaining:
		return 1
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}

func keyOf(t *Task) treeKey {
	return treeKey{remaining: t.Remaining, arrival: t.Arrival, id: t.ID}
}

// readyTree holds the arrived, unfinished tasks of an SRTF run ordered by
// (remaining, arrival, ID). Min is the task the policy dispatches next.
type readyTree struct {
	rbt *redblacktree.Tree
}

func newReadyTree() *readyTree {
	return &readyTree{rbt: redblacktree.NewWith(treeCmp)}
}

// Insert adds a task under its current remaining time.
func (rt *readyTree) Insert(t *Task) {
	rt.rbt.Put(keyOf(t), t)
}

// Remove drops a task keyed by its current remaining time. Callers must
// remove before mutating Remaining and reinsert after.
func (rt *readyTree) Remove(t *Task) {
	rt.rbt.Remove(keyOf(t))
}

// Min returns the task with the least (remaining, arrival, ID) key, or nil
// when the tree is empty.
func (rt *readyTree) Min() *Task {
	node := rt.rbt.Left()
	if node == nil {
		return nil
	}
	return node.Value.(*Task)
}

// Len returns the number of tasks in the tree.
func (rt *readyTree) Len() int {
	return rt.rbt.Size()
}
