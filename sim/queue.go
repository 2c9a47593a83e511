// Implements the ReadyQueue, the FIFO discipline behind Round Robin.
// Tasks are enqueued on arrival and re-enqueued after an unfinished quantum.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is a FIFO queue of tasks waiting for their next quantum.
// Round Robin's fairness contract lives in the enqueue order: arrivals
// admitted during a slice go in ahead of the preempted incumbent.
type ReadyQueue struct {
	queue []*Task
}

// Enqueue adds a task to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(t *Task) {
	rq.queue = append(rq.queue, t)
}

// Dequeue removes and returns the task at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Task {
	if len(rq.queue) == 0 {
		return nil
	}
	head := rq.queue[0]
	rq.queue = rq.queue[1:]
	return head
}

// Peek returns the front task without removing it, or nil when empty.
func (rq *ReadyQueue) Peek() *Task {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of tasks in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, t := range rq.queue {
		sb.WriteString(fmt.Sprintf("T%d", t.ID))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
