package engine

import (
	"container/heap"
	"time"
)

// TaskFunc runs a scheduled task at game time now
// Periodic tasks stop repeating when it returns false; one-shots ignore the result
type TaskFunc func(now time.Duration) bool

// TaskID identifies a scheduled task for cancellation
type TaskID uint64

// Task is one entry of the deterministic queue
type Task struct {
	ID       TaskID
	Name     string
	Due      time.Duration
	Priority int
	Interval time.Duration // 0 = one-shot
	Round    RoundID       // empty = global, survives resets
	Fn       TaskFunc

	seq   uint64
	index int
}

// TaskQueue orders tasks by (due, priority, insertion sequence)
// Not thread-safe, owned by Game under its mutex
type TaskQueue struct {
	h      taskHeap
	byID   map[TaskID]*Task
	nextID TaskID
	seq    uint64
}

// NewTaskQueue creates an empty queue
func NewTaskQueue() *TaskQueue {
	return &TaskQueue{byID: make(map[TaskID]*Task)}
}

// Schedule inserts t and returns its ID
func (q *TaskQueue) Schedule(t *Task) TaskID {
	q.nextID++
	t.ID = q.nextID
	q.push(t)
	return t.ID
}

// reschedule re-inserts a popped periodic task one interval later, keeping its ID
func (q *TaskQueue) reschedule(t *Task) {
	t.Due += t.Interval
	q.push(t)
}

func (q *TaskQueue) push(t *Task) {
	q.seq++
	t.seq = q.seq
	heap.Push(&q.h, t)
	q.byID[t.ID] = t
}

// Cancel removes a pending task, reporting whether it was found
func (q *TaskQueue) Cancel(id TaskID) bool {
	t, ok := q.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&q.h, t.index)
	delete(q.byID, id)
	return true
}

// CancelRound removes every pending task bound to round
// Returns the number of tasks removed
func (q *TaskQueue) CancelRound(round RoundID) int {
	if round == "" {
		return 0
	}
	n := 0
	for id, t := range q.byID {
		if t.Round == round {
			heap.Remove(&q.h, t.index)
			delete(q.byID, id)
			n++
		}
	}
	return n
}

// PopDue removes and returns the next task due at or before now, nil if none
func (q *TaskQueue) PopDue(now time.Duration) *Task {
	if len(q.h) == 0 || q.h[0].Due > now {
		return nil
	}
	t := heap.Pop(&q.h).(*Task)
	delete(q.byID, t.ID)
	return t
}

// NextDue returns the earliest due time
func (q *TaskQueue) NextDue() (time.Duration, bool) {
	if len(q.h) == 0 {
		return 0, false
	}
	return q.h[0].Due, true
}

// Pending reports whether a task with id is still queued
func (q *TaskQueue) Pending(id TaskID) bool {
	_, ok := q.byID[id]
	return ok
}

// Len returns the number of pending tasks
func (q *TaskQueue) Len() int {
	return len(q.h)
}

type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Due != b.Due {
		return a.Due < b.Due
	}
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.seq < b.seq
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*Task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
