package sched

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Handle is a stable index into a TaskTable. Run queues and the running
// slot of a CPU hold handles, so every task has exactly one owner.
type Handle int

// NoHandle is returned when a lookup or insert fails.
const NoHandle Handle = -1

// TaskTable is the arena holding every task of a simulation, idle tasks included.
type TaskTable struct {
	tasks []*Task
	byID  *redblacktree.Tree // TaskID -> Handle, user tasks only
}

func NewTaskTable() *TaskTable {
	return &TaskTable{byID: redblacktree.NewWith(cmpTaskID)}
}

// Insert adds a user task and returns its handle.
func (tt *TaskTable) Insert(t *Task) (Handle, error) {
	if t.ID == IdleTaskID {
		return NoHandle, fmt.Errorf("task id %d is reserved for idle tasks", IdleTaskID)
	}
	if _, dup := tt.byID.Get(t.ID); dup {
		return NoHandle, fmt.Errorf("task %d already exists", t.ID)
	}

	h := tt.push(t)
	tt.byID.Put(t.ID, h)
	return h, nil
}

// insertIdle adds an idle task. Idle tasks all share IdleTaskID and are
// therefore not indexed by id.
func (tt *TaskTable) insertIdle(t *Task) Handle {
	return tt.push(t)
}

func (tt *TaskTable) push(t *Task) Handle {
	tt.tasks = append(tt.tasks, t)
	return Handle(len(tt.tasks) - 1)
}

// Get returns the task behind h. It panics on a handle the table never issued.
func (tt *TaskTable) Get(h Handle) *Task {
	return tt.tasks[h]
}

// Lookup finds a user task by id.
func (tt *TaskTable) Lookup(id TaskID) (Handle, bool) {
	v, ok := tt.byID.Get(id)
	if !ok {
		return NoHandle, false
	}
	return v.(Handle), true
}

// Len is the number of user tasks.
func (tt *TaskTable) Len() int { return tt.byID.Size() }

// Each visits the user tasks in ascending id order.
func (tt *TaskTable) Each(fn func(h Handle, t *Task)) {
	it := tt.byID.Iterator()
	for it.Next() {
		h := it.Value().(Handle)
		fn(h, tt.tasks[h])
	}
}

// cmpTaskID orders the id index of the table.
func cmpTaskID(a, b any) int {
	ia, ib := a.(TaskID), b.(TaskID)
	switch {
	case ia < ib:
		return -1
	case ia > ib:
		return 1
	default:
		return 0
	}
}
