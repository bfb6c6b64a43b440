package task

import "sync"

// Task is one deferred unit of work. It runs at most once.
type Task struct {
	code func()
}

func New(code func()) *Task {
	return &Task{code: code}
}

func (t *Task) Run() {
	if t.code != nil {
		t.code()
		t.code = nil
	}
}

// Queue collects tasks posted from any goroutine and hands them over to
// the thread that pumps the window. There is no worker of its own: the
// pump drains it between frames.
type Queue struct {
	mu    sync.Mutex
	tasks []*Task
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Post(t *Task) {
	q.mu.Lock()
	q.tasks = append(q.tasks, t)
	q.mu.Unlock()
}

// Drain removes and returns all pending tasks in posting order.
func (q *Queue) Drain() []*Task {
	q.mu.Lock()
	pending := q.tasks
	q.tasks = nil
	q.mu.Unlock()
	return pending
}

func (q *Queue) Clear() {
	q.mu.Lock()
	q.tasks = nil
	q.mu.Unlock()
}
