// File: internal/worker/worker.go
package worker

import "sync"

// Task is a queued unit of background work, typically cache upkeep
// triggered by a write path that must not block the response.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines.
type Pool interface {
	Submit(Task)
	Stop()
}

type pool struct {
	tasks  chan Task
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

// NewPool starts n goroutines draining a shared task queue. n<=0 is
// treated as a single worker.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{tasks: make(chan Task, 64)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.drain()
	}
	return p
}

func (p *pool) drain() {
	defer p.wg.Done()
	for task := range p.tasks {
		if task != nil {
			task()
		}
	}
}

// Submit enqueues a task. Tasks submitted after Stop are dropped.
func (p *pool) Submit(t Task) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.tasks <- t
}

// Stop closes the queue and waits for in-flight tasks to finish.
// Calling Stop twice is safe.
func (p *pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()
	p.wg.Wait()
}
