package asm

// Task is a deferred patch action run once emission is complete and every
// Block has been resolved. A Task's execution rule is: if the promise it
// depends on is already resolved, patch immediately; otherwise attach a
// listener that patches on resolution.
type Task interface {
	Run(c *Context)
}

// taskNode links Tasks into the singly linked list owned by Context. Tasks
// are always prepended, so Run sees them in reverse insertion order; this
// is safe because distinct tasks patch disjoint instruction slots (spec.md
// §5 Ordering).
type taskNode struct {
	task Task
	next *taskNode
}

// AppendTask prepends t to the Context's task list. The node itself is
// allocated through the Context's Zone, matching arm.cpp's
// zone->allocate(sizeof(TaskNode)) call sites.
func (c *Context) AppendTask(t Task) {
	node := Allocate[taskNode](c.Zone)
	node.task = t
	node.next = c.tasks
	c.tasks = node
}

// RunTasks executes every queued task against the resolved Context. Called
// once, by WriteTo, after every Block has been resolved.
func (c *Context) RunTasks() {
	for n := c.tasks; n != nil; n = n.next {
		n.task.Run(c)
	}
}
