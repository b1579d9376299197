package Queues

type node[T any] struct {
	v  T
	nx *node[T]
}

type linkedStack[T any] struct {
	head *node[T]
	sz   int
}

// MakeLinkedStack returns a stack made of singly linked nodes. Each Push allocates one node.
func MakeLinkedStack[T any]() Stack[T] {
	return &linkedStack[T]{}
}

func (c *linkedStack[T]) Push(item T) {
	c.head = &node[T]{item, c.head}
	c.sz++
}

func (c *linkedStack[T]) Pop() (T, error) {
	if c.head == nil {
		return *new(T), &EmptyStackError{}
	}
	top := c.head
	c.head, top.nx = top.nx, nil
	c.sz--
	return top.v, nil
}

func (c *linkedStack[T]) Peek() (T, error) {
	if c.head == nil {
		return *new(T), &EmptyStackError{}
	}
	return c.head.v, nil
}

func (c *linkedStack[T]) Empty() bool {
	return c.head == nil
}

func (c *linkedStack[T]) Size() int {
	return c.sz
}
