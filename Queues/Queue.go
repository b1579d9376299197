package Queues

// Queue is a FIFO buffer.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns *EmptyQueueError if the queue is empty.
	Pop() (T, error)
	//Peek the oldest item without removing it.
	Peek() (T, error)
	Empty() bool
	Size() int
}

type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	resize(newLen int)
}

// Stack is a LIFO buffer.
type Stack[T any] interface {
	Push(item T)
	//Pop the newest item. Returns *EmptyStackError if the stack is empty.
	Pop() (T, error)
	//Peek the newest item without removing it.
	Peek() (T, error)
	Empty() bool
	Size() int
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}
