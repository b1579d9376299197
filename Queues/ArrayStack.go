package Queues

import "github.com/emirpasic/gods/stacks/arraystack"

// arrStack adapts gods' arraystack, which stores interface{} values, to Stack[T].
type arrStack[T any] struct {
	st *arraystack.Stack
}

// MakeArrayStack returns a stack backed by a growable array.
func MakeArrayStack[T any]() Stack[T] {
	return &arrStack[T]{arraystack.New()}
}

func (u *arrStack[T]) Push(item T) {
	u.st.Push(item)
}

func (u *arrStack[T]) Pop() (T, error) {
	if v, ok := u.st.Pop(); ok {
		return v.(T), nil
	}
	return *new(T), &EmptyStackError{}
}

func (u *arrStack[T]) Peek() (T, error) {
	if v, ok := u.st.Peek(); ok {
		return v.(T), nil
	}
	return *new(T), &EmptyStackError{}
}

func (u *arrStack[T]) Empty() bool {
	return u.st.Empty()
}

func (u *arrStack[T]) Size() int {
	return u.st.Size()
}
