package Queues

type circArrQ[T any] struct {
	sz, head, tail int
	content        []T
}

// MakeArrayQueue returns a circular array queue. initCap is raised to 1 if it's smaller.
func MakeArrayQueue[T any](initCap int) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, max(initCap, 1))}
}

func (this *circArrQ[T]) Empty() bool {
	return this.sz == 0
}

func (this *circArrQ[T]) resize(newLen int) {
	nc := make([]T, newLen)
	if this.head < this.tail {
		copy(nc, this.content[this.head:this.tail])
	} else if this.sz > 0 {
		n := copy(nc, this.content[this.head:])
		copy(nc[n:], this.content[:this.tail])
	}
	this.head, this.tail = 0, this.sz%newLen
	this.content = nc
}

// Shrink the underlying array to the current size.
func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *circArrQ[T]) Size() int {
	return this.sz
}

// Push item to the tail. Grows the array by 1.5x when it's full.
// Time: amortized O(1)
func (this *circArrQ[T]) Push(item T) {
	if this.sz == len(this.content) {
		this.resize(this.sz*3/2 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % len(this.content)
	this.sz++
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % len(this.content)
		this.sz--
		return t, nil
	}
}

func (this *circArrQ[T]) Peek() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		return this.content[this.head], nil
	}
}
