package Trees

import (
	"errors"
	"fmt"
)

// ErrNotSupported is returned by the traversals LinkedBST doesn't provide.
var ErrNotSupported = errors.New("traversal not supported")

// KeyError is returned when removing a key that isn't in the tree.
type KeyError[T any] struct {
	Key T
}

func (e *KeyError[T]) Error() string {
	return fmt.Sprintf("key %v not in tree", e.Key)
}
