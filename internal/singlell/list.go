// Package singlell implements a singly linked list that tracks both ends.
package singlell

import (
	"github.com/lueurxax/linked-list/internal/log"
)

type LinkedList[T comparable] interface {
	// Add appends v after the current tail.
	Add(v T)
	// Remove unlinks the first node holding v. It returns ErrEmptyList or
	// ErrNotFound when nothing was removed.
	Remove(v T) error
	// Print emits every value from head to tail through p.
	Print(p Printer) error
	Len() int
	Head() (T, bool)
	Tail() (T, bool)
	Values() []T
	// Range calls fn for each value in order until fn returns false.
	Range(fn func(v T) bool)
}

type node[T comparable] struct {
	next  *node[T]
	value T
}

type linkedList[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int

	log log.Logger
}

func (l *linkedList[T]) Add(v T) {
	n := &node[T]{value: v}
	l.size++

	if l.head == nil {
		l.head = n
		l.tail = n

		return
	}

	l.tail.next = n
	l.tail = n
}

func (l *linkedList[T]) Remove(v T) error {
	if l.head == nil {
		l.log.Debug(ErrEmptyList.Error())

		return ErrEmptyList
	}

	var prev *node[T]

	n := l.head
	for n.value != v {
		if n.next == nil {
			l.log.WithField(valueKey, v).Trace("nothing to remove")

			return ErrNotFound
		}

		prev = n
		n = n.next
	}

	switch {
	case n == l.head && n == l.tail:
		l.log.Debug("removing the only node in the list")
		l.head = nil
		l.tail = nil
	case n == l.tail:
		l.log.Debug("removing the last node from the list")
		prev.next = nil
		l.tail = prev
	case n == l.head:
		l.log.Debug("removing the first node from the list")
		l.head = n.next
	default:
		prev.next = n.next
	}

	// the excised node must not keep the rest of the chain reachable
	n.next = nil
	l.size--

	return nil
}

func (l *linkedList[T]) Print(p Printer) error {
	if l.head == nil {
		return p.PrintEmpty()
	}

	for n := l.head; n != nil; n = n.next {
		if err := p.PrintValue(n.value); err != nil {
			return err
		}
	}

	return p.PrintSeparator()
}

func (l *linkedList[T]) Len() int {
	return l.size
}

func (l *linkedList[T]) Head() (T, bool) {
	if l.head == nil {
		var result T
		return result, false
	}

	return l.head.value, true
}

func (l *linkedList[T]) Tail() (T, bool) {
	if l.tail == nil {
		var result T
		return result, false
	}

	return l.tail.value, true
}

func (l *linkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}

	return values
}

func (l *linkedList[T]) Range(fn func(v T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// New returns an empty list. Removal notices are written to logger at debug level.
func New[T comparable](logger log.Logger) LinkedList[T] {
	return &linkedList[T]{log: logger}
}
