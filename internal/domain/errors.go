package domain

import (
	"errors"
	"fmt"
)

// ErrAlreadyDone signals an auto-solve request on a solved state.
var ErrAlreadyDone = errors.New("puzzle already solved")

// UnstableStackError reports an attempt to place a disk on a smaller
// top disk. The state is unchanged.
type UnstableStackError struct {
	Peg  Peg
	Disk Disk
}

func (e *UnstableStackError) Error() string {
	return fmt.Sprintf("disk %d cannot rest on the smaller top of %v", e.Disk, e.Peg)
}

// EmptyPegError reports a pop from a peg with no disks.
type EmptyPegError struct {
	Peg Peg
}

func (e *EmptyPegError) Error() string {
	return fmt.Sprintf("%v peg is empty", e.Peg)
}

// EmptyFromError reports a move whose source peg has no disks.
type EmptyFromError struct {
	Peg Peg
}

func (e *EmptyFromError) Error() string {
	return fmt.Sprintf("cannot move from empty %v peg", e.Peg)
}
