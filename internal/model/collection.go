// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Collection, the ordered roster of user records.
//
// Why sort lazily?
//
// Real datasets almost always list records in identifier order, so the
// assembly pass only flags whether any record sat away from its expected
// position and sorts once, afterwards, if the flag tripped. The sort is a
// stable one driven by the CompareByID comparator, so equal identifiers
// (which the dense check will reject anyway) cannot be reordered into a
// misleading error message.
package model

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmptyCollection reports a dataset that produced zero records.
	// Nothing downstream can be derived from an empty roster.
	ErrEmptyCollection = errors.New("collection contains no user records")

	// ErrSparseIdentifiers reports a roster whose identifiers do not form
	// the dense range 1..N after sorting.
	ErrSparseIdentifiers = errors.New("user identifiers must form a dense 1..N range")
)

// Collection is the full roster of user records, ordered ascending by
// identifier. Position i always holds identifier i+1. It is immutable after
// construction.
type Collection struct {
	users []User
}

// NewCollection assembles a roster from parsed records, taking ownership of
// the slice. Records must already have passed IsValid; handing over an
// invalid record is a programming error and panics. The roster is rejected
// when it is empty or when its identifiers are duplicated or gapped.
func NewCollection(records []User) (*Collection, error) {
	if len(records) == 0 {
		return nil, ErrEmptyCollection
	}

	needsSort := false
	for i, u := range records {
		if u.ID() != i+1 {
			needsSort = true
			break
		}
	}
	if needsSort {
		slices.SortStableFunc(records, CompareByID)
	}

	for i, u := range records {
		id := u.ID()
		if i > 0 && id == records[i-1].id {
			return nil, fmt.Errorf("%w: identifier %d appears more than once", ErrSparseIdentifiers, id)
		}
		if id != i+1 {
			return nil, fmt.Errorf("%w: expected identifier %d, found %d", ErrSparseIdentifiers, i+1, id)
		}
	}

	return &Collection{users: records}, nil
}

// Len returns the number of records in the roster.
func (c *Collection) Len() int {
	return len(c.users)
}

// ByID returns the record holding the given identifier. Identifiers are
// 1-based; asking for one outside 1..Len is a programming error and panics.
func (c *Collection) ByID(id int) User {
	if id < 1 || id > len(c.users) {
		panic(fmt.Sprintf("model: identifier %d out of range 1..%d", id, len(c.users)))
	}
	return c.users[id-1]
}

// Users returns the records in identifier order. The slice is a copy; the
// roster itself cannot be reordered through it.
func (c *Collection) Users() []User {
	return slices.Clone(c.users)
}

// Names returns every display name, indexed by identifier-1. Rendering uses
// this to label links without handing whole records around.
func (c *Collection) Names() []string {
	names := make([]string, len(c.users))
	for i, u := range c.users {
		names[i] = u.name
	}
	return names
}
