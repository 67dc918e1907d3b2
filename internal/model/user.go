// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the User record, the atomic unit of a network dataset.
//
// Why guard the accessors?
//
// A record that never received its mandatory attributes carries no usable
// identity. Handing out a zero identifier or an empty name would poison
// every structure built from it (matrix rows, page names, link targets), so
// an invalid record answers only IsValid. Everything else is a programming
// error and panics, which keeps the failure at the call site that skipped
// validation instead of surfacing pages later as a broken link.
package model

import (
	"cmp"
	"fmt"
	"slices"
)

// DefaultPictureURL is assigned to any record whose pic_url attribute was
// absent or empty, so every rendered profile page carries an image.
const DefaultPictureURL = "https://i.pinimg.com/236x/1c/8b/b2/1c8bb212c3fac9c3393b663c0ed9f6cb.jpg"

// User is a single member record. The zero value is invalid.
type User struct {
	id       int
	name     string
	location string
	picURL   string
	follows  []int
}

// NewUser constructs a record from raw attribute values. An absent or empty
// picture URL is replaced with DefaultPictureURL exactly once, here, so the
// default never masks a value that arrives later. The follows slice is owned
// by the new record; callers must not retain it.
func NewUser(id int, name, location, picURL string, follows []int) User {
	if picURL == "" {
		picURL = DefaultPictureURL
	}
	return User{
		id:       id,
		name:     name,
		location: location,
		picURL:   picURL,
		follows:  follows,
	}
}

// IsValid reports whether the record carries the two mandatory attributes:
// a positive identifier and a non-empty name.
func (u User) IsValid() bool {
	return u.id > 0 && u.name != ""
}

// mustBeValid aborts on any accessor use before validation has passed.
func (u User) mustBeValid() {
	if !u.IsValid() {
		panic(fmt.Sprintf("model: accessor called on invalid user record (id=%d, name=%q)", u.id, u.name))
	}
}

// ID returns the record's identifier. Panics on an invalid record.
func (u User) ID() int {
	u.mustBeValid()
	return u.id
}

// Name returns the record's display name. Panics on an invalid record.
func (u User) Name() string {
	u.mustBeValid()
	return u.name
}

// Location returns the record's location, or "" when it was never set.
// Panics on an invalid record.
func (u User) Location() string {
	u.mustBeValid()
	return u.location
}

// PictureURL returns the record's profile picture URL. It is never empty on
// a valid record. Panics on an invalid record.
func (u User) PictureURL() string {
	u.mustBeValid()
	return u.picURL
}

// Follows returns a copy of the identifiers this record follows, in the
// order the dataset listed them, duplicates included. Panics on an invalid
// record.
func (u User) Follows() []int {
	u.mustBeValid()
	return slices.Clone(u.follows)
}

// CompareByID orders two records by ascending identifier. Ordering is a
// property of the collection, not of the record, so it lives in a named
// comparator rather than on the type.
func CompareByID(a, b User) int {
	return cmp.Compare(a.id, b.id)
}
