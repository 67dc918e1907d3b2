// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory representation of a social network
// dataset: the user records parsed from a network file and the ordered
// collection they form. Its core purpose is to turn loosely structured
// attribute data into strongly-typed, validated records that the rest of
// the pipeline can trust without re-checking.
//
// # Core Concepts
//
// The model is built around two structures:
//
//   - User: a single member record. It owns the five recognized attributes
//     (identifier, name, location, picture URL, follows list) and the
//     validity contract: a record is usable only when it carries a positive
//     identifier and a non-empty name. Accessors enforce that contract
//     loudly rather than returning garbage.
//
//   - Collection: the full roster, ordered ascending by identifier. It is
//     assembled exactly once, sorts itself only when the input arrived out
//     of order, and rejects rosters whose identifiers do not form a dense
//     1..N range.
//
// Why enforce dense identifiers?
//
// Every derived structure downstream (the relationship matrix, the name
// lookup used by page rendering, the userN.html file naming) indexes users
// by position and addresses them by identifier. Those two views are only
// interchangeable when identifier i sits at position i-1. Rather than let a
// sparse roster silently corrupt follower lookups, the Collection refuses
// to exist in that state.
package model
