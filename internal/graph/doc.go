// Package graph derives who-follows-whom relationships from a user
// collection. The whole network lives in one N×N boolean adjacency matrix:
// cell (i, j) records that the user holding identifier i+1 follows the user
// holding identifier j+1.
//
// Why a full matrix?
//
// The matrix serves the two lookups the site renderer actually performs:
// "does A follow B" is one cell read, and "who follows X, and whom of those
// does X follow back" is one column scan paired with one row scan. Follower
// queries cost O(N) each and O(N²) across a whole render, which is the
// expected scale of this tool.
//
// The matrix is immutable after Build and stores booleans only; it never
// holds references back into the collection it was derived from.
package graph
