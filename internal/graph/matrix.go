package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/socialgridgo/internal/ctxlog"
	"github.com/vk/socialgridgo/internal/model"
)

// ErrUnknownIdentifier reports a follows entry that points outside the
// collection. The dataset names a user that does not exist, so no meaningful
// matrix can be built from it.
var ErrUnknownIdentifier = errors.New("follows entry references an unknown identifier")

// Matrix is the immutable follower adjacency matrix for one collection.
type Matrix struct {
	cells [][]bool
	n     int
}

// Build derives the adjacency matrix from every record's follows list. Each
// entry must name an identifier the collection actually holds; anything
// outside 1..N fails the build rather than being silently dropped.
func Build(ctx context.Context, col *model.Collection) (*Matrix, error) {
	logger := ctxlog.FromContext(ctx)

	n := col.Len()
	cells := make([][]bool, n)
	for i := range cells {
		cells[i] = make([]bool, n)
	}

	for _, u := range col.Users() {
		for _, followed := range u.Follows() {
			if followed < 1 || followed > n {
				return nil, fmt.Errorf("%w: user %d follows %d, but the collection holds identifiers 1..%d",
					ErrUnknownIdentifier, u.ID(), followed, n)
			}
			cells[u.ID()-1][followed-1] = true
		}
	}

	logger.Debug("Relationship matrix built.", "users", n)
	return &Matrix{cells: cells, n: n}, nil
}

// Size returns N, the number of users the matrix covers.
func (m *Matrix) Size() int {
	return m.n
}

// IsFollowing reports whether follower follows followed. Identifiers are
// 1-based; an argument outside 1..N is a programming error and panics.
func (m *Matrix) IsFollowing(follower, followed int) bool {
	m.mustBeInRange(follower)
	m.mustBeInRange(followed)
	return m.cells[follower-1][followed-1]
}

// FollowersAndMutuals returns the identifiers of users following id, and the
// subset of those that id follows back. Both lists scan identifiers 1..N in
// ascending order and never include id itself, so repeated calls yield
// identical results. A recorded self-follow is ignored here by construction.
func (m *Matrix) FollowersAndMutuals(id int) (followers, mutuals []int) {
	m.mustBeInRange(id)

	for other := 1; other <= m.n; other++ {
		if other == id {
			continue
		}
		if !m.IsFollowing(other, id) {
			continue
		}
		followers = append(followers, other)
		if m.IsFollowing(id, other) {
			mutuals = append(mutuals, other)
		}
	}
	return followers, mutuals
}

func (m *Matrix) mustBeInRange(id int) {
	if id < 1 || id > m.n {
		panic(fmt.Sprintf("graph: identifier %d out of range 1..%d", id, m.n))
	}
}
