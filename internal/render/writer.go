package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/vk/socialgridgo/internal/ctxlog"
	"github.com/vk/socialgridgo/internal/fsutil"
	"github.com/vk/socialgridgo/internal/graph"
	"github.com/vk/socialgridgo/internal/model"
)

// Writer renders a collection's site into one output directory.
type Writer struct {
	dir   string
	title string
}

// NewWriter binds a writer to its output directory and site title.
func NewWriter(dir, title string) *Writer {
	return &Writer{dir: dir, title: title}
}

// WriteSite renders index.html plus one userN.html per record. Generation
// refuses an empty collection outright; every other failure is an I/O or
// template error wrapped with the page it broke on.
func (w *Writer) WriteSite(ctx context.Context, col *model.Collection, m *graph.Matrix) error {
	logger := ctxlog.FromContext(ctx)

	if col == nil || col.Len() == 0 {
		return fmt.Errorf("cannot generate site pages: %w", model.ErrEmptyCollection)
	}
	if err := fsutil.EnsureDir(w.dir); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", w.dir, err)
	}

	names := col.Names()
	if err := w.writeIndex(names); err != nil {
		return err
	}
	logger.Debug("Index page written.", "users", col.Len())

	for _, u := range col.Users() {
		followers, mutuals := m.FollowersAndMutuals(u.ID())
		if err := w.writeProfile(u, names, followers, mutuals); err != nil {
			return err
		}
		logger.Debug("Profile page written.", "id", u.ID(), "followers", len(followers), "mutuals", len(mutuals))
	}
	return nil
}

// writeIndex renders the ordered member list.
func (w *Writer) writeIndex(names []string) error {
	users := make([]userLink, len(names))
	for i, name := range names {
		users[i] = userLink{ID: i + 1, Name: name}
	}
	return w.writePage("index.html", indexTemplate, indexData{Title: w.title, Users: users})
}

// writeProfile renders one member's page. The page needs nothing beyond the
// record itself, the name-by-identifier list, and the two derived id lists.
func (w *Writer) writeProfile(u model.User, names []string, followers, mutuals []int) error {
	data := profileData{
		SiteTitle:  w.title,
		Name:       u.Name(),
		Location:   u.Location(),
		PictureURL: u.PictureURL(),
		Follows:    userList{Heading: "Follows", Links: links(u.Follows(), names)},
		Followers:  userList{Heading: "Followers", Links: links(followers, names)},
		Mutuals:    userList{Heading: "Mutuals", Links: links(mutuals, names)},
	}
	return w.writePage(pageName(u.ID()), profileTemplate, data)
}

func (w *Writer) writePage(name string, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// pageName returns the profile file name for an identifier, the same name
// every link in the site uses.
func pageName(id int) string {
	return fmt.Sprintf("user%d.html", id)
}

// links resolves identifiers to link labels. Order and duplicates of ids are
// preserved; identifiers are trusted to be in range because both the
// collection and the matrix validated them.
func links(ids []int, names []string) []userLink {
	if len(ids) == 0 {
		return nil
	}
	out := make([]userLink, len(ids))
	for i, id := range ids {
		out[i] = userLink{ID: id, Name: names[id-1]}
	}
	return out
}
