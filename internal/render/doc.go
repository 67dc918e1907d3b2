// Package render writes the static HTML site derived from a user
// collection: one index.html listing every member and one userN.html
// profile page per member, where N is the member's identifier.
//
// Page structure is deliberately plain (headings, ordered and unordered
// link lists, a profile image) so the output stays inspectable by eye and
// trivially diffable in tests. All dynamic values pass through
// html/template's contextual escaping; dataset text can never inject markup
// into the generated pages.
package render
