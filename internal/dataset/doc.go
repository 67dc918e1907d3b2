// Package dataset parses network dataset files: a rigid, line-oriented text
// format that resembles JSON but is not JSON. A dataset is one top-level
// list of user records. Each record is a flat sequence of quoted attribute
// pairs, one per line, terminated by a tab sentinel before its closing
// brace:
//
//	[
//	{
//	"id_str" : "1"
//	,"name" : "Brandon"
//	,"location" : "Rohnert Park"
//	,"pic_url" : "https://example.com/brandon.jpg"
//	,"follows" : ["2","3"]
//		}
//	,
//	{
//	...
//		}
//	]
//
// The grammar is positional, not structural: titles and scalar values are
// quote-delimited, array values are bracket-delimited, exactly one separator
// byte follows each pair, and a peeked tab ends the record. General JSON
// (escapes, nesting, arbitrary ordering of whitespace) is deliberately out
// of scope.
//
// Parsing is all-or-nothing. The first malformed byte, unknown attribute
// title, empty value, or non-numeric identifier fails the whole load; there
// is no skipping, no retry, and no partially populated collection.
package dataset
