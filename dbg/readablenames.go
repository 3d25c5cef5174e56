// Package dbg turns arena ids into random readable names, the way the
// teacher's readablenames.go turned raw pointers into readable names. Names
// are nondeterministic on purpose, as a reminder that the same name doesn't
// refer to the same id between runs; it flagrantly leaks memory but
// generates lazily, so it's not a problem unless you're actually using it.
package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

type key struct {
	kind string
	id   int
}

var memo map[key]string

func init() {
	memo = make(map[key]string)
	petname.NonDeterministicMode()
}

// Name returns a readable name for (kind, id) — e.g. Name("trap", 3) might
// return "QuietMarlin". kind is a short tag ("trap", "node", "edge") used
// only to keep ids from different arenas from colliding in the memo; no id
// here is ever nil the way a pointer could be, since -1 ("absent") is
// handled separately by callers via the ok return from their own lookups.
func Name(kind string, id int) string {
	k := key{kind: kind, id: id}
	if r, ok := memo[k]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[k] = r
	return r
}
