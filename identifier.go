package fader

import (
	"fmt"
	"strings"
)

type identKind uint8

const (
	identUndefined identKind = iota
	identAll
	identKey
	identName
	identTag
	identRef
	identMany
)

// Identifier addresses one or more faders in a Manager. The zero Identifier
// is undefined and resolves to nothing, with a warning.
type Identifier struct {
	kind identKind
	s    string
	ref  Target
	many []Identifier
}

// Key matches faders whose name is s and faders tagged s.
func Key(s string) Identifier { return Identifier{kind: identKey, s: s} }

// Name matches faders whose name is s.
func Name(s string) Identifier { return Identifier{kind: identName, s: s} }

// Tag matches faders tagged s.
func Tag(s string) Identifier { return Identifier{kind: identTag, s: s} }

// Ref matches every fader bound to target t.
func Ref(t Target) Identifier { return Identifier{kind: identRef, ref: t} }

// Many matches the union of ids.
func Many(ids ...Identifier) Identifier { return Identifier{kind: identMany, many: ids} }

// Keys is Many over Key(s) for each string.
func Keys(ss ...string) Identifier {
	ids := make([]Identifier, len(ss))
	for i, s := range ss {
		ids[i] = Key(s)
	}
	return Many(ids...)
}

// All matches every registered fader.
func All() Identifier { return Identifier{kind: identAll} }

// IsZero reports whether id is the undefined identifier.
func (id Identifier) IsZero() bool { return id.kind == identUndefined }

func (id Identifier) String() string {
	switch id.kind {
	case identAll:
		return "all"
	case identKey:
		return fmt.Sprintf("%q", id.s)
	case identName:
		return fmt.Sprintf("name:%q", id.s)
	case identTag:
		return fmt.Sprintf("tag:%q", id.s)
	case identRef:
		if n := targetName(id.ref); n != "" {
			return fmt.Sprintf("ref:%q", n)
		}
		return "ref"
	case identMany:
		parts := make([]string, len(id.many))
		for i, sub := range id.many {
			parts[i] = sub.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "undefined"
}
