package transform

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// selfName is the target's instance-reference convention; the source's
// reserved self-reference maps onto it.
const selfName = "self"

// unitArgName is the synthetic placeholder parameter given to zero-parameter
// closures so they stay uniformly callable.
const unitArgName = "_unit"

// NameGenerator produces collision-free identifiers for lifted helper
// functions. The counter is monotonic for the lifetime of one translator
// and never resets mid-file.
type NameGenerator struct {
	next int
}

// Next returns a fresh synthetic identifier with the given prefix.
func (g *NameGenerator) Next(prefix string) string {
	g.next++
	return fmt.Sprintf("_%s_%d", prefix, g.next)
}

// targetKeywords are identifiers that collide with target-language keywords
// and get a disambiguating suffix.
var targetKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true,
	"class": true, "continue": true, "def": true, "del": true, "elif": true,
	"else": true, "except": true, "finally": true, "for": true, "from": true,
	"global": true, "if": true, "import": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "return": true, "try": true, "while": true, "with": true,
	"yield": true,
}

// cleanName rewrites a source identifier into a legal target identifier:
// the reserved self-reference maps to the instance-reference convention,
// keyword collisions get a trailing underscore, and illegal characters are
// substituted.
func cleanName(name string) string {
	if name == "this" {
		return selfName
	}
	var sb strings.Builder
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			sb.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	cleaned := sb.String()
	if cleaned == "" {
		cleaned = "_"
	}
	if targetKeywords[cleaned] {
		cleaned += "_"
	}
	return cleaned
}

// memberName rewrites a non-computed, non-intrinsic member name to the
// target naming convention.
func memberName(name string) string {
	return strcase.ToSnake(cleanName(name))
}
