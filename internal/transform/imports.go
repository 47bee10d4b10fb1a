package transform

import (
	"path"
	"strings"

	"fable/internal/ast"
	"fable/internal/errors"
	"fable/internal/py"
)

// libraryPathMarker is the path convention identifying the runtime library:
// matching module paths are rewritten to a canonical dotted name under
// libraryNamespace.
const (
	libraryPathMarker = "fable-library"
	libraryNamespace  = "fable"
)

type importKey struct {
	module string
	name   string
}

type importEntry struct {
	module string
	name   string // empty for a whole-module import
	alias  string
}

// localName is the identifier the rest of the file uses for this entry.
func (e *importEntry) localName() string {
	if e.alias != "" {
		return e.alias
	}
	if e.name != "" {
		return e.name
	}
	return e.module
}

// ImportTable deduplicates import entries per (module, imported-name) key
// for the lifetime of one file's translation and materializes the
// accumulated entries on demand.
type ImportTable struct {
	order   []importKey
	entries map[importKey]*importEntry
}

// NewImportTable creates an empty import table.
func NewImportTable() *ImportTable {
	return &ImportTable{entries: make(map[importKey]*importEntry)}
}

// add returns the entry for (module, name), creating it on first request.
// A second request for the same key returns the existing entry without
// emitting a duplicate import.
func (t *ImportTable) add(module, name, alias string) *importEntry {
	key := importKey{module: module, name: name}
	if entry, ok := t.entries[key]; ok {
		return entry
	}
	entry := &importEntry{module: module, name: name, alias: alias}
	t.entries[key] = entry
	t.order = append(t.order, key)
	return entry
}

// statements materializes every accumulated entry in first-request order.
func (t *ImportTable) statements() []py.Stmt {
	stmts := make([]py.Stmt, 0, len(t.order))
	for _, key := range t.order {
		entry := t.entries[key]
		alias := &py.Alias{Name: entry.name, AsName: entry.alias}
		if entry.name == "" {
			alias.Name = entry.module
			stmts = append(stmts, &py.Import{Names: []*py.Alias{alias}})
			continue
		}
		stmts = append(stmts, &py.ImportFrom{Module: entry.module, Names: []*py.Alias{alias}})
	}
	return stmts
}

// rewriteModuleName maps a source module path to a target module name.
// Library paths rewrite to the canonical dotted name; everything else is
// separator-stripped and lower-cased. This is a heuristic over the upstream
// naming convention, not a general module-resolution algorithm.
func rewriteModuleName(source string) string {
	if strings.Contains(source, libraryPathMarker) {
		last := path.Base(source)
		last = strings.TrimSuffix(last, path.Ext(last))
		return libraryNamespace + "." + strings.ToLower(last)
	}
	trimmed := strings.TrimSuffix(source, path.Ext(source))
	trimmed = strings.TrimLeft(trimmed, "./")
	var sb strings.Builder
	for _, r := range trimmed {
		switch r {
		case '/', '\\', ':':
			// separators collapse away
		default:
			sb.WriteRune(r)
		}
	}
	return strings.ToLower(sb.String())
}

// TranslateImports resolves each import specifier into a deduplicated table
// entry. It returns no statements: the program assembler hoists the whole
// table ahead of the translated body regardless of where the import
// declaration appeared in source.
func (t *Transformer) TranslateImports(ctx Context, specs []*ast.ImportSpecifier, source string) []py.Stmt {
	module := rewriteModuleName(source)
	for _, spec := range specs {
		switch spec.Kind {
		case ast.DefaultImport, ast.NamespaceImport:
			alias := cleanName(spec.Local)
			if alias == module {
				alias = ""
			}
			t.imports.add(module, "", alias)
		case ast.NamedImport:
			local := spec.Local
			if local == "" {
				local = spec.Imported
			}
			alias := cleanName(local)
			if alias == spec.Imported {
				alias = ""
			}
			t.imports.add(module, spec.Imported, alias)
		default:
			t.fatalf(spec.Pos, errors.CodeUnknownNode, "unknown import specifier kind %d", spec.Kind)
		}
	}
	return nil
}

// GetImportReference memoizes an aliased import of name from module and
// returns the identifier to reference it by. Requesting the same key twice
// yields the same alias both times.
func (t *Transformer) GetImportReference(ctx Context, name, module string) (py.Expr, bool) {
	if name == "" || module == "" {
		return nil, false
	}
	if ctx.isTypeParam(name) {
		return nil, false
	}
	alias := cleanName(name)
	if alias == name {
		alias = ""
	}
	entry := t.imports.add(rewriteModuleName(module), name, alias)
	return &py.Name{Id: entry.localName()}, true
}

// GetAllImports materializes every import accumulated so far, in
// first-request order.
func (t *Transformer) GetAllImports() []py.Stmt {
	return t.imports.statements()
}
