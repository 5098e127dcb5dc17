package compiler

import (
	"sort"

	"github.com/chrisgreen1993/expo-native-codegen/internal/ir"
)

// Build validates a resolved declaration set and returns it in
// dependency-first order: every declaration appears after everything it
// references, so an emitter writing top to bottom never forward-references
// an undefined type.
//
// Duplicate names are rejected before the graph is built, and every
// reference must name a declaration in the set. Cycles are detected
// during the depth-first sort, the moment a declaration already on the
// walk stack is revisited.
func Build(decls []ir.Declaration) ([]ir.Declaration, error) {
	index := make(map[string]int, len(decls))
	for i, d := range decls {
		name := d.DeclName()
		if _, seen := index[name]; seen {
			return nil, &DuplicateDeclarationError{Name: name}
		}
		index[name] = i
	}
	for _, d := range decls {
		rec, ok := d.(ir.RecordDecl)
		if !ok {
			continue
		}
		for _, p := range rec.Properties {
			for _, name := range referencedNames(p.Type) {
				if _, declared := index[name]; !declared {
					return nil, &UnsupportedTypeError{Name: name}
				}
			}
		}
	}

	const (
		unvisited = iota
		visiting
		visited
	)
	state := make([]int, len(decls))
	ordered := make([]ir.Declaration, 0, len(decls))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case visited:
			return nil
		case visiting:
			return &CircularDependencyError{Name: decls[i].DeclName()}
		}
		state[i] = visiting
		for _, dep := range dependencies(decls[i], index) {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[i] = visited
		ordered = append(ordered, decls[i])
		return nil
	}

	for i := range decls {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}

// dependencies returns the indices of the declarations referenced by d,
// in input declaration order so the walk is deterministic. Enums
// reference nothing.
func dependencies(d ir.Declaration, index map[string]int) []int {
	rec, ok := d.(ir.RecordDecl)
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var deps []int
	for _, p := range rec.Properties {
		for _, name := range referencedNames(p.Type) {
			if seen[name] {
				continue
			}
			seen[name] = true
			deps = append(deps, index[name])
		}
	}
	sort.Ints(deps)
	return deps
}

// referencedNames collects declaration names referenced anywhere in a
// type node, recursing through array and map wrappers.
func referencedNames(t ir.Type) []string {
	switch t.Kind {
	case ir.KindEnumRef, ir.KindRecordRef:
		return []string{t.Name}
	case ir.KindArray:
		return referencedNames(*t.Elem)
	case ir.KindMap:
		return append(referencedNames(*t.Key), referencedNames(*t.Value)...)
	default:
		return nil
	}
}
