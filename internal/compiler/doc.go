// Package compiler turns source declarations into validated, ordered IR.
//
// The pipeline has three stages, each pure and synchronous:
//
//  1. ResolveType classifies one source type annotation into an IR type
//     node (type.go).
//  2. ResolveDeclaration turns one source declaration into an IR enum or
//     record, applying the alias-shape policy (declaration.go).
//  3. Build rejects duplicate names, extracts the by-name dependency
//     graph, detects cycles, and returns the declarations in
//     dependency-first order (graph.go).
//
// Every failure mode is a typed error from errors.go, raised at the
// earliest stage that can detect it and propagated unchanged.
package compiler
