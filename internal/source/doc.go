// Package source defines the declaration model handed to the code
// generator by a type-aware frontend.
//
// A frontend (the CUE loader in internal/cli, or a test constructing
// values directly) classifies each TypeScript-style declaration into one
// of three kinds (enum, interface, type alias) and classifies every type
// annotation into a TypeExpr. The generator core never inspects source
// text; everything it needs is carried by these values.
package source
