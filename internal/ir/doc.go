// Package ir defines the intermediate representation shared by the
// resolver and the target emitters.
//
// The model is a closed set of tagged variants: nine type kinds and two
// declaration kinds. Types reference declarations by name only, so the
// representation itself is acyclic; reference cycles surface as graph
// cycles in the declaration set builder, never as pointer cycles here.
// IR values are built once per generation run and never mutated after
// the set builder validates them.
package ir
