// Package codegen renders validated, ordered IR into Expo Modules
// source text for Swift and Kotlin.
//
// Both emitters share one contract (codegen.go): a per-target token
// table mapping IR type kinds to type names and default values, plus a
// per-target identifier legalization policy. Emission is a pure
// function of the ordered IR; every failure mode lives earlier, in
// resolution or graph building.
//
// The package also exposes the per-target entry points (Swift, Kotlin)
// that run the whole resolve, order, emit pipeline over a source
// declaration set.
package codegen
