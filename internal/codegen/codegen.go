package codegen

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/chrisgreen1993/expo-native-codegen/internal/compiler"
	"github.com/chrisgreen1993/expo-native-codegen/internal/ir"
	"github.com/chrisgreen1993/expo-native-codegen/internal/source"
)

// KotlinConfig carries the per-target configuration for the Kotlin
// emitter. Package is required: Kotlin source is invalid without a
// package header.
type KotlinConfig struct {
	Package string
}

// Swift resolves, orders, and renders a source declaration set as
// Swift Expo Modules records and enums.
func Swift(decls []source.Declaration) (string, error) {
	ordered, err := resolveAndBuild(decls)
	if err != nil {
		return "", err
	}
	return emitSwift(ordered), nil
}

// Kotlin resolves, orders, and renders a source declaration set as
// Kotlin Expo Modules records and enums. The configuration is checked
// before any work happens, so a missing package name never produces
// partial output.
func Kotlin(decls []source.Declaration, cfg KotlinConfig) (string, error) {
	if cfg.Package == "" {
		return "", &compiler.MissingConfigurationError{Field: "package"}
	}
	ordered, err := resolveAndBuild(decls)
	if err != nil {
		return "", err
	}
	return emitKotlin(ordered, cfg.Package), nil
}

// Resolve runs resolution and ordering without emitting, for callers
// that only want validation.
func Resolve(decls []source.Declaration) ([]ir.Declaration, error) {
	return resolveAndBuild(decls)
}

func resolveAndBuild(decls []source.Declaration) ([]ir.Declaration, error) {
	resolved := make([]ir.Declaration, 0, len(decls))
	for _, d := range decls {
		r, err := compiler.ResolveDeclaration(d)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}
	return compiler.Build(resolved)
}

// legalize is the identifier legalization policy shared by both targets
// today: NFC-normalize, then prefix with an underscore when the name
// would not parse as a bare identifier (a numeric-literal union member
// yields a member named "1"). The underlying enum value keeps the
// original literal. Kept as a function value on each emitter so a
// target with different identifier rules can swap it out.
func legalize(name string) string {
	name = norm.NFC.String(name)
	if name == "" {
		return "_"
	}
	first, _ := utf8.DecodeRuneInString(name)
	if unicode.IsDigit(first) {
		return "_" + name
	}
	return name
}

// enumIndex maps enum names to their declarations so record emitters
// can default an enum-typed field to the enum's first declared member.
func enumIndex(decls []ir.Declaration) map[string]ir.EnumDecl {
	index := make(map[string]ir.EnumDecl)
	for _, d := range decls {
		if e, ok := d.(ir.EnumDecl); ok {
			index[e.Name] = e
		}
	}
	return index
}
