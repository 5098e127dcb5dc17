package compiler

import (
	"strconv"

	"github.com/chrisgreen1993/expo-native-codegen/internal/ir"
	"github.com/chrisgreen1993/expo-native-codegen/internal/source"
)

// ResolveDeclaration converts one source declaration into an IR
// declaration. Declarations resolve independently; cross-references
// stay name-only until the set builder links them.
func ResolveDeclaration(d source.Declaration) (ir.Declaration, error) {
	switch d.Kind {
	case source.DeclEnum:
		return resolveEnum(d)
	case source.DeclInterface:
		props, err := resolveProperties(d.Properties)
		if err != nil {
			return nil, err
		}
		return ir.RecordDecl{Name: d.Name, Properties: props}, nil
	case source.DeclTypeAlias:
		return resolveAlias(d)
	default:
		return nil, &UnsupportedTypeError{Name: d.Name}
	}
}

// resolveEnum emits members in source order. A member without an
// explicit initializer continues counting from the previous member's
// numeric value, starting at 0. Homogeneity is checked once all member
// values are known; the IR cannot represent a mixed enum.
func resolveEnum(d source.Declaration) (ir.Declaration, error) {
	members := make([]ir.EnumMember, 0, len(d.Members))
	next := int64(0)
	for _, m := range d.Members {
		var value ir.MemberValue
		switch {
		case m.Value == nil:
			value = ir.NumberValue(next)
			next++
		case m.Value.IsString:
			value = ir.StringValue(m.Value.Str)
		default:
			value = ir.NumberValue(m.Value.Num)
			next = m.Value.Num + 1
		}
		members = append(members, ir.EnumMember{Name: m.Name, Value: value})
	}
	for _, m := range members {
		if m.Value.IsString != members[0].Value.IsString {
			return nil, &HeterogeneousEnumError{Enum: d.Name}
		}
	}
	return ir.EnumDecl{Name: d.Name, Members: members}, nil
}

// resolveProperties applies the shared property rule for interfaces and
// object-shaped aliases: a property is optional if it carries the
// explicit marker or its type is nullable, and its IR type is resolved
// from the non-nullable remainder.
func resolveProperties(props []source.Property) ([]ir.Property, error) {
	out := make([]ir.Property, 0, len(props))
	for _, p := range props {
		optional := p.Optional
		t := p.Type
		if t != nil && t.IsNullable() {
			optional = true
			t = t.NonNullable()
		}
		typ, err := ResolveType(t)
		if err != nil {
			return nil, err
		}
		out = append(out, ir.Property{Name: p.Name, Type: typ, Optional: optional})
	}
	return out, nil
}

// resolveAlias branches on the aliased shape: a pure literal union
// synthesizes an enum, an object shape synthesizes a record, anything
// else fails.
func resolveAlias(d source.Declaration) (ir.Declaration, error) {
	t := d.Aliased
	if t == nil {
		return nil, &UnsupportedAliasShapeError{Alias: d.Name}
	}
	switch t.Kind {
	case source.KindUnion:
		members, ok := literalUnionMembers(t)
		if !ok {
			return nil, &UnsupportedAliasShapeError{Alias: d.Name}
		}
		return ir.EnumDecl{Name: d.Name, Members: members}, nil
	case source.KindObject:
		props, err := resolveProperties(t.Props)
		if err != nil {
			return nil, err
		}
		return ir.RecordDecl{Name: d.Name, Properties: props}, nil
	default:
		return nil, &UnsupportedAliasShapeError{Alias: d.Name}
	}
}

// literalUnionMembers synthesizes enum members from a union of
// exclusively string literals or exclusively number literals.
// Null/undefined members are excluded from the check. A numeric
// literal's member name is its textual form; target emitters legalize
// it into a valid identifier.
func literalUnionMembers(t *source.TypeExpr) ([]ir.EnumMember, bool) {
	var members []ir.EnumMember
	sawString, sawNumber := false, false
	for _, m := range t.Members {
		switch m.Kind {
		case source.KindNull, source.KindUndefined:
			continue
		case source.KindStringLiteral:
			sawString = true
			members = append(members, ir.EnumMember{Name: m.Lit.Str, Value: ir.StringValue(m.Lit.Str)})
		case source.KindNumberLiteral:
			sawNumber = true
			members = append(members, ir.EnumMember{
				Name:  strconv.FormatInt(m.Lit.Num, 10),
				Value: ir.NumberValue(m.Lit.Num),
			})
		default:
			return nil, false
		}
	}
	if len(members) == 0 || (sawString && sawNumber) {
		return nil, false
	}
	return members, true
}
