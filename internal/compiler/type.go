package compiler

import (
	"github.com/chrisgreen1993/expo-native-codegen/internal/ir"
	"github.com/chrisgreen1993/expo-native-codegen/internal/source"
)

// ResolveType converts one source type annotation into an IR type node,
// recursing through array and map shapes. Nullability is never visible
// here: callers strip null/undefined union members before resolving
// (see resolveProperty).
func ResolveType(t *source.TypeExpr) (ir.Type, error) {
	if t == nil {
		return ir.Type{}, &UnsupportedTypeError{Name: "unknown"}
	}
	switch t.Kind {
	case source.KindString:
		return ir.String(), nil
	case source.KindNumber:
		return ir.Number(), nil
	case source.KindBoolean:
		return ir.Boolean(), nil
	case source.KindAny:
		return ir.Any(), nil
	case source.KindBytes:
		return ir.ByteArray(), nil
	case source.KindArray:
		if t.Elem == nil {
			return ir.Type{}, &UnsupportedTypeError{Name: t.DisplayName()}
		}
		elem, err := ResolveType(t.Elem)
		if err != nil {
			return ir.Type{}, err
		}
		return ir.ArrayOf(elem), nil
	case source.KindMap:
		if t.Key == nil || t.Value == nil {
			return ir.Type{}, &UnsupportedTypeError{Name: t.DisplayName()}
		}
		key, err := ResolveType(t.Key)
		if err != nil {
			return ir.Type{}, err
		}
		value, err := ResolveType(t.Value)
		if err != nil {
			return ir.Type{}, err
		}
		return ir.MapOf(key, value), nil
	case source.KindEnumRef:
		return ir.EnumRef(t.Ref), nil
	case source.KindRecordRef:
		return ir.RecordRef(t.Ref), nil
	case source.KindUnion:
		// A named union alias is normalized to an enum declaration by the
		// declaration resolver, so use sites reference it by name. Inline
		// unions have no declaration to reference and are unsupported.
		if t.Alias != "" {
			return ir.EnumRef(t.Alias), nil
		}
		return ir.Type{}, &UnsupportedTypeError{Name: t.DisplayName()}
	default:
		return ir.Type{}, &UnsupportedTypeError{Name: t.DisplayName()}
	}
}
