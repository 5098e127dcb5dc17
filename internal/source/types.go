package source

import (
	"fmt"
	"strconv"
	"strings"
)

// DeclKind identifies the category of a source declaration.
type DeclKind int

const (
	DeclEnum DeclKind = iota
	DeclInterface
	DeclTypeAlias
)

// String returns the source-language keyword for the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case DeclEnum:
		return "enum"
	case DeclInterface:
		return "interface"
	case DeclTypeAlias:
		return "type"
	default:
		return "unknown"
	}
}

// Declaration is one top-level source declaration.
//
// Exactly one of the kind-specific fields is populated: Members for
// DeclEnum, Properties for DeclInterface, Aliased for DeclTypeAlias.
type Declaration struct {
	Kind       DeclKind
	Name       string
	Members    []EnumMember // DeclEnum
	Properties []Property   // DeclInterface
	Aliased    *TypeExpr    // DeclTypeAlias
}

// EnumMember is one member of a source enum. Value is nil when the
// member has no explicit initializer.
type EnumMember struct {
	Name  string
	Value *Literal
}

// Property is one named member of an interface or object-shaped alias.
type Property struct {
	Name     string
	Type     *TypeExpr
	Optional bool // explicit `?` marker
}

// TypeKind classifies a type annotation.
type TypeKind int

const (
	KindString TypeKind = iota
	KindNumber
	KindBoolean
	KindAny
	KindBytes // binary octet array (Uint8Array)
	KindArray
	KindMap // Record<K, V>
	KindEnumRef
	KindRecordRef
	KindUnion
	KindStringLiteral
	KindNumberLiteral
	KindNull
	KindUndefined
	KindObject // inline object literal type ({ a: string; b?: number })
	KindOther  // anything the generator does not support
)

// String returns the classification name, for diagnostics.
func (k TypeKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindAny:
		return "any"
	case KindBytes:
		return "Uint8Array"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindEnumRef:
		return "enum reference"
	case KindRecordRef:
		return "record reference"
	case KindUnion:
		return "union"
	case KindStringLiteral:
		return "string literal"
	case KindNumberLiteral:
		return "number literal"
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindObject:
		return "object"
	default:
		return "other"
	}
}

// Literal is a string or number literal value.
type Literal struct {
	IsString bool
	Str      string
	Num      int64
}

// String renders the literal in source form.
func (l Literal) String() string {
	if l.IsString {
		return strconv.Quote(l.Str)
	}
	return strconv.FormatInt(l.Num, 10)
}

// TypeExpr is a classified type annotation. The populated fields depend
// on Kind:
//
//	KindArray                        Elem
//	KindMap                          Key, Value
//	KindEnumRef, KindRecordRef       Ref
//	KindUnion                        Members, and Alias if the union is
//	                                 itself a named alias
//	KindStringLiteral/NumberLiteral  Lit
//	KindObject                       Props
//	KindOther                        Name (the literal textual form)
type TypeExpr struct {
	Kind    TypeKind
	Elem    *TypeExpr
	Key     *TypeExpr
	Value   *TypeExpr
	Ref     string
	Alias   string
	Members []*TypeExpr
	Lit     *Literal
	Props   []Property
	Name    string
}

// IsNullable reports whether the expression is a union carrying a null
// or undefined member.
func (t *TypeExpr) IsNullable() bool {
	if t.Kind != KindUnion {
		return false
	}
	for _, m := range t.Members {
		if m.Kind == KindNull || m.Kind == KindUndefined {
			return true
		}
	}
	return false
}

// NonNullable returns the expression with null/undefined union members
// stripped. A union reduced to a single member collapses to that member;
// a union with several members left keeps its kind (and alias name).
// Expressions that are not nullable are returned unchanged.
func (t *TypeExpr) NonNullable() *TypeExpr {
	if !t.IsNullable() {
		return t
	}
	var rest []*TypeExpr
	for _, m := range t.Members {
		if m.Kind != KindNull && m.Kind != KindUndefined {
			rest = append(rest, m)
		}
	}
	if len(rest) == 1 {
		return rest[0]
	}
	return &TypeExpr{Kind: KindUnion, Alias: t.Alias, Members: rest, Name: t.Name}
}

// DisplayName renders the annotation the way the author wrote it, for
// error messages.
func (t *TypeExpr) DisplayName() string {
	switch t.Kind {
	case KindString, KindNumber, KindBoolean, KindAny, KindNull, KindUndefined:
		return t.Kind.String()
	case KindBytes:
		return "Uint8Array"
	case KindArray:
		if t.Elem == nil {
			return "[]"
		}
		return t.Elem.DisplayName() + "[]"
	case KindMap:
		if t.Key == nil || t.Value == nil {
			return "Record"
		}
		return fmt.Sprintf("Record<%s, %s>", t.Key.DisplayName(), t.Value.DisplayName())
	case KindEnumRef, KindRecordRef:
		return t.Ref
	case KindUnion:
		if t.Alias != "" {
			return t.Alias
		}
		parts := make([]string, len(t.Members))
		for i, m := range t.Members {
			parts[i] = m.DisplayName()
		}
		return strings.Join(parts, " | ")
	case KindStringLiteral, KindNumberLiteral:
		if t.Lit != nil {
			return t.Lit.String()
		}
		return t.Kind.String()
	case KindObject:
		parts := make([]string, len(t.Props))
		for i, p := range t.Props {
			marker := ""
			if p.Optional {
				marker = "?"
			}
			parts[i] = fmt.Sprintf("%s%s: %s", p.Name, marker, p.Type.DisplayName())
		}
		return "{ " + strings.Join(parts, "; ") + " }"
	default:
		if t.Name != "" {
			return t.Name
		}
		return "unknown"
	}
}
