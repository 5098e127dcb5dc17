package ir

import "strconv"

// TypeKind discriminates the Type tagged union.
type TypeKind int

const (
	KindString TypeKind = iota
	KindNumber
	KindBoolean
	KindAny
	KindByteArray
	KindArray
	KindMap
	KindEnumRef
	KindRecordRef
)

// String returns the kind name.
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
	case KindByteArray:
		return "byte-array"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindEnumRef:
		return "named-enum"
	case KindRecordRef:
		return "named-record"
	default:
		return "unknown"
	}
}

// Type is one IR type node. Elem is set for KindArray, Key/Value for
// KindMap, Name for KindEnumRef and KindRecordRef. References carry the
// declaration name only; they never embed the referenced declaration.
type Type struct {
	Kind  TypeKind
	Elem  *Type
	Key   *Type
	Value *Type
	Name  string
}

// Constructors for the scalar kinds keep call sites readable.

func String() Type    { return Type{Kind: KindString} }
func Number() Type    { return Type{Kind: KindNumber} }
func Boolean() Type   { return Type{Kind: KindBoolean} }
func Any() Type       { return Type{Kind: KindAny} }
func ByteArray() Type { return Type{Kind: KindByteArray} }

// ArrayOf returns an array type over elem.
func ArrayOf(elem Type) Type {
	return Type{Kind: KindArray, Elem: &elem}
}

// MapOf returns a map type with the given key and value types.
func MapOf(key, value Type) Type {
	return Type{Kind: KindMap, Key: &key, Value: &value}
}

// EnumRef returns a by-name reference to a declared enum.
func EnumRef(name string) Type {
	return Type{Kind: KindEnumRef, Name: name}
}

// RecordRef returns a by-name reference to a declared record.
func RecordRef(name string) Type {
	return Type{Kind: KindRecordRef, Name: name}
}

// Equal reports structural equality of two type nodes.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind || t.Name != o.Name {
		return false
	}
	if !ptrEqual(t.Elem, o.Elem) || !ptrEqual(t.Key, o.Key) || !ptrEqual(t.Value, o.Value) {
		return false
	}
	return true
}

func ptrEqual(a, b *Type) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.Equal(*b)
}

// Declaration is either an EnumDecl or a RecordDecl.
type Declaration interface {
	// DeclName returns the declaration's name, unique across the set.
	DeclName() string

	declNode()
}

// MemberValue is the literal value of an enum member, either a string
// or an integer. Within one enum all members hold the same kind.
type MemberValue struct {
	IsString bool
	Str      string
	Num      int64
}

// StringValue returns a string-valued member value.
func StringValue(s string) MemberValue { return MemberValue{IsString: true, Str: s} }

// NumberValue returns a number-valued member value.
func NumberValue(n int64) MemberValue { return MemberValue{Num: n} }

// String renders the value in literal form.
func (v MemberValue) String() string {
	if v.IsString {
		return strconv.Quote(v.Str)
	}
	return strconv.FormatInt(v.Num, 10)
}

// EnumMember is one member of an enum declaration, in declaration order.
type EnumMember struct {
	Name  string
	Value MemberValue
}

// EnumDecl is an IR enum declaration.
type EnumDecl struct {
	Name    string
	Members []EnumMember
}

func (d EnumDecl) DeclName() string { return d.Name }
func (EnumDecl) declNode()          {}

// IsNumeric reports whether the members carry numeric values. Valid
// declarations are homogeneous, so inspecting the first member suffices.
func (d EnumDecl) IsNumeric() bool {
	return len(d.Members) > 0 && !d.Members[0].Value.IsString
}

// Property is one field of a record declaration, in declaration order.
// Optionality is metadata on the property; Type is always the
// non-nullable type.
type Property struct {
	Name     string
	Type     Type
	Optional bool
}

// RecordDecl is an IR record declaration.
type RecordDecl struct {
	Name       string
	Properties []Property
}

func (d RecordDecl) DeclName() string { return d.Name }
func (RecordDecl) declNode()          {}
