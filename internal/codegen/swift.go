package codegen

import (
	"fmt"
	"strings"

	"github.com/chrisgreen1993/expo-native-codegen/internal/ir"
)

// swiftEmitter renders IR declarations as Swift Expo Modules source.
type swiftEmitter struct {
	legalize func(string) string
	enums    map[string]ir.EnumDecl
}

func emitSwift(ordered []ir.Declaration) string {
	e := &swiftEmitter{legalize: legalize, enums: enumIndex(ordered)}

	var b strings.Builder
	b.WriteString("import ExpoModulesCore\n")
	for _, d := range ordered {
		b.WriteString("\n")
		switch d := d.(type) {
		case ir.EnumDecl:
			e.writeEnum(&b, d)
		case ir.RecordDecl:
			e.writeRecord(&b, d)
		}
	}
	return b.String()
}

func (e *swiftEmitter) writeEnum(b *strings.Builder, d ir.EnumDecl) {
	raw := "String"
	if d.IsNumeric() {
		raw = "Int"
	}
	fmt.Fprintf(b, "enum %s: %s, Enumerable {\n", d.Name, raw)
	for _, m := range d.Members {
		fmt.Fprintf(b, "  case %s = %s\n", e.legalize(m.Name), m.Value)
	}
	b.WriteString("}\n")
}

func (e *swiftEmitter) writeRecord(b *strings.Builder, d ir.RecordDecl) {
	if len(d.Properties) == 0 {
		fmt.Fprintf(b, "struct %s: Record {}\n", d.Name)
		return
	}
	fmt.Fprintf(b, "struct %s: Record {\n", d.Name)
	for i, p := range d.Properties {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  @Field\n")
		fmt.Fprintf(b, "  var %s: %s = %s\n", p.Name, e.fieldType(p), e.fieldDefault(p))
	}
	b.WriteString("}\n")
}

func (e *swiftEmitter) fieldType(p ir.Property) string {
	t := e.typeName(p.Type)
	if p.Optional {
		return t + "?"
	}
	return t
}

func (e *swiftEmitter) typeName(t ir.Type) string {
	switch t.Kind {
	case ir.KindString:
		return "String"
	case ir.KindNumber:
		return "Double"
	case ir.KindBoolean:
		return "Bool"
	case ir.KindAny:
		return "Any"
	case ir.KindByteArray:
		return "Data"
	case ir.KindArray:
		return "[" + e.typeName(*t.Elem) + "]"
	case ir.KindMap:
		return "[" + e.typeName(*t.Key) + ": " + e.typeName(*t.Value) + "]"
	default:
		return t.Name
	}
}

// fieldDefault applies the default-value table. Optionality wins over
// every kind-specific default.
func (e *swiftEmitter) fieldDefault(p ir.Property) string {
	if p.Optional {
		return "nil"
	}
	switch p.Type.Kind {
	case ir.KindString:
		return `""`
	case ir.KindNumber:
		return "0"
	case ir.KindBoolean:
		return "false"
	case ir.KindAny, ir.KindMap:
		return "[:]"
	case ir.KindByteArray:
		return "Data()"
	case ir.KindArray:
		return "[]"
	case ir.KindEnumRef:
		if enum, ok := e.enums[p.Type.Name]; ok && len(enum.Members) > 0 {
			return "." + e.legalize(enum.Members[0].Name)
		}
		return p.Type.Name + "()"
	default:
		return p.Type.Name + "()"
	}
}
