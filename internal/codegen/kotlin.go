package codegen

import (
	"fmt"
	"strings"

	"github.com/chrisgreen1993/expo-native-codegen/internal/ir"
)

// kotlinEmitter renders IR declarations as Kotlin Expo Modules source.
type kotlinEmitter struct {
	legalize func(string) string
	enums    map[string]ir.EnumDecl
}

func emitKotlin(ordered []ir.Declaration, pkg string) string {
	e := &kotlinEmitter{legalize: legalize, enums: enumIndex(ordered)}

	hasRecord, hasEnum := false, false
	for _, d := range ordered {
		switch d.(type) {
		case ir.RecordDecl:
			hasRecord = true
		case ir.EnumDecl:
			hasEnum = true
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n", pkg)
	if hasRecord || hasEnum {
		b.WriteString("\n")
	}
	if hasRecord {
		b.WriteString("import expo.modules.kotlin.records.Field\n")
		b.WriteString("import expo.modules.kotlin.records.Record\n")
	}
	if hasEnum {
		b.WriteString("import expo.modules.kotlin.types.Enumerable\n")
	}
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

func (e *kotlinEmitter) writeEnum(b *strings.Builder, d ir.EnumDecl) {
	raw := "String"
	if d.IsNumeric() {
		raw = "Int"
	}
	fmt.Fprintf(b, "enum class %s(val value: %s) : Enumerable {\n", d.Name, raw)
	for i, m := range d.Members {
		sep := ","
		if i == len(d.Members)-1 {
			sep = ""
		}
		fmt.Fprintf(b, "  %s(%s)%s\n", e.legalize(m.Name), m.Value, sep)
	}
	b.WriteString("}\n")
}

func (e *kotlinEmitter) writeRecord(b *strings.Builder, d ir.RecordDecl) {
	if len(d.Properties) == 0 {
		fmt.Fprintf(b, "class %s : Record\n", d.Name)
		return
	}
	fmt.Fprintf(b, "class %s : Record {\n", d.Name)
	for i, p := range d.Properties {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  @Field\n")
		fmt.Fprintf(b, "  val %s: %s = %s\n", p.Name, e.fieldType(p), e.fieldDefault(p))
	}
	b.WriteString("}\n")
}

func (e *kotlinEmitter) fieldType(p ir.Property) string {
	t := e.typeName(p.Type)
	if p.Optional {
		return t + "?"
	}
	return t
}

func (e *kotlinEmitter) typeName(t ir.Type) string {
	switch t.Kind {
	case ir.KindString:
		return "String"
	case ir.KindNumber:
		return "Double"
	case ir.KindBoolean:
		return "Boolean"
	case ir.KindAny:
		return "Any"
	case ir.KindByteArray:
		return "ByteArray"
	case ir.KindArray:
		return "List<" + e.typeName(*t.Elem) + ">"
	case ir.KindMap:
		return "Map<" + e.typeName(*t.Key) + ", " + e.typeName(*t.Value) + ">"
	default:
		return t.Name
	}
}

// fieldDefault applies the default-value table. Optionality wins over
// every kind-specific default.
func (e *kotlinEmitter) fieldDefault(p ir.Property) string {
	if p.Optional {
		return "null"
	}
	switch p.Type.Kind {
	case ir.KindString:
		return `""`
	case ir.KindNumber:
		return "0.0"
	case ir.KindBoolean:
		return "false"
	case ir.KindAny:
		return "emptyMap<String, Any>()"
	case ir.KindByteArray:
		return "ByteArray(0)"
	case ir.KindArray:
		return "emptyList()"
	case ir.KindMap:
		return "emptyMap()"
	case ir.KindEnumRef:
		if enum, ok := e.enums[p.Type.Name]; ok && len(enum.Members) > 0 {
			return p.Type.Name + "." + e.legalize(enum.Members[0].Name)
		}
		return p.Type.Name + "()"
	default:
		return p.Type.Name + "()"
	}
}
