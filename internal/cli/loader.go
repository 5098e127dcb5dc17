package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/chrisgreen1993/expo-native-codegen/internal/source"
)

// Error codes for declaration loading (E001-E099).
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeBadDecl     = "E008" // Malformed declaration value
)

// LoadError represents an error that occurred during declaration loading.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadResult contains the declarations loaded from a directory.
type LoadResult struct {
	Declarations []source.Declaration
	FileCount    int // Number of CUE files found
}

// LoadDeclarations loads type declarations from the CUE files in dir.
//
// Declaration files are structured CUE values under a top-level
// `declarations` list; the loader acts as the type-aware frontend,
// handing the generator core fully classified source declarations.
func LoadDeclarations(dir string) (*LoadResult, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("declarations directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing declarations directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}
	}
	if len(cueFiles) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	declsVal := value.LookupPath(cue.ParsePath("declarations"))
	if !declsVal.Exists() {
		return nil, &LoadError{Code: ErrCodeBadDecl, Message: "no top-level declarations list found"}
	}

	iter, err := declsVal.List()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeBadDecl, Message: fmt.Sprintf("declarations is not a list: %v", err)}
	}

	result := &LoadResult{FileCount: len(cueFiles)}
	for iter.Next() {
		decl, err := parseDeclaration(iter.Value())
		if err != nil {
			return nil, err
		}
		result.Declarations = append(result.Declarations, decl)
	}
	reclassifyUnknownRefs(result.Declarations)
	return result, nil
}

// reclassifyUnknownRefs rewrites enum, record, and named-union
// references whose name does not appear in the loaded set. Only
// declared names may be classified as references; anything else is
// handed to the generator core as an unclassified name, which rejects
// it by its literal spelling.
func reclassifyUnknownRefs(decls []source.Declaration) {
	declared := make(map[string]bool, len(decls))
	for _, d := range decls {
		declared[d.Name] = true
	}
	for i := range decls {
		for _, p := range decls[i].Properties {
			rewriteUnknownRefs(p.Type, declared)
		}
		rewriteUnknownRefs(decls[i].Aliased, declared)
	}
}

func rewriteUnknownRefs(t *source.TypeExpr, declared map[string]bool) {
	if t == nil {
		return
	}
	switch t.Kind {
	case source.KindEnumRef, source.KindRecordRef:
		if !declared[t.Ref] {
			*t = source.TypeExpr{Kind: source.KindOther, Name: t.Ref}
		}
	case source.KindArray:
		rewriteUnknownRefs(t.Elem, declared)
	case source.KindMap:
		rewriteUnknownRefs(t.Key, declared)
		rewriteUnknownRefs(t.Value, declared)
	case source.KindUnion:
		if t.Alias != "" && !declared[t.Alias] {
			*t = source.TypeExpr{Kind: source.KindOther, Name: t.Alias}
			return
		}
		for _, m := range t.Members {
			rewriteUnknownRefs(m, declared)
		}
	case source.KindObject:
		for _, p := range t.Props {
			rewriteUnknownRefs(p.Type, declared)
		}
	}
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func parseDeclaration(v cue.Value) (source.Declaration, error) {
	name, err := stringField(v, "name")
	if err != nil {
		return source.Declaration{}, err
	}
	kind, err := stringField(v, "kind")
	if err != nil {
		return source.Declaration{}, err
	}

	switch kind {
	case "enum":
		members, err := parseEnumMembers(v.LookupPath(cue.ParsePath("members")), name)
		if err != nil {
			return source.Declaration{}, err
		}
		return source.Declaration{Kind: source.DeclEnum, Name: name, Members: members}, nil
	case "interface":
		props, err := parseProperties(v.LookupPath(cue.ParsePath("properties")), name)
		if err != nil {
			return source.Declaration{}, err
		}
		return source.Declaration{Kind: source.DeclInterface, Name: name, Properties: props}, nil
	case "alias":
		typeVal := v.LookupPath(cue.ParsePath("type"))
		if !typeVal.Exists() {
			return source.Declaration{}, badDecl("alias %s: type is required", name)
		}
		aliased, err := parseTypeExpr(typeVal, name)
		if err != nil {
			return source.Declaration{}, err
		}
		// A union alias carries its own name so use sites resolve to the
		// synthesized enum.
		if aliased.Kind == source.KindUnion && aliased.Alias == "" {
			aliased.Alias = name
		}
		return source.Declaration{Kind: source.DeclTypeAlias, Name: name, Aliased: aliased}, nil
	default:
		return source.Declaration{}, badDecl("%s: unknown declaration kind %q", name, kind)
	}
}

func parseEnumMembers(v cue.Value, decl string) ([]source.EnumMember, error) {
	if !v.Exists() {
		return nil, nil
	}
	iter, err := v.List()
	if err != nil {
		return nil, badDecl("enum %s: members is not a list: %v", decl, err)
	}
	var members []source.EnumMember
	for iter.Next() {
		mv := iter.Value()
		name, err := stringField(mv, "name")
		if err != nil {
			return nil, err
		}
		member := source.EnumMember{Name: name}
		valueVal := mv.LookupPath(cue.ParsePath("value"))
		if valueVal.Exists() {
			lit, err := parseLiteral(valueVal, decl)
			if err != nil {
				return nil, err
			}
			member.Value = lit
		}
		members = append(members, member)
	}
	return members, nil
}

func parseProperties(v cue.Value, decl string) ([]source.Property, error) {
	if !v.Exists() {
		return nil, nil
	}
	iter, err := v.List()
	if err != nil {
		return nil, badDecl("%s: properties is not a list: %v", decl, err)
	}
	var props []source.Property
	for iter.Next() {
		pv := iter.Value()
		name, err := stringField(pv, "name")
		if err != nil {
			return nil, err
		}
		typeVal := pv.LookupPath(cue.ParsePath("type"))
		if !typeVal.Exists() {
			return nil, badDecl("%s.%s: type is required", decl, name)
		}
		typ, err := parseTypeExpr(typeVal, decl)
		if err != nil {
			return nil, err
		}
		prop := source.Property{Name: name, Type: typ}
		optVal := pv.LookupPath(cue.ParsePath("optional"))
		if optVal.Exists() {
			opt, err := optVal.Bool()
			if err != nil {
				return nil, badDecl("%s.%s: optional is not a bool: %v", decl, name, err)
			}
			prop.Optional = opt
		}
		props = append(props, prop)
	}
	return props, nil
}

// typeKinds maps CUE kind strings to source classifications.
var typeKinds = map[string]source.TypeKind{
	"string":         source.KindString,
	"number":         source.KindNumber,
	"boolean":        source.KindBoolean,
	"any":            source.KindAny,
	"uint8array":     source.KindBytes,
	"array":          source.KindArray,
	"map":            source.KindMap,
	"enum":           source.KindEnumRef,
	"record":         source.KindRecordRef,
	"union":          source.KindUnion,
	"string-literal": source.KindStringLiteral,
	"number-literal": source.KindNumberLiteral,
	"null":           source.KindNull,
	"undefined":      source.KindUndefined,
	"object":         source.KindObject,
	"other":          source.KindOther,
}

func parseTypeExpr(v cue.Value, decl string) (*source.TypeExpr, error) {
	kindStr, err := stringField(v, "kind")
	if err != nil {
		return nil, err
	}
	kind, ok := typeKinds[kindStr]
	if !ok {
		return nil, badDecl("%s: unknown type kind %q", decl, kindStr)
	}

	expr := &source.TypeExpr{Kind: kind}
	switch kind {
	case source.KindArray:
		elemVal := v.LookupPath(cue.ParsePath("element"))
		if elemVal.Exists() {
			if expr.Elem, err = parseTypeExpr(elemVal, decl); err != nil {
				return nil, err
			}
		}
	case source.KindMap:
		keyVal := v.LookupPath(cue.ParsePath("key"))
		if keyVal.Exists() {
			if expr.Key, err = parseTypeExpr(keyVal, decl); err != nil {
				return nil, err
			}
		}
		valueVal := v.LookupPath(cue.ParsePath("value"))
		if valueVal.Exists() {
			if expr.Value, err = parseTypeExpr(valueVal, decl); err != nil {
				return nil, err
			}
		}
	case source.KindEnumRef, source.KindRecordRef:
		if expr.Ref, err = stringField(v, "name"); err != nil {
			return nil, err
		}
	case source.KindUnion:
		aliasVal := v.LookupPath(cue.ParsePath("alias"))
		if aliasVal.Exists() {
			if expr.Alias, err = aliasVal.String(); err != nil {
				return nil, badDecl("%s: union alias is not a string: %v", decl, err)
			}
		}
		membersVal := v.LookupPath(cue.ParsePath("members"))
		if membersVal.Exists() {
			iter, err := membersVal.List()
			if err != nil {
				return nil, badDecl("%s: union members is not a list: %v", decl, err)
			}
			for iter.Next() {
				member, err := parseTypeExpr(iter.Value(), decl)
				if err != nil {
					return nil, err
				}
				expr.Members = append(expr.Members, member)
			}
		}
	case source.KindStringLiteral, source.KindNumberLiteral:
		valueVal := v.LookupPath(cue.ParsePath("value"))
		if !valueVal.Exists() {
			return nil, badDecl("%s: literal value is required", decl)
		}
		if expr.Lit, err = parseLiteral(valueVal, decl); err != nil {
			return nil, err
		}
	case source.KindObject:
		props, err := parseProperties(v.LookupPath(cue.ParsePath("properties")), decl)
		if err != nil {
			return nil, err
		}
		expr.Props = props
	case source.KindOther:
		if expr.Name, err = stringField(v, "name"); err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func parseLiteral(v cue.Value, decl string) (*source.Literal, error) {
	if v.Kind() == cue.StringKind {
		s, err := v.String()
		if err != nil {
			return nil, badDecl("%s: reading string literal: %v", decl, err)
		}
		return &source.Literal{IsString: true, Str: s}, nil
	}
	n, err := v.Int64()
	if err != nil {
		return nil, badDecl("%s: literal must be a string or integer: %v", decl, err)
	}
	return &source.Literal{Num: n}, nil
}

func stringField(v cue.Value, field string) (string, error) {
	fv := v.LookupPath(cue.ParsePath(field))
	if !fv.Exists() {
		return "", badDecl("%s is required at %s", field, v.Path())
	}
	s, err := fv.String()
	if err != nil {
		return "", badDecl("%s is not a string: %v", field, err)
	}
	return s, nil
}

func badDecl(format string, args ...interface{}) *LoadError {
	return &LoadError{Code: ErrCodeBadDecl, Message: fmt.Sprintf(format, args...)}
}
