package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisgreen1993/expo-native-codegen/internal/ir"
	"github.com/chrisgreen1993/expo-native-codegen/internal/source"
)

func strLit(s string) *source.Literal { return &source.Literal{IsString: true, Str: s} }
func numLit(n int64) *source.Literal  { return &source.Literal{Num: n} }

func TestResolveEnum(t *testing.T) {
	t.Run("string members keep their literals", func(t *testing.T) {
		got, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclEnum,
			Name: "Status",
			Members: []source.EnumMember{
				{Name: "Pending", Value: strLit("pending")},
				{Name: "Active", Value: strLit("active")},
			},
		})
		require.NoError(t, err)
		enum := got.(ir.EnumDecl)
		assert.Equal(t, "Status", enum.Name)
		require.Len(t, enum.Members, 2)
		assert.Equal(t, ir.StringValue("pending"), enum.Members[0].Value)
		assert.Equal(t, ir.StringValue("active"), enum.Members[1].Value)
	})

	t.Run("members without initializers auto-increment from zero", func(t *testing.T) {
		got, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclEnum,
			Name: "Level",
			Members: []source.EnumMember{
				{Name: "Low"},
				{Name: "Mid"},
				{Name: "High"},
			},
		})
		require.NoError(t, err)
		enum := got.(ir.EnumDecl)
		assert.Equal(t, ir.NumberValue(0), enum.Members[0].Value)
		assert.Equal(t, ir.NumberValue(1), enum.Members[1].Value)
		assert.Equal(t, ir.NumberValue(2), enum.Members[2].Value)
	})

	t.Run("auto-increment continues from an explicit value", func(t *testing.T) {
		got, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclEnum,
			Name: "Code",
			Members: []source.EnumMember{
				{Name: "A"},
				{Name: "B", Value: numLit(10)},
				{Name: "C"},
			},
		})
		require.NoError(t, err)
		enum := got.(ir.EnumDecl)
		assert.Equal(t, ir.NumberValue(0), enum.Members[0].Value)
		assert.Equal(t, ir.NumberValue(10), enum.Members[1].Value)
		assert.Equal(t, ir.NumberValue(11), enum.Members[2].Value)
	})

	t.Run("mixed string and number members are rejected", func(t *testing.T) {
		_, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclEnum,
			Name: "Mixed",
			Members: []source.EnumMember{
				{Name: "A", Value: strLit("a")},
				{Name: "B", Value: numLit(1)},
			},
		})
		var hetero *HeterogeneousEnumError
		require.ErrorAs(t, err, &hetero)
		assert.Equal(t, "Mixed", hetero.Enum)
	})

	t.Run("string member followed by auto-increment is rejected", func(t *testing.T) {
		_, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclEnum,
			Name: "Mixed",
			Members: []source.EnumMember{
				{Name: "A", Value: strLit("a")},
				{Name: "B"},
			},
		})
		var hetero *HeterogeneousEnumError
		require.ErrorAs(t, err, &hetero)
	})
}

func TestResolveInterface(t *testing.T) {
	t.Run("properties keep source order", func(t *testing.T) {
		got, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclInterface,
			Name: "User",
			Properties: []source.Property{
				{Name: "email", Type: &source.TypeExpr{Kind: source.KindString}},
				{Name: "age", Type: &source.TypeExpr{Kind: source.KindNumber}},
			},
		})
		require.NoError(t, err)
		rec := got.(ir.RecordDecl)
		require.Len(t, rec.Properties, 2)
		assert.Equal(t, "email", rec.Properties[0].Name)
		assert.Equal(t, "age", rec.Properties[1].Name)
		assert.False(t, rec.Properties[0].Optional)
	})

	t.Run("explicit optional marker", func(t *testing.T) {
		got, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclInterface,
			Name: "User",
			Properties: []source.Property{
				{Name: "nickname", Type: &source.TypeExpr{Kind: source.KindString}, Optional: true},
			},
		})
		require.NoError(t, err)
		rec := got.(ir.RecordDecl)
		assert.True(t, rec.Properties[0].Optional)
		assert.True(t, rec.Properties[0].Type.Equal(ir.String()))
	})

	t.Run("nullable union makes the property optional", func(t *testing.T) {
		got, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclInterface,
			Name: "User",
			Properties: []source.Property{
				{Name: "bio", Type: &source.TypeExpr{
					Kind: source.KindUnion,
					Members: []*source.TypeExpr{
						{Kind: source.KindString},
						{Kind: source.KindNull},
					},
				}},
			},
		})
		require.NoError(t, err)
		rec := got.(ir.RecordDecl)
		assert.True(t, rec.Properties[0].Optional)
		// Nullability stays on the property, never in the type
		assert.True(t, rec.Properties[0].Type.Equal(ir.String()))
	})

	t.Run("undefined union member also strips", func(t *testing.T) {
		got, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclInterface,
			Name: "User",
			Properties: []source.Property{
				{Name: "avatar", Type: &source.TypeExpr{
					Kind: source.KindUnion,
					Members: []*source.TypeExpr{
						{Kind: source.KindRecordRef, Ref: "Image"},
						{Kind: source.KindUndefined},
					},
				}},
			},
		})
		require.NoError(t, err)
		rec := got.(ir.RecordDecl)
		assert.True(t, rec.Properties[0].Optional)
		assert.True(t, rec.Properties[0].Type.Equal(ir.RecordRef("Image")))
	})

	t.Run("nullable named union keeps the alias reference", func(t *testing.T) {
		got, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclInterface,
			Name: "User",
			Properties: []source.Property{
				{Name: "theme", Type: &source.TypeExpr{
					Kind:  source.KindUnion,
					Alias: "Theme",
					Members: []*source.TypeExpr{
						{Kind: source.KindStringLiteral, Lit: strLit("light")},
						{Kind: source.KindStringLiteral, Lit: strLit("dark")},
						{Kind: source.KindNull},
					},
				}},
			},
		})
		require.NoError(t, err)
		rec := got.(ir.RecordDecl)
		assert.True(t, rec.Properties[0].Optional)
		assert.True(t, rec.Properties[0].Type.Equal(ir.EnumRef("Theme")))
	})

	t.Run("unsupported property type fails with its display name", func(t *testing.T) {
		_, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclInterface,
			Name: "User",
			Properties: []source.Property{
				{Name: "created", Type: &source.TypeExpr{Kind: source.KindOther, Name: "Date"}},
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Date")
	})
}

func TestResolveAlias(t *testing.T) {
	t.Run("string literal union synthesizes an enum", func(t *testing.T) {
		got, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclTypeAlias,
			Name: "Status",
			Aliased: &source.TypeExpr{
				Kind:  source.KindUnion,
				Alias: "Status",
				Members: []*source.TypeExpr{
					{Kind: source.KindStringLiteral, Lit: strLit("pending")},
					{Kind: source.KindStringLiteral, Lit: strLit("active")},
				},
			},
		})
		require.NoError(t, err)
		enum := got.(ir.EnumDecl)
		assert.Equal(t, "Status", enum.Name)
		require.Len(t, enum.Members, 2)
		assert.Equal(t, "pending", enum.Members[0].Name)
		assert.Equal(t, ir.StringValue("pending"), enum.Members[0].Value)
	})

	t.Run("number literal union names members by their textual form", func(t *testing.T) {
		got, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclTypeAlias,
			Name: "Priority",
			Aliased: &source.TypeExpr{
				Kind: source.KindUnion,
				Members: []*source.TypeExpr{
					{Kind: source.KindNumberLiteral, Lit: numLit(1)},
					{Kind: source.KindNumberLiteral, Lit: numLit(2)},
					{Kind: source.KindNumberLiteral, Lit: numLit(3)},
				},
			},
		})
		require.NoError(t, err)
		enum := got.(ir.EnumDecl)
		assert.Equal(t, "1", enum.Members[0].Name)
		assert.Equal(t, ir.NumberValue(1), enum.Members[0].Value)
		assert.Equal(t, "3", enum.Members[2].Name)
	})

	t.Run("null members are excluded from the literal check", func(t *testing.T) {
		got, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclTypeAlias,
			Name: "Status",
			Aliased: &source.TypeExpr{
				Kind: source.KindUnion,
				Members: []*source.TypeExpr{
					{Kind: source.KindStringLiteral, Lit: strLit("on")},
					{Kind: source.KindNull},
					{Kind: source.KindStringLiteral, Lit: strLit("off")},
				},
			},
		})
		require.NoError(t, err)
		enum := got.(ir.EnumDecl)
		require.Len(t, enum.Members, 2)
	})

	t.Run("object shape synthesizes a record", func(t *testing.T) {
		got, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclTypeAlias,
			Name: "UserProfile",
			Aliased: &source.TypeExpr{
				Kind: source.KindObject,
				Props: []source.Property{
					{Name: "email", Type: &source.TypeExpr{Kind: source.KindString}},
					{Name: "age", Type: &source.TypeExpr{Kind: source.KindNumber}},
				},
			},
		})
		require.NoError(t, err)
		rec := got.(ir.RecordDecl)
		assert.Equal(t, "UserProfile", rec.Name)
		require.Len(t, rec.Properties, 2)
		assert.True(t, rec.Properties[0].Type.Equal(ir.String()))
		assert.True(t, rec.Properties[1].Type.Equal(ir.Number()))
	})

	t.Run("mixed literal union is rejected", func(t *testing.T) {
		_, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclTypeAlias,
			Name: "Odd",
			Aliased: &source.TypeExpr{
				Kind: source.KindUnion,
				Members: []*source.TypeExpr{
					{Kind: source.KindStringLiteral, Lit: strLit("a")},
					{Kind: source.KindNumberLiteral, Lit: numLit(1)},
				},
			},
		})
		var shape *UnsupportedAliasShapeError
		require.ErrorAs(t, err, &shape)
		assert.Equal(t, "Odd", shape.Alias)
	})

	t.Run("union of non-literals is rejected", func(t *testing.T) {
		_, err := ResolveDeclaration(source.Declaration{
			Kind: source.DeclTypeAlias,
			Name: "Either",
			Aliased: &source.TypeExpr{
				Kind: source.KindUnion,
				Members: []*source.TypeExpr{
					{Kind: source.KindString},
					{Kind: source.KindNumber},
				},
			},
		})
		var shape *UnsupportedAliasShapeError
		require.ErrorAs(t, err, &shape)
	})

	t.Run("alias to a primitive is rejected", func(t *testing.T) {
		_, err := ResolveDeclaration(source.Declaration{
			Kind:    source.DeclTypeAlias,
			Name:    "Name",
			Aliased: &source.TypeExpr{Kind: source.KindString},
		})
		var shape *UnsupportedAliasShapeError
		require.ErrorAs(t, err, &shape)
		assert.Equal(t, "Name", shape.Alias)
	})
}
