package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisgreen1993/expo-native-codegen/internal/source"
)

func TestLoadDeclarations(t *testing.T) {
	result, err := LoadDeclarations("testdata/decls")
	require.NoError(t, err)
	assert.Equal(t, 1, result.FileCount)
	require.Len(t, result.Declarations, 3)

	status := result.Declarations[0]
	assert.Equal(t, source.DeclEnum, status.Kind)
	assert.Equal(t, "Status", status.Name)
	require.Len(t, status.Members, 2)
	assert.Equal(t, "Pending", status.Members[0].Name)
	require.NotNil(t, status.Members[0].Value)
	assert.Equal(t, "pending", status.Members[0].Value.Str)

	user := result.Declarations[1]
	assert.Equal(t, source.DeclInterface, user.Kind)
	require.Len(t, user.Properties, 6)
	assert.Equal(t, source.KindString, user.Properties[0].Type.Kind)
	assert.Equal(t, source.KindEnumRef, user.Properties[2].Type.Kind)
	assert.Equal(t, "Status", user.Properties[2].Type.Ref)
	assert.Equal(t, source.KindArray, user.Properties[4].Type.Kind)
	assert.Equal(t, source.KindString, user.Properties[4].Type.Elem.Kind)
	assert.False(t, user.Properties[0].Optional)
	assert.True(t, user.Properties[5].Optional)

	theme := result.Declarations[2]
	assert.Equal(t, source.DeclTypeAlias, theme.Kind)
	require.NotNil(t, theme.Aliased)
	assert.Equal(t, source.KindUnion, theme.Aliased.Kind)
	// The loader stamps the alias name onto the union so use sites
	// resolve to the synthesized enum.
	assert.Equal(t, "Theme", theme.Aliased.Alias)
	require.Len(t, theme.Aliased.Members, 2)
	assert.Equal(t, source.KindStringLiteral, theme.Aliased.Members[0].Kind)
}

func TestLoadDeclarationsUnknownReference(t *testing.T) {
	result, err := LoadDeclarations("testdata/dangling")
	require.NoError(t, err)
	require.Len(t, result.Declarations, 1)

	// "Profle" names no declaration in the set, so the loader hands it
	// over unclassified instead of as a record reference.
	profile := result.Declarations[0].Properties[1]
	assert.Equal(t, source.KindOther, profile.Type.Kind)
	assert.Equal(t, "Profle", profile.Type.Name)
	assert.Empty(t, profile.Type.Ref)
}

func TestLoadDeclarationsMissingDir(t *testing.T) {
	_, err := LoadDeclarations("testdata/does-not-exist")
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadDeclarationsEmptyDir(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadDeclarations(dir)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNoFiles, loadErr.Code)
}

func TestFindCUEFiles(t *testing.T) {
	files, err := FindCUEFiles("testdata/decls")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0], "types.cue")
}
