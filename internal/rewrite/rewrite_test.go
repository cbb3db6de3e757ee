package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/gjslink/cli/internal/errors"
)

func exportSet(units map[string][]string) map[string]map[string]bool {
	out := map[string]map[string]bool{}
	for unit, syms := range units {
		out[unit] = map[string]bool{}
		for _, s := range syms {
			out[unit][s] = true
		}
	}
	return out
}

func TestRewriteQualifiedReferences(t *testing.T) {
	aliases := map[string]string{"catalog_1": "catalog"}
	exports := exportSet(map[string][]string{"catalog": {"Catalog", "loadCatalog"}})

	src := "const c = new catalog_1.Catalog();\ncatalog_1.loadCatalog(path);\n"

	out, err := Rewrite("app", src, aliases, exports)
	require.NoError(t, err)
	assert.Equal(t, "const c = new Catalog();\nloadCatalog(path);\n", out)
}

func TestRewriteNoAliasesPassthrough(t *testing.T) {
	src := "const x = 1;\n"
	out, err := Rewrite("app", src, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestRewritePropertyAccessNotAnAlias(t *testing.T) {
	aliases := map[string]string{"util_1": "util"}
	exports := exportSet(map[string][]string{"util": {"clamp"}})

	// obj.util_1 is member access on obj, not a loader alias reference
	src := "const v = obj.util_1;\nconst w = util_1.clamp(v);\n"

	out, err := Rewrite("app", src, aliases, exports)
	require.NoError(t, err)
	assert.Equal(t, "const v = obj.util_1;\nconst w = clamp(v);\n", out)
}

func TestRewriteAliasInStringUntouched(t *testing.T) {
	aliases := map[string]string{"util_1": "util"}
	exports := exportSet(map[string][]string{"util": {"clamp"}})

	src := "const msg = \"see util_1.clamp\";\nconst x = util_1.clamp(1);\n"

	out, err := Rewrite("app", src, aliases, exports)
	require.NoError(t, err)
	assert.Equal(t, "const msg = \"see util_1.clamp\";\nconst x = clamp(1);\n", out)
}

func TestRewriteUnknownSymbol(t *testing.T) {
	aliases := map[string]string{"util_1": "util"}
	exports := exportSet(map[string][]string{"util": {"clamp"}})

	_, err := Rewrite("app", "util_1.missing();\n", aliases, exports)
	require.Error(t, err)

	var uerr *UnknownExportError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "missing", uerr.Symbol)
	assert.Equal(t, "util", uerr.Target)
	assert.ErrorIs(t, err, gerrors.ErrTranslate)
}

func TestRewriteAliasWithoutMemberAccess(t *testing.T) {
	aliases := map[string]string{"util_1": "util"}
	exports := exportSet(map[string][]string{"util": {"clamp"}})

	_, err := Rewrite("app", "const u = util_1;\n", aliases, exports)
	var uerr *UnknownExportError
	require.ErrorAs(t, err, &uerr)
	assert.Empty(t, uerr.Symbol)
}

func TestRewritePrefixedIdentifierNotAnAlias(t *testing.T) {
	aliases := map[string]string{"util_1": "util"}
	exports := exportSet(map[string][]string{"util": {"clamp"}})

	src := "const util_12 = 5;\nutil_1.clamp(util_12);\n"

	out, err := Rewrite("app", src, aliases, exports)
	require.NoError(t, err)
	assert.Equal(t, "const util_12 = 5;\nclamp(util_12);\n", out)
}

func TestCheckCollisionsClean(t *testing.T) {
	err := CheckCollisions(map[string][]string{
		"catalog": {"Catalog"},
		"util":    {"clamp", "lerp"},
	})
	assert.NoError(t, err)
}

func TestCheckCollisionsDetected(t *testing.T) {
	err := CheckCollisions(map[string][]string{
		"beta":  {"Shared"},
		"alpha": {"Shared"},
	})
	require.Error(t, err)

	var cerr *NameCollisionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Shared", cerr.Symbol)
	assert.Equal(t, []string{"alpha", "beta"}, cerr.Units)
	assert.ErrorIs(t, err, gerrors.ErrCollision)
}

func TestCheckCollisionsDeterministic(t *testing.T) {
	exports := map[string][]string{
		"a": {"X"},
		"b": {"X"},
		"c": {"X"},
	}
	for i := 0; i < 10; i++ {
		err := CheckCollisions(exports)
		var cerr *NameCollisionError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, []string{"a", "b"}, cerr.Units)
	}
}
