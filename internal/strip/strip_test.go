package strip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gerrors "github.com/gjslink/cli/internal/errors"
)

func allKnown(string) bool { return true }

func knownSet(names ...string) func(string) bool {
	set := map[string]bool{}
	for _, n := range names {
		set[n] = true
	}
	return func(n string) bool { return set[n] }
}

const compiledUnit = `"use strict";
Object.defineProperty(exports, "__esModule", { value: true });
exports.Catalog = exports.loadCatalog = void 0;
const util_1 = require("./util.js");
class Catalog {
    constructor() {
        this.items = util_1.emptyList();
    }
}
function loadCatalog(path) {
    return new Catalog();
}
exports.Catalog = Catalog;
exports.loadCatalog = loadCatalog;
`

func TestStripScaffolding(t *testing.T) {
	res, err := Strip("catalog", compiledUnit, knownSet("util"))
	require.NoError(t, err)

	assert.NotContains(t, res.Text, "__esModule")
	assert.NotContains(t, res.Text, "void 0")
	assert.NotContains(t, res.Text, "require(")
	assert.NotContains(t, res.Text, "exports.")

	// runtime code survives untouched
	assert.Contains(t, res.Text, "class Catalog {")
	assert.Contains(t, res.Text, "function loadCatalog(path)")
	assert.Contains(t, res.Text, "util_1.emptyList()")
}

func TestStripHarvestsExports(t *testing.T) {
	res, err := Strip("catalog", compiledUnit, knownSet("util"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Catalog", "loadCatalog"}, res.Exports)
	assert.Equal(t, map[string]string{"util_1": "util"}, res.Aliases)
}

func TestStripIdempotent(t *testing.T) {
	first, err := Strip("catalog", compiledUnit, knownSet("util"))
	require.NoError(t, err)

	second, err := Strip("catalog", first.Text, knownSet("util"))
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Empty(t, second.Exports)
	assert.Empty(t, second.Aliases)
}

func TestStripInteropShims(t *testing.T) {
	src := `"use strict";
var __importDefault = (this && this.__importDefault) || function (mod) {
    return (mod && mod.__esModule) ? mod : { "default": mod };
};
const widget_1 = __importDefault(require("./widget.js"));
const x = 1;
`
	res, err := Strip("app", src, knownSet("widget"))
	require.NoError(t, err)

	assert.NotContains(t, res.Text, "__importDefault")
	assert.Contains(t, res.Text, "const x = 1;")
	assert.Equal(t, map[string]string{"widget_1": "widget"}, res.Aliases)
}

func TestStripStringLiteralSafety(t *testing.T) {
	src := "const doc = \"exports.Foo = Foo;\";\n" +
		"const tpl = `Object.defineProperty(exports, \"__esModule\", { value: true });`;\n" +
		"// exports.Bar = Bar;\n"

	res, err := Strip("docs", src, allKnown)
	require.NoError(t, err)

	assert.Equal(t, src, res.Text)
	assert.Empty(t, res.Exports)
}

func TestStripMultipleStubNames(t *testing.T) {
	src := "exports.A = exports.B = exports.C = void 0;\n" +
		"exports.A = A;\nexports.B = B;\nexports.C = C;\n"

	res, err := Strip("abc", src, allKnown)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, res.Exports)
	assert.Empty(t, res.Text)
}

func TestStripMalformedExport(t *testing.T) {
	src := "exports.Foo = makeFoo();\n"

	_, err := Strip("bad", src, allKnown)
	require.Error(t, err)

	var merr *MalformedExportError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "bad", merr.Unit)
	assert.ErrorIs(t, err, gerrors.ErrTranslate)
}

func TestStripDefaultExportRejected(t *testing.T) {
	src := "exports.default = Catalog;\n"

	_, err := Strip("catalog", src, allKnown)
	var merr *MalformedExportError
	require.ErrorAs(t, err, &merr)
}

func TestStripUnknownLoaderTarget(t *testing.T) {
	src := "const ghost_1 = require(\"./ghost.js\");\n"

	_, err := Strip("app", src, knownSet("util"))
	require.Error(t, err)
	assert.ErrorIs(t, err, gerrors.ErrTranslate)
	assert.Contains(t, err.Error(), "ghost")
}

func TestStripParentRelativeLoader(t *testing.T) {
	src := "const shared_1 = require(\"../shared.js\");\n"

	res, err := Strip("app", src, knownSet("shared"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"shared_1": "shared"}, res.Aliases)
}

func TestStripNativeRequireLeftAlone(t *testing.T) {
	src := "const GLib = require(\"gi://GLib\");\n"

	res, err := Strip("app", src, allKnown)
	require.NoError(t, err)
	assert.Equal(t, src, res.Text)
}

func TestStripUnrecognizedExportsUsageKept(t *testing.T) {
	src := "function f() {\n    return exports;\n}\n"

	res, err := Strip("app", src, allKnown)
	require.NoError(t, err)
	assert.Equal(t, src, res.Text)
}
