package parser

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokensmith/pkg/util"
)

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, LanguageTypeScript, DetectLanguage("tokens.ts"))
	assert.Equal(t, LanguageTypeScript, DetectLanguage("tokens.MTS"))
	assert.Equal(t, LanguageJavaScript, DetectLanguage("tailwind.config.js"))
	assert.Equal(t, LanguageJavaScript, DetectLanguage("tokens.cjs"))
	assert.Equal(t, LanguageUnknown, DetectLanguage("tokens.json"))
	assert.Equal(t, "unknown", LanguageUnknown.String())
}

func TestParseTypeScript(t *testing.T) {
	pm := NewParserManager(util.Discard())
	defer pm.Close()

	tree, err := pm.Parse([]byte(`export const primary = { light: "#3b82f6" } as const;`), LanguageTypeScript)
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	assert.Equal(t, "program", root.Kind())
	assert.False(t, root.HasError())
}

func TestParseFile_JavaScript(t *testing.T) {
	pm := NewParserManager(util.Discard())
	defer pm.Close()

	tree, err := pm.ParseFile([]byte(`module.exports = { theme: {} };`), "tailwind.config.js")
	require.NoError(t, err)
	defer tree.Close()
	assert.Equal(t, "program", tree.RootNode().Kind())

	_, err = pm.ParseFile([]byte("{}"), "tokens.json")
	assert.Error(t, err)
}

func TestParse_Unknown(t *testing.T) {
	pm := NewParserManager(nil)
	defer pm.Close()
	_, err := pm.Parse([]byte("x"), LanguageUnknown)
	assert.Error(t, err)
}

func TestParse_Concurrent(t *testing.T) {
	pm := NewParserManager(util.Discard())
	defer pm.Close()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, err := pm.Parse([]byte(`export const a = { light: "#000000", dark: "#ffffff" };`), LanguageJavaScript)
			if assert.NoError(t, err) {
				tree.Close()
			}
		}()
	}
	wg.Wait()

	stats := pm.GetStats()
	assert.Equal(t, 16, stats.ParsesCalled)
	assert.GreaterOrEqual(t, stats.ParsersCreated, 1)
	assert.LessOrEqual(t, stats.ParsersCreated, util.GetOptimalPoolSize())
}

func TestParse_ExplicitPoolSize(t *testing.T) {
	pm := NewParserManagerWithPoolSize(1, util.Discard())
	defer pm.Close()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, err := pm.Parse([]byte(`export const b = "#123456";`), LanguageTypeScript)
			if assert.NoError(t, err) {
				tree.Close()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, pm.GetStats().ParsersCreated)
}
