//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWithLibrary(t *testing.T, body string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	url := tf.ServeLibrary(body)
	require.NoError(t, tf.StartApp("--base-url", url), "Failed to start app")
	return tf
}

func TestSearchShowsHighlightedResults(t *testing.T) {
	t.Parallel()
	tf := startWithLibrary(t, defaultLibrary)

	require.True(t, tf.Ready(), "Should report a loaded index")
	require.True(t, tf.SeePlain("3 entries indexed"), "Should count the entries")

	require.NoError(t, tf.Open())
	require.True(t, tf.SeePlain("Search documentation..."), "Should show the placeholder")

	require.NoError(t, tf.Type("apex"))
	require.True(t, tf.SeePlain("Apex Basics"), "Should list the title match")
	require.True(t, tf.SeePlain("Integration Patterns"), "Should list the summary match")
}

func TestSearchNoResults(t *testing.T) {
	t.Parallel()
	tf := startWithLibrary(t, defaultLibrary)

	require.True(t, tf.Ready())
	require.NoError(t, tf.Open())
	require.NoError(t, tf.Type("zzzz"))

	require.True(t, tf.SeePlain(`No results found for "zzzz"`), "Should report no results")
}

func TestSearchWithoutIndex(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	// nothing listens on this origin
	require.NoError(t, tf.StartApp("--base-url", "http://127.0.0.1:1"))
	require.True(t, tf.SeePlain("Search index unavailable"), "Should report the failed load")

	require.NoError(t, tf.SendKeys(KeySlash))
	require.NoError(t, tf.Type("apex"))
	require.True(t, tf.SeePlain("Search data not loaded. Please refresh the page."))
}

func TestEscapeClosesAndClears(t *testing.T) {
	t.Parallel()
	tf := startWithLibrary(t, defaultLibrary)

	require.True(t, tf.Ready())
	require.NoError(t, tf.Open())
	require.NoError(t, tf.Type("flows"))
	require.True(t, tf.SeePlain("Declarative automation"))

	require.NoError(t, tf.Close())
	time.Sleep(200 * time.Millisecond)

	// reopening starts from an empty box
	mark := len(tf.SnapshotPlain())
	require.NoError(t, tf.Open())
	require.True(t, tf.WaitFor(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return len(plain) > mark && strings.Contains(plain[mark:], "Search documentation...")
	}, 3*time.Second), "Should show the placeholder after reopening")
}

func TestEnterOpensFirstResult(t *testing.T) {
	t.Parallel()
	tf := startWithLibrary(t, defaultLibrary)

	require.True(t, tf.Ready())
	require.NoError(t, tf.Open())
	require.NoError(t, tf.Type("apex"))
	require.True(t, tf.SeePlain("Apex Basics"))

	require.NoError(t, tf.Enter())

	opened := tf.OpenedURL(3 * time.Second)
	assert.Equal(t, tf.site.URL+"/Salesforce-RAG/rag/apex.html", opened)
}
