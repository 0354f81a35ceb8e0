//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-rows", "100")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.OpenHelp()
	require.True(t, tf.SeePlain("one page up/down"), "Should show key reference in pager")

	// Quit pager and ensure TUI again
	tf.Quit()
	require.True(t, tf.SeePlain("rows 1-36 of 100"), "Should return to the table after closing pager")
}

func TestAllRowsPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-rows", "100")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.PageDown()
	require.True(t, tf.SeePlain("rows 37-72 of 100"))

	tf.OpenAllRows()
	require.True(t, tf.SeePlain("UUID"), "Should show the header in the pager")

	tf.Quit()
	require.True(t, tf.SeePlain("rows 37-72 of 100"), "Scroll position survives the pager")
}
