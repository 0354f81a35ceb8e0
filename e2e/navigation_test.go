//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// The PTY is 40 lines tall; with title, status and help lines the page holds 36 rows.

// statusShown matches once the plain output contains status at least n times
func statusShown(status string, n int) func(string) bool {
	return func(s string) bool {
		return strings.Count(ansiRe.ReplaceAllString(s, ""), status) >= n
	}
}

func TestKeyboardPaging(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-rows", "100")
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.NoError(t, tf.WaitForE(statusShown("rows 1-36 of 100", 1), 3*time.Second, "first page not shown"))

	tf.PageDown()
	require.NoError(t, tf.WaitForE(statusShown("rows 37-72 of 100", 1), 3*time.Second, "PgDn should advance one page"))

	tf.Space()
	require.NoError(t, tf.WaitForE(statusShown("rows 65-100 of 100", 1), 3*time.Second, "Space should stop at the last page"))

	tf.Back()
	require.NoError(t, tf.WaitForE(statusShown("rows 29-64 of 100", 1), 3*time.Second, "b should go back one page"))

	tf.PageUp()
	tf.PageUp()
	tf.Down()
	require.NoError(t, tf.WaitForE(statusShown("rows 2-37 of 100", 1), 3*time.Second, "PgUp should stop at the top"))
}

func TestKeyboardNavigationUpDown(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-rows", "100")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.Down()
	require.NoError(t, tf.WaitForE(statusShown("rows 2-37 of 100", 1), 3*time.Second, "Down should move one row"))

	tf.Up()
	tf.Up()
	tf.Down()
	require.NoError(t, tf.WaitForE(statusShown("rows 2-37 of 100", 2), 3*time.Second, "Up should stop at the top"))
}

func TestShortDataset(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-rows", "5")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.PageDown()
	tf.Down()
	tf.Up()
	require.NoError(t, tf.WaitForE(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return strings.Contains(plain, "rows 1-5 of 5") && !strings.Contains(plain, "rows 2-")
	}, 3*time.Second, "A dataset shorter than a page never scrolls"))
}
