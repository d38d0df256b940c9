package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStoreAppliesConnectionPragmas(t *testing.T) {
	t.Parallel()

	st, err := NewStore(filepath.Join(t.TempDir(), "pragmas.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	var busy int
	require.NoError(t, st.db.QueryRow(`PRAGMA busy_timeout`).Scan(&busy))
	require.Equal(t, 5000, busy)

	var journal string
	require.NoError(t, st.db.QueryRow(`PRAGMA journal_mode`).Scan(&journal))
	require.Equal(t, "wal", journal)

	var fk int
	require.NoError(t, st.db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	require.Equal(t, 1, fk)
}

func TestNewStoreKeepsCallerOptions(t *testing.T) {
	t.Parallel()

	// A DSN that already carries a query string must not lose either its own
	// options or the connection pragmas.
	st, err := NewStore("file:" + filepath.Join(t.TempDir(), "opts.db") + "?cache=private")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Ping(context.Background()))

	var busy int
	require.NoError(t, st.db.QueryRow(`PRAGMA busy_timeout`).Scan(&busy))
	require.Equal(t, 5000, busy)
}
