package sqlstore

import (
	"database/sql"
	"os"
	"testing"

	"github.com/battlesnakeio/holosnake/controller/testsuite"
	"github.com/stretchr/testify/require"
)

func mustExec(db *sql.DB, sq string) {
	if _, err := db.Exec(sq); err != nil {
		panic(err)
	}
}

func TestSQLStore(t *testing.T) {
	url := os.Getenv("HOLOSNAKE_PG_URL")
	if url == "" {
		t.Skip("HOLOSNAKE_PG_URL not set")
	}
	s, err := NewSQLStore(url)
	require.NoError(t, err)
	defer s.Close()

	testsuite.Suite(t, s, func() {
		mustExec(s.db, "TRUNCATE high_scores")
	})
}
