package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"swiss-app/internal/model"
)

func runCLI(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(&out)
	app.ErrWriter = &bytes.Buffer{}
	app.ExitErrHandler = func(*cli.Context, error) {}
	argv := append([]string{"swissctl", "--config", "", "--db", db}, args...)
	err := app.Run(argv)
	return out.String(), err
}

func TestCLI_TournamentRound(t *testing.T) {
	db := filepath.Join(t.TempDir(), "swiss.db")

	for _, name := range []string{"Ann", "Bob", "Cid", "Dee"} {
		out, err := runCLI(t, db, "players", "register", name)
		require.NoError(t, err)
		assert.Contains(t, out, "registered "+name)
	}

	out, err := runCLI(t, db, "players", "count")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	_, err = runCLI(t, db, "matches", "report", "1", "2")
	require.NoError(t, err)
	_, err = runCLI(t, db, "matches", "report", "3", "4")
	require.NoError(t, err)

	out, err = runCLI(t, db, "standings")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Place  Name  Wins  Played",
		"1.     Ann   1     1",
		"       Cid   1     1",
		"3.     Bob   0     1",
		"       Dee   0     1",
		"",
	}, "\n"), out)

	out, err = runCLI(t, db, "pairings")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Board  Player    Opponent",
		"1.     Ann (#1)  Cid (#3)",
		"2.     Bob (#2)  Dee (#4)",
		"",
	}, "\n"), out)

	_, err = runCLI(t, db, "players", "reset")
	require.NoError(t, err)
	out, err = runCLI(t, db, "matches", "list")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCLI_Errors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "swiss.db")
	for _, name := range []string{"Ann", "Bob", "Cid"} {
		_, err := runCLI(t, db, "players", "register", name)
		require.NoError(t, err)
	}

	_, err := runCLI(t, db, "pairings")
	assert.ErrorContains(t, err, "even player count")

	_, err = runCLI(t, db, "matches", "report", "1", "x")
	assert.Error(t, err)

	_, err = runCLI(t, db, "matches", "report", "1", "1")
	assert.Error(t, err)

	_, err = runCLI(t, db, "players", "register")
	assert.Error(t, err)
}

func TestFormatPlayers(t *testing.T) {
	assert.Equal(t, "No players registered\n", formatPlayers(nil))
	got := formatPlayers([]model.Player{{ID: 1, Name: "Ann"}, {ID: 12, Name: "Bartholomew"}})
	assert.Equal(t, "ID  Name\n1   Ann\n12  Bartholomew\n", got)
}

func TestFormatPairings_Empty(t *testing.T) {
	assert.Equal(t, "No pairings\n", formatPairings(nil))
}
