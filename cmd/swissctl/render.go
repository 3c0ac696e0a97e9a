package main

import (
	"fmt"
	"strconv"
	"strings"

	"swiss-app/internal/model"
)

// writeTable writes rows under header with every column padded to its
// widest cell.
func writeTable(sb *strings.Builder, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if l := len(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}
	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		sb.WriteString("\n")
	}
	writeRow(header)
	for _, row := range rows {
		writeRow(row)
	}
}

func formatPlayers(players []model.Player) string {
	if len(players) == 0 {
		return "No players registered\n"
	}
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.DisplayName()})
	}
	var sb strings.Builder
	writeTable(&sb, []string{"ID", "Name"}, rows)
	return sb.String()
}

func formatStandings(standings []model.StandingsRow) string {
	if len(standings) == 0 {
		return "No players registered\n"
	}
	rows := make([][]string, 0, len(standings))
	priorWins := -1
	for i, s := range standings {
		// tied players share the place shown on the first of them
		place := ""
		if i == 0 || s.Wins != priorWins {
			place = fmt.Sprintf("%d.", i+1)
			priorWins = s.Wins
		}
		rows = append(rows, []string{place, s.Name, strconv.Itoa(s.Wins), strconv.Itoa(s.Matches)})
	}
	var sb strings.Builder
	writeTable(&sb, []string{"Place", "Name", "Wins", "Played"}, rows)
	return sb.String()
}

func formatPairings(pairings []model.Pairing) string {
	if len(pairings) == 0 {
		return "No pairings\n"
	}
	rows := make([][]string, 0, len(pairings))
	for i, p := range pairings {
		rows = append(rows, []string{
			fmt.Sprintf("%d.", i+1),
			fmt.Sprintf("%s (#%d)", p.Name1, p.ID1),
			fmt.Sprintf("%s (#%d)", p.Name2, p.ID2),
		})
	}
	var sb strings.Builder
	writeTable(&sb, []string{"Board", "Player", "Opponent"}, rows)
	return sb.String()
}
