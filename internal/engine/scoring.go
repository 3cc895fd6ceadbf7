package engine

// RowScore holds the scoring breakdown for one player's rows.
type RowScore struct {
	Points  [RowCount]int `json:"points"`
	Lengths [RowCount]int `json:"lengths"`
	// Longest is the doubled row, -1 when every row is empty.
	Longest int `json:"longest"`
	Total   int `json:"total"`
}

// ScoreRows scores a set of rows. The longest row counts twice; on equal
// length the lowest index wins.
func ScoreRows(rows [RowCount]*Sequence) RowScore {
	rs := RowScore{Longest: -1}
	longestLen := 0
	for i, row := range rows {
		if row == nil {
			continue
		}
		rs.Points[i] = row.Points()
		rs.Lengths[i] = row.Len()
		rs.Total += rs.Points[i]
		if rs.Lengths[i] > longestLen {
			longestLen = rs.Lengths[i]
			rs.Longest = i
		}
	}
	if rs.Longest >= 0 {
		rs.Total += rs.Points[rs.Longest]
	}
	return rs
}

// ScoreEntry holds scoring breakdown for one player.
type ScoreEntry struct {
	PlayerID int      `json:"player_id"`
	Rows     RowScore `json:"rows"`
	Total    int      `json:"total"`
}

// CalculateScores computes final scores for all players.
func (g *Game) CalculateScores() []ScoreEntry {
	entries := make([]ScoreEntry, len(g.Players))
	for i, p := range g.Players {
		rs := ScoreRows(p.Rows)
		entries[i] = ScoreEntry{
			PlayerID: p.ID,
			Rows:     rs,
			Total:    rs.Total,
		}
	}
	return entries
}

// Winners returns the ids of every player holding the top total.
func Winners(entries []ScoreEntry) []int {
	best := 0
	var ids []int
	for i, e := range entries {
		switch {
		case i == 0 || e.Total > best:
			best = e.Total
			ids = []int{e.PlayerID}
		case e.Total == best:
			ids = append(ids, e.PlayerID)
		}
	}
	return ids
}
