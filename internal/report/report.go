package report

import (
	"fmt"
	"os"
	"strings"

	"sakura/internal/engine"
)

// Format renders the final score lines and the winner announcement.
func Format(scores []engine.ScoreEntry) string {
	var b strings.Builder
	for _, s := range scores {
		fmt.Fprintf(&b, "Player %d: %d points\n", s.PlayerID, s.Total)
	}
	b.WriteString("\n")

	winners := engine.Winners(scores)
	names := make([]string, len(winners))
	for i, id := range winners {
		names[i] = fmt.Sprintf("Player %d", id)
	}
	switch len(names) {
	case 0:
	case 1:
		fmt.Fprintf(&b, "Congratulations! %s wins the game!\n", names[0])
	default:
		fmt.Fprintf(&b, "Congratulations! %s and %s win the game!\n",
			strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
	}
	return b.String()
}

// Append writes the report to the end of the file at path.
func Append(path, text string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open for append: %w", err)
	}
	if _, err := f.WriteString("\n" + text); err != nil {
		f.Close()
		return fmt.Errorf("append results: %w", err)
	}
	return f.Close()
}
