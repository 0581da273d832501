package court

import (
	"fmt"
	"strings"
)

// ExportWhatsApp renders a generated team list as the share message the
// group posts to WhatsApp.
func ExportWhatsApp(teams []Team, totalPlayers int) string {
	var b strings.Builder
	b.WriteString("🏐 *TIMES GERADOS*\n\n")

	for _, team := range teams {
		fmt.Fprintf(&b, "*Time %d* (%d jogadores)\n", team.ID, len(team.Players))
		for i, p := range team.Players {
			fmt.Fprintf(&b, "%d. %s %s - %s\n", i+1, genderEmoji(p.Gender), p.Name, p.Level)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "📊 *Total de jogadores:* %d\n", totalPlayers)
	b.WriteString("🎲 Times gerados automaticamente")
	return b.String()
}

func genderEmoji(g Gender) string {
	switch g {
	case GenderMasculino:
		return "👨"
	case GenderFeminino:
		return "👩"
	}
	return "❓"
}
