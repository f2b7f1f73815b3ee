package formatter

import (
	"github.com/alexanderramin/taskora/internal/domain"
)

func FormatTribes(tribes []domain.Tribe, userID string) string {
	if len(tribes) == 0 {
		return Dim("You are not in any tribe yet.")
	}
	rows := make([][]string, 0, len(tribes))
	for _, t := range tribes {
		owner := t.OwnerID
		if owner == userID {
			owner = StyleGreen.Render("you")
		}
		rows = append(rows, []string{t.ID, t.Name, owner, t.CreatedAt.Format("2006-01-02")})
	}
	return RenderTable([]string{"ID", "NAME", "OWNER", "CREATED"}, rows)
}

func FormatMembers(members []domain.TribeMember) string {
	if len(members) == 0 {
		return Dim("No members.")
	}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		role := string(m.Role)
		if m.Role == domain.RoleOwner {
			role = StyleHeader.Render(role)
		}
		rows = append(rows, []string{m.UserID, role, m.JoinedAt.Format("2006-01-02")})
	}
	return RenderTable([]string{"USER", "ROLE", "JOINED"}, rows)
}
