package postgre

import (
	"context"
	"fmt"
	"strings"

	"ticketdesk/internal/ticket/repository"
	postgrePkg "ticketdesk/pkg/postgre"

	"github.com/aarondl/strmangle"
)

// buildTicketWhere assembles the WHERE clause and args for ticket listings.
func (r *implRepository) buildTicketWhere(ctx context.Context, f repository.Filter) (string, []any, error) {
	conds := []string{}
	args := []any{}

	if len(f.IDs) > 0 {
		if err := postgrePkg.ValidateUUIDs(f.IDs); err != nil {
			r.l.Errorf(ctx, "internal.ticket.repository.postgre.buildTicketWhere.ValidateUUIDs: %v", err)
			return "", nil, err
		}
		placeholders := strmangle.Placeholders(true, len(f.IDs), len(args)+1, 1)
		conds = append(conds, fmt.Sprintf("id IN (%s)", placeholders))
		for _, id := range f.IDs {
			args = append(args, id)
		}
	}

	if f.Status != "" {
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, f.Status)
	}

	if f.UserID != "" {
		if err := postgrePkg.IsUUID(f.UserID); err != nil {
			r.l.Errorf(ctx, "internal.ticket.repository.postgre.buildTicketWhere.IsUUID: %v", err)
			return "", nil, err
		}
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)+1))
		args = append(args, f.UserID)
	}

	if len(conds) == 0 {
		return "", args, nil
	}

	return " WHERE " + strings.Join(conds, " AND "), args, nil
}
