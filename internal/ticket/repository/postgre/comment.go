package postgre

import (
	"context"
	"fmt"

	"ticketdesk/internal/model"
	"ticketdesk/internal/ticket/repository"
	postgrePkg "ticketdesk/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
)

const commentColumns = "id, content, ticket_id, user_id, created_at"

func (r *implRepository) CreateComment(ctx context.Context, sc model.Scope, opts repository.CreateCommentOptions) (model.Comment, error) {
	cm := opts.Comment
	if cm.ID == "" {
		cm.ID = r.newID()
	}
	cm.CreatedAt = r.clock()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, content, ticket_id, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		cm.ID, cm.Content, cm.TicketID, cm.UserID, cm.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.CreateComment.Exec: %v", err)
		return model.Comment{}, err
	}

	return cm, nil
}

func (r *implRepository) ListComments(ctx context.Context, sc model.Scope, ticketID string) ([]model.Comment, error) {
	if err := postgrePkg.IsUUID(ticketID); err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.ListComments.IsUUID: %v", err)
		return nil, err
	}

	var rows []commentRow
	err := queries.Raw(
		fmt.Sprintf("SELECT %s FROM comments WHERE ticket_id = $1 ORDER BY created_at ASC", commentColumns),
		ticketID,
	).Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.ListComments.Bind: %v", err)
		return nil, err
	}

	res := make([]model.Comment, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}

	return res, nil
}
