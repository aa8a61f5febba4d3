package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"ticketdesk/internal/model"
	"ticketdesk/internal/ticket/repository"
	postgrePkg "ticketdesk/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
)

const attachmentColumns = "id, ticket_id, object_name, file_name, content_type, size, created_at"

func (r *implRepository) CreateAttachment(ctx context.Context, sc model.Scope, opts repository.CreateAttachmentOptions) (model.Attachment, error) {
	at := opts.Attachment
	if at.ID == "" {
		at.ID = r.newID()
	}
	at.CreatedAt = r.clock()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attachments (id, ticket_id, object_name, file_name, content_type, size, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		at.ID, at.TicketID, at.ObjectName, at.FileName,
		null.NewString(at.ContentType, at.ContentType != ""), at.Size, at.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.CreateAttachment.Exec: %v", err)
		return model.Attachment{}, err
	}

	return at, nil
}

func (r *implRepository) ListAttachments(ctx context.Context, sc model.Scope, ticketID string) ([]model.Attachment, error) {
	if err := postgrePkg.IsUUID(ticketID); err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.ListAttachments.IsUUID: %v", err)
		return nil, err
	}

	var rows []attachmentRow
	err := queries.Raw(
		fmt.Sprintf("SELECT %s FROM attachments WHERE ticket_id = $1 ORDER BY created_at ASC", attachmentColumns),
		ticketID,
	).Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.ListAttachments.Bind: %v", err)
		return nil, err
	}

	res := make([]model.Attachment, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}

	return res, nil
}

func (r *implRepository) DetailAttachment(ctx context.Context, sc model.Scope, id string) (model.Attachment, error) {
	if err := postgrePkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.DetailAttachment.IsUUID: %v", err)
		return model.Attachment{}, err
	}

	var row attachmentRow
	err := queries.Raw(
		fmt.Sprintf("SELECT %s FROM attachments WHERE id = $1", attachmentColumns), id,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Attachment{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.DetailAttachment.Bind: %v", err)
		return model.Attachment{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) DeleteAttachment(ctx context.Context, sc model.Scope, id string) error {
	if err := postgrePkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.DeleteAttachment.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, "DELETE FROM attachments WHERE id = $1", id)
	if err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.DeleteAttachment.Exec: %v", err)
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
