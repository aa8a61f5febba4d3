package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"ticketdesk/internal/model"
	"ticketdesk/internal/ticket/repository"
	"ticketdesk/pkg/paginator"
	postgrePkg "ticketdesk/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
)

const ticketColumns = "id, title, description, status, user_id, created_at, updated_at"

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Ticket, error) {
	t := opts.Ticket
	if t.ID == "" {
		t.ID = r.newID()
	}

	now := r.clock()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tickets (id, title, description, status, user_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Title, null.NewString(t.Description, t.Description != ""), t.Status, t.UserID, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.Create.Exec: %v", err)
		return model.Ticket{}, err
	}

	return t, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Ticket, error) {
	if err := postgrePkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.Detail.IsUUID: %v", err)
		return model.Ticket{}, err
	}

	var row ticketRow
	err := queries.Raw(
		fmt.Sprintf("SELECT %s FROM tickets WHERE id = $1", ticketColumns), id,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Ticket{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.Detail.Bind: %v", err)
		return model.Ticket{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Ticket, paginator.Paginator, error) {
	where, args, err := r.buildTicketWhere(ctx, opts.Filter)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tickets"+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	var rows []ticketRow
	query := fmt.Sprintf("SELECT %s FROM tickets%s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		ticketColumns, where, pq.Limit, pq.Offset())
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	res := make([]model.Ticket, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}

	return res, paginator.New(pq, total), nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Ticket, error) {
	if err := postgrePkg.IsUUID(opts.ID); err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.Update.IsUUID: %v", err)
		return model.Ticket{}, err
	}

	sets := []string{}
	args := []any{}

	if opts.Title != nil {
		args = append(args, *opts.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if opts.Description != nil {
		args = append(args, *opts.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if opts.Status != nil {
		args = append(args, string(*opts.Status))
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}

	args = append(args, r.clock())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))

	args = append(args, opts.ID)
	query := fmt.Sprintf("UPDATE tickets SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.Update.Exec: %v", err)
		return model.Ticket{}, err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return model.Ticket{}, repository.ErrNotFound
	}

	return r.Detail(ctx, sc, opts.ID)
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgrePkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.Delete.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx, "DELETE FROM tickets WHERE id = $1", id)
	if err != nil {
		r.l.Errorf(ctx, "internal.ticket.repository.postgre.Delete.Exec: %v", err)
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
