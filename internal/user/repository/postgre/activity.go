package postgre

import (
	"context"
	"fmt"

	"ticketdesk/internal/model"
	"ticketdesk/internal/user/repository"
	postgrePkg "ticketdesk/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
)

const activityColumns = "id, action, timestamp, user_id"

func (r *implRepository) CreateActivity(ctx context.Context, opts repository.CreateActivityOptions) (model.ActivityLog, error) {
	a := opts.Activity
	if a.ID == "" {
		a.ID = r.newID()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = r.clock()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_logs (id, action, timestamp, user_id) VALUES ($1, $2, $3, $4)`,
		a.ID, a.Action, a.Timestamp, null.NewString(a.UserID, a.UserID != ""),
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.CreateActivity.Exec: %v", err)
		return model.ActivityLog{}, err
	}

	return a, nil
}

func (r *implRepository) ListActivity(ctx context.Context, userID string, limit int64) ([]model.ActivityLog, error) {
	if limit < 1 {
		limit = 50
	}

	query := fmt.Sprintf("SELECT %s FROM activity_logs", activityColumns)
	args := []any{}

	if userID != "" {
		if err := postgrePkg.IsUUID(userID); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgre.ListActivity.IsUUID: %v", err)
			return nil, err
		}
		query += " WHERE user_id = $1"
		args = append(args, userID)
	}
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT %d", limit)

	var rows []activityRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgre.ListActivity.Bind: %v", err)
		return nil, err
	}

	res := make([]model.ActivityLog, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}

	return res, nil
}
