package usecase

import (
	"context"

	"ticketdesk/internal/model"
	"ticketdesk/internal/user"
	"ticketdesk/internal/user/repository"
)

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	if id != sc.UserID && !sc.IsStaff() {
		return model.User{}, user.ErrUserNotFound
	}

	usr, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (uc *usecase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	usr, err := uc.repo.Detail(ctx, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Me: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (uc *usecase) ListActivity(ctx context.Context, sc model.Scope, userID string) ([]model.ActivityLog, error) {
	// Regular users only see their own trail.
	if !sc.IsStaff() {
		userID = sc.UserID
	}

	logs, err := uc.repo.ListActivity(ctx, userID, 0)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.ListActivity: %v", err)
		return nil, err
	}

	return logs, nil
}
