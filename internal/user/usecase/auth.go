package usecase

import (
	"context"
	"fmt"

	"ticketdesk/internal/model"
	"ticketdesk/internal/user"
	"ticketdesk/internal/user/repository"
	"ticketdesk/pkg/encrypter"
	"ticketdesk/pkg/mailer"
	"ticketdesk/pkg/scope"
)

const minPasswordLength = 8

func (uc *usecase) Register(ctx context.Context, ip user.RegisterInput) (model.User, error) {
	if err := validateRegisterInput(ip); err != nil {
		return model.User{}, err
	}

	if _, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Username: ip.Username}); err == nil {
		return model.User{}, user.ErrUsernameTaken
	} else if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.user.usecase.Register.GetOne: %v", err)
		return model.User{}, err
	}

	if _, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Email: ip.Email}); err == nil {
		return model.User{}, user.ErrEmailTaken
	} else if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.user.usecase.Register.GetOne: %v", err)
		return model.User{}, err
	}

	hash, err := encrypter.HashPassword(ip.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Register.HashPassword: %v", err)
		return model.User{}, err
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		User: model.User{
			Username:     ip.Username,
			Email:        ip.Email,
			FullName:     ip.FullName,
			Phone:        ip.Phone,
			PasswordHash: hash,
			IsActive:     true,
			Role:         model.RoleUser,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Register.Create: %v", err)
		return model.User{}, err
	}

	uc.recordActivity(ctx, created.ID, "register")

	return created, nil
}

func (uc *usecase) Login(ctx context.Context, ip user.LoginInput) (user.LoginOutput, error) {
	if ip.Username == "" {
		return user.LoginOutput{}, user.ErrUsernameRequired
	}
	if ip.Password == "" {
		return user.LoginOutput{}, user.ErrPasswordRequired
	}

	usr, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Username: ip.Username})
	if err == repository.ErrNotFound {
		usr, err = uc.repo.GetOne(ctx, repository.GetOneOptions{Email: ip.Username})
	}
	if err != nil {
		if err == repository.ErrNotFound {
			return user.LoginOutput{}, user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Login.GetOne: %v", err)
		return user.LoginOutput{}, err
	}

	if !usr.IsActive {
		return user.LoginOutput{}, user.ErrUserInactive
	}

	// A locked account refuses to mint a token even with the right password.
	attempts, err := uc.tokens.LoginAttempts(ctx, usr.ID)
	if err == nil && attempts >= uc.cfg.MaxLoginAttempts {
		return user.LoginOutput{}, user.ErrTooManyAttempts
	}

	if !encrypter.CheckPasswordHash(ip.Password, usr.PasswordHash) {
		if _, incErr := uc.tokens.IncrLoginAttempts(ctx, usr.ID, uc.cfg.LoginAttemptWindow); incErr != nil {
			uc.l.Warnf(ctx, "internal.user.usecase.Login.IncrLoginAttempts: %v", incErr)
		}
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	if err := uc.tokens.ResetLoginAttempts(ctx, usr.ID); err != nil {
		uc.l.Warnf(ctx, "internal.user.usecase.Login.ResetLoginAttempts: %v", err)
	}

	token, err := uc.jwtMgr.CreateToken(scope.Payload{
		UserID:   usr.ID,
		Username: usr.Username,
		Email:    usr.Email,
		Role:     usr.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Login.CreateToken: %v", err)
		return user.LoginOutput{}, err
	}

	uc.recordActivity(ctx, usr.ID, "login")

	return user.LoginOutput{Token: token, User: usr}, nil
}

func (uc *usecase) ForgotPassword(ctx context.Context, ip user.ForgotPasswordInput) error {
	if ip.Email == "" {
		return user.ErrEmailRequired
	}

	usr, err := uc.repo.GetOne(ctx, repository.GetOneOptions{Email: ip.Email})
	if err != nil {
		if err == repository.ErrNotFound {
			// Do not reveal which addresses have accounts.
			return nil
		}
		uc.l.Errorf(ctx, "internal.user.usecase.ForgotPassword.GetOne: %v", err)
		return err
	}

	token := uc.newToken()
	if err := uc.tokens.SaveResetToken(ctx, token, usr.ID, uc.cfg.ResetTokenTTL); err != nil {
		return err
	}

	err = uc.mailer.Send(ctx, mailer.SendParams{
		SendTo:  usr.Email,
		Subject: "Password reset",
		Body: fmt.Sprintf(
			"Hi %s,\n\nUse the token below to reset your password. It expires in %s.\n\n%s\n",
			usr.Username, uc.cfg.ResetTokenTTL, token,
		),
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.ForgotPassword.Send: %v", err)
		return err
	}

	uc.recordActivity(ctx, usr.ID, "forgot_password")

	return nil
}

func (uc *usecase) ResetPassword(ctx context.Context, ip user.ResetPasswordInput) error {
	if ip.Token == "" {
		return user.ErrInvalidResetToken
	}
	if len(ip.NewPassword) < minPasswordLength {
		return user.ErrPasswordTooShort
	}

	userID, err := uc.tokens.ResolveResetToken(ctx, ip.Token)
	if err != nil {
		if err == repository.ErrTokenNotFound {
			return user.ErrInvalidResetToken
		}
		uc.l.Errorf(ctx, "internal.user.usecase.ResetPassword.ResolveResetToken: %v", err)
		return err
	}

	hash, err := encrypter.HashPassword(ip.NewPassword)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.ResetPassword.HashPassword: %v", err)
		return err
	}

	if err := uc.repo.UpdatePassword(ctx, userID, hash); err != nil {
		if err == repository.ErrNotFound {
			return user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.ResetPassword.UpdatePassword: %v", err)
		return err
	}

	// Tokens are single use.
	if err := uc.tokens.DeleteResetToken(ctx, ip.Token); err != nil {
		uc.l.Warnf(ctx, "internal.user.usecase.ResetPassword.DeleteResetToken: %v", err)
	}

	uc.recordActivity(ctx, userID, "reset_password")

	return nil
}

func validateRegisterInput(ip user.RegisterInput) error {
	if ip.Username == "" {
		return user.ErrUsernameRequired
	}
	if ip.Email == "" {
		return user.ErrEmailRequired
	}
	if ip.Password == "" {
		return user.ErrPasswordRequired
	}
	if len(ip.Password) < minPasswordLength {
		return user.ErrPasswordTooShort
	}
	return nil
}

// recordActivity appends to the audit trail; failures never surface to the
// caller.
func (uc *usecase) recordActivity(ctx context.Context, userID, action string) {
	if _, err := uc.repo.CreateActivity(ctx, repository.CreateActivityOptions{
		Activity: model.ActivityLog{
			Action: action,
			UserID: userID,
		},
	}); err != nil {
		uc.l.Warnf(ctx, "internal.user.usecase.recordActivity: %v", err)
	}
}
