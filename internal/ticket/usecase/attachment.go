package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"ticketdesk/internal/model"
	"ticketdesk/internal/ticket"
	"ticketdesk/internal/ticket/repository"
	"ticketdesk/pkg/storage"
)

func (uc *usecase) UploadAttachment(ctx context.Context, sc model.Scope, ip ticket.UploadAttachmentInput) (model.Attachment, error) {
	if ip.Reader == nil || ip.FileName == "" {
		return model.Attachment{}, ticket.ErrFileRequired
	}

	if _, err := uc.authorizedTicket(ctx, sc, ip.TicketID); err != nil {
		return model.Attachment{}, err
	}

	// Object names are namespaced by ticket so bucket listings stay browsable.
	objectName := fmt.Sprintf("%s/%s%s", ip.TicketID, uc.newID(), filepath.Ext(ip.FileName))

	info, err := uc.store.Upload(ctx, storage.UploadInput{
		ObjectName:   objectName,
		OriginalName: ip.FileName,
		ContentType:  ip.ContentType,
		Size:         ip.Size,
		Reader:       ip.Reader,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.ticket.usecase.UploadAttachment.Upload: %v", err)
		return model.Attachment{}, err
	}

	at, err := uc.repo.CreateAttachment(ctx, sc, repository.CreateAttachmentOptions{
		Attachment: model.Attachment{
			TicketID:    ip.TicketID,
			ObjectName:  info.ObjectName,
			FileName:    ip.FileName,
			ContentType: ip.ContentType,
			Size:        info.Size,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.ticket.usecase.UploadAttachment.CreateAttachment: %v", err)
		// The record failed, leave no orphan object behind.
		if delErr := uc.store.Delete(ctx, objectName); delErr != nil {
			uc.l.Warnf(ctx, "internal.ticket.usecase.UploadAttachment.Delete: %v", delErr)
		}
		return model.Attachment{}, err
	}

	return at, nil
}

func (uc *usecase) DownloadAttachment(ctx context.Context, sc model.Scope, ip ticket.AttachmentInput) (model.Attachment, io.ReadCloser, error) {
	at, err := uc.authorizedAttachment(ctx, sc, ip)
	if err != nil {
		return model.Attachment{}, nil, err
	}

	body, _, err := uc.store.Download(ctx, at.ObjectName)
	if err != nil {
		if err == storage.ErrObjectNotFound {
			return model.Attachment{}, nil, ticket.ErrAttachmentNotFound
		}
		uc.l.Errorf(ctx, "internal.ticket.usecase.DownloadAttachment.Download: %v", err)
		return model.Attachment{}, nil, err
	}

	return at, body, nil
}

func (uc *usecase) DeleteAttachment(ctx context.Context, sc model.Scope, ip ticket.AttachmentInput) error {
	at, err := uc.authorizedAttachment(ctx, sc, ip)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteAttachment(ctx, sc, at.ID); err != nil {
		if err == repository.ErrNotFound {
			return ticket.ErrAttachmentNotFound
		}
		uc.l.Errorf(ctx, "internal.ticket.usecase.DeleteAttachment: %v", err)
		return err
	}

	if err := uc.store.Delete(ctx, at.ObjectName); err != nil {
		uc.l.Warnf(ctx, "internal.ticket.usecase.DeleteAttachment.Delete: %v", err)
	}

	return nil
}

// authorizedAttachment resolves an attachment and checks it belongs to a
// ticket the caller may act on.
func (uc *usecase) authorizedAttachment(ctx context.Context, sc model.Scope, ip ticket.AttachmentInput) (model.Attachment, error) {
	if _, err := uc.authorizedTicket(ctx, sc, ip.TicketID); err != nil {
		return model.Attachment{}, err
	}

	at, err := uc.repo.DetailAttachment(ctx, sc, ip.AttachmentID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Attachment{}, ticket.ErrAttachmentNotFound
		}
		uc.l.Errorf(ctx, "internal.ticket.usecase.authorizedAttachment: %v", err)
		return model.Attachment{}, err
	}

	if at.TicketID != ip.TicketID {
		return model.Attachment{}, ticket.ErrAttachmentNotFound
	}

	return at, nil
}
