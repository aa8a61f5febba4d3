package ticket

import "errors"

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidStatus       = errors.New("invalid ticket status")
	ErrContentRequired     = errors.New("content is required")
	ErrFileRequired        = errors.New("file is required")
	ErrNotFound            = errors.New("ticket not found")
	ErrAttachmentNotFound  = errors.New("attachment not found")
	ErrForbidden           = errors.New("not allowed to act on this ticket")
)
