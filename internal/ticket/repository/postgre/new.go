package postgre

import (
	"database/sql"
	"time"

	"ticketdesk/internal/ticket/repository"
	pkgLog "ticketdesk/pkg/log"
)

type implRepository struct {
	l     pkgLog.Logger
	db    *sql.DB
	clock func() time.Time
	newID func() string
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB, newID func() string) *implRepository {
	return &implRepository{
		l:     l,
		db:    db,
		clock: time.Now,
		newID: newID,
	}
}
