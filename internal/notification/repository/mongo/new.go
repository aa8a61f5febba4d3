package mongo

import (
	"ticketdesk/internal/notification/repository"
	pkgLog "ticketdesk/pkg/log"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

const collectionName = "notifications"

type implRepository struct {
	l    pkgLog.Logger
	coll *mongo.Collection
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *mongo.Database) *implRepository {
	return &implRepository{
		l:    l,
		coll: db.Collection(collectionName),
	}
}
