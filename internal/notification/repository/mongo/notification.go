package mongo

import (
	"context"

	"ticketdesk/internal/model"
	"ticketdesk/internal/notification/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (r *implRepository) Save(ctx context.Context, n model.Notification) error {
	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.mongo.Save.InsertOne: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) ListRecent(ctx context.Context, userID string, limit int64) ([]model.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.mongo.ListRecent.Find: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var res []model.Notification
	if err := cursor.All(ctx, &res); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.mongo.ListRecent.All: %v", err)
		return nil, err
	}
	return res, nil
}

func (r *implRepository) MarkRead(ctx context.Context, id string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.mongo.MarkRead.UpdateOne: %v", err)
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
