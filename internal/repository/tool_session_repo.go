package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pddtools/internal/model"
)

type ToolSessionRepo interface {
	Insert(ctx context.Context, session *model.ToolSession) error
	ListByUserTool(ctx context.Context, userID string, tool model.ToolType) ([]*model.ToolSession, error)
	DeleteByIDs(ctx context.Context, ids []string) error
}

type toolSessionRepo struct {
	collection *mongo.Collection
}

func NewToolSessionRepo(client *mongo.Client) ToolSessionRepo {
	db := client.Database("pddtools")
	return &toolSessionRepo{
		collection: db.Collection("tool_sessions"),
	}
}

func (r *toolSessionRepo) Insert(ctx context.Context, session *model.ToolSession) error {
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *toolSessionRepo) ListByUserTool(ctx context.Context, userID string, tool model.ToolType) ([]*model.ToolSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID, "toolType": tool}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.ToolSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *toolSessionRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}
