package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pddtools/internal/model"
)

type TrainerSessionRepo interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	Update(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id string) error
	ListByUserTrainer(ctx context.Context, userID, trainerID string) ([]*model.Session, error)
	ListCompleted(ctx context.Context, userID, trainerID string) ([]*model.Session, error)
}

type trainerSessionRepo struct {
	collection *mongo.Collection
}

func NewTrainerSessionRepo(client *mongo.Client) TrainerSessionRepo {
	db := client.Database("pddtools")
	return &trainerSessionRepo{
		collection: db.Collection("trainer_sessions"),
	}
}

func (r *trainerSessionRepo) Create(ctx context.Context, session *model.Session) error {
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *trainerSessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *trainerSessionRepo) Update(ctx context.Context, session *model.Session) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": session.ID}, session)
	return err
}

func (r *trainerSessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *trainerSessionRepo) ListByUserTrainer(ctx context.Context, userID, trainerID string) ([]*model.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startedAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID, "trainerId": trainerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *trainerSessionRepo) ListCompleted(ctx context.Context, userID, trainerID string) ([]*model.Session, error) {
	filter := bson.M{
		"userId":      userID,
		"trainerId":   trainerID,
		"completedAt": bson.M{"$ne": nil},
	}
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
