package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pddtools/internal/journal"
)

// TemplateRepo stores admin overrides for the journal copy. A missing
// document means the built-in defaults apply.
type TemplateRepo interface {
	GetDiary(ctx context.Context) (*journal.DiaryTemplates, error)
	SetDiary(ctx context.Context, tpl *journal.DiaryTemplates) error
	GetProgress(ctx context.Context) (*journal.ProgressTemplates, error)
	SetProgress(ctx context.Context, tpl *journal.ProgressTemplates) error
}

type templateRepo struct {
	collection *mongo.Collection
}

func NewTemplateRepo(client *mongo.Client) TemplateRepo {
	db := client.Database("pddtools")
	return &templateRepo{
		collection: db.Collection("templates"),
	}
}

type templateDoc struct {
	ID       string                     `bson:"_id"`
	Diary    *journal.DiaryTemplates    `bson:"diary,omitempty"`
	Progress *journal.ProgressTemplates `bson:"progress,omitempty"`
}

func (r *templateRepo) GetDiary(ctx context.Context) (*journal.DiaryTemplates, error) {
	var doc templateDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": "diary"}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return doc.Diary, nil
}

func (r *templateRepo) SetDiary(ctx context.Context, tpl *journal.DiaryTemplates) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": "diary"}, templateDoc{ID: "diary", Diary: tpl}, opts)
	return err
}

func (r *templateRepo) GetProgress(ctx context.Context) (*journal.ProgressTemplates, error) {
	var doc templateDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": "progress"}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return doc.Progress, nil
}

func (r *templateRepo) SetProgress(ctx context.Context, tpl *journal.ProgressTemplates) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": "progress"}, templateDoc{ID: "progress", Progress: tpl}, opts)
	return err
}
