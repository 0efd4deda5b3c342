package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/creatorhub/userform-api/internal/core/domain"
)

const formsCollection = "user_forms"

type FormRepository struct {
	coll *mongo.Collection
}

func NewFormRepository(db *mongo.Database) *FormRepository {
	return &FormRepository{coll: db.Collection(formsCollection)}
}

type mongoForm struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Username    string             `bson:"username"`
	SocialMedia string             `bson:"social_media"`
	Images      []string           `bson:"images"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *FormRepository) Create(ctx context.Context, form *domain.FormSubmission) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoForm{
		Username:    form.Username,
		SocialMedia: form.SocialMedia,
		Images:      form.Images,
		CreatedAt:   form.CreatedAt.Unix(),
		UpdatedAt:   form.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert form: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		form.ID = oid.Hex()
	}
	return nil
}

func (r *FormRepository) FindAll(ctx context.Context) ([]*domain.FormSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find forms: %w", err)
	}
	defer cur.Close(ctx)

	forms := make([]*domain.FormSubmission, 0)
	for cur.Next(ctx) {
		var mf mongoForm
		if err := cur.Decode(&mf); err != nil {
			return nil, fmt.Errorf("decode form: %w", err)
		}
		forms = append(forms, mf.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate forms: %w", err)
	}
	return forms, nil
}

func (r *FormRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids behave like unknown ones.
		return domain.ErrFormNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete form: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFormNotFound
	}
	return nil
}

func (mf *mongoForm) toDomain() *domain.FormSubmission {
	return &domain.FormSubmission{
		ID:          mf.ID.Hex(),
		Username:    mf.Username,
		SocialMedia: mf.SocialMedia,
		Images:      mf.Images,
		CreatedAt:   unixToTime(mf.CreatedAt),
		UpdatedAt:   unixToTime(mf.UpdatedAt),
	}
}
