package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/staffhub/agency-api/internal/core/domain"
)

const workersCollection = "workers"

// WorkerRepository persists worker records with the same owner_id scoping as
// CompanyRepository.
type WorkerRepository struct {
	coll *mongo.Collection
}

func NewWorkerRepository(db *mongo.Database) *WorkerRepository {
	return &WorkerRepository{coll: db.Collection(workersCollection)}
}

type mongoWorker struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	Phone       string             `bson:"phone"`
	Role        string             `bson:"role"`
	Department  string             `bson:"department"`
	Address     string             `bson:"address"`
	JoiningDate int64              `bson:"joining_date"`
	CreatedAt   int64              `bson:"created_at"`
}

func (r *WorkerRepository) Create(ctx context.Context, w *domain.Worker) (*domain.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"owner_id": w.OwnerID, "email": w.Email})
	if err != nil {
		return nil, fmt.Errorf("check worker: %w", err)
	}
	if count > 0 {
		return nil, domain.ErrWorkerExists
	}

	doc := mongoWorker{
		OwnerID:     w.OwnerID,
		Name:        w.Name,
		Email:       w.Email,
		Phone:       w.Phone,
		Role:        w.Role,
		Department:  w.Department,
		Address:     w.Address,
		JoiningDate: w.JoiningDate.Unix(),
		CreatedAt:   w.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrWorkerExists
		}
		return nil, fmt.Errorf("insert worker: %w", err)
	}

	created := *w
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *WorkerRepository) List(ctx context.Context, ownerID string) ([]*domain.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer cur.Close(ctx)

	workers := make([]*domain.Worker, 0)
	for cur.Next(ctx) {
		var mw mongoWorker
		if err := cur.Decode(&mw); err != nil {
			return nil, fmt.Errorf("decode worker: %w", err)
		}
		workers = append(workers, mw.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	return workers, nil
}

func (r *WorkerRepository) Update(ctx context.Context, ownerID, id string, w *domain.Worker) (*domain.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrWorkerNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":         w.Name,
		"email":        w.Email,
		"phone":        w.Phone,
		"role":         w.Role,
		"department":   w.Department,
		"address":      w.Address,
		"joining_date": w.JoiningDate.Unix(),
	}}

	var mw mongoWorker
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "owner_id": ownerID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("update worker: %w", err)
	}
	return mw.toDomain(), nil
}

func (r *WorkerRepository) Delete(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrWorkerNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWorkerNotFound
	}
	return nil
}

func (r *WorkerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mw *mongoWorker) toDomain() *domain.Worker {
	return &domain.Worker{
		ID:          mw.ID.Hex(),
		OwnerID:     mw.OwnerID,
		Name:        mw.Name,
		Email:       mw.Email,
		Phone:       mw.Phone,
		Role:        mw.Role,
		Department:  mw.Department,
		Address:     mw.Address,
		JoiningDate: unixToTime(mw.JoiningDate),
		CreatedAt:   unixToTime(mw.CreatedAt),
	}
}
