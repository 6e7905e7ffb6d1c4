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

const companiesCollection = "companies"

// CompanyRepository persists company records. Every query is filtered by
// owner_id, so a record belonging to another account is indistinguishable
// from a missing one.
type CompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection(companiesCollection)}
}

type mongoCompany struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   string             `bson:"owner_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Address   string             `bson:"address"`
	Country   string             `bson:"country"`
	City      string             `bson:"city"`
	Postcode  string             `bson:"postcode"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Duplicate check is scoped to (owner, email), matching the compound
	// unique index. A different owner may reuse the same email.
	count, err := r.coll.CountDocuments(ctx, bson.M{"owner_id": c.OwnerID, "email": c.Email})
	if err != nil {
		return nil, fmt.Errorf("check company: %w", err)
	}
	if count > 0 {
		return nil, domain.ErrCompanyExists
	}

	doc := mongoCompany{
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Country:   c.Country,
		City:      c.City,
		Postcode:  c.Postcode,
		CreatedAt: c.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCompanyExists
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}

	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CompanyRepository) List(ctx context.Context, ownerID string) ([]*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer cur.Close(ctx)

	companies := make([]*domain.Company, 0)
	for cur.Next(ctx) {
		var mc mongoCompany
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode company: %w", err)
		}
		companies = append(companies, mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

func (r *CompanyRepository) Update(ctx context.Context, ownerID, id string, c *domain.Company) (*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCompanyNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":     c.Name,
		"email":    c.Email,
		"phone":    c.Phone,
		"address":  c.Address,
		"country":  c.Country,
		"city":     c.City,
		"postcode": c.Postcode,
	}}

	var mc mongoCompany
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "owner_id": ownerID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CompanyRepository) Delete(ctx context.Context, ownerID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCompanyNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

// EnsureIndexes creates the owner lookup index and the compound unique index
// enforcing per-owner email uniqueness.
func (r *CompanyRepository) EnsureIndexes(ctx context.Context) error {
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

func (mc *mongoCompany) toDomain() *domain.Company {
	return &domain.Company{
		ID:        mc.ID.Hex(),
		OwnerID:   mc.OwnerID,
		Name:      mc.Name,
		Email:     mc.Email,
		Phone:     mc.Phone,
		Address:   mc.Address,
		Country:   mc.Country,
		City:      mc.City,
		Postcode:  mc.Postcode,
		CreatedAt: unixToTime(mc.CreatedAt),
	}
}
