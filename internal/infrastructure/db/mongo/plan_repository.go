package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/staffhub/agency-api/internal/core/domain"
)

const packagesCollection = "packages"

// PlanRepository reads the subscription packages collection. Plans are
// reference data seeded out of band; the API never writes them.
type PlanRepository struct {
	coll *mongo.Collection
}

func NewPlanRepository(db *mongo.Database) *PlanRepository {
	return &PlanRepository{coll: db.Collection(packagesCollection)}
}

type mongoPlan struct {
	ID       string   `bson:"_id"`
	Title    string   `bson:"title"`
	Price    string   `bson:"price"`
	Features []string `bson:"features"`
}

func (r *PlanRepository) List(ctx context.Context) ([]domain.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer cur.Close(ctx)

	plans := make([]domain.Plan, 0)
	for cur.Next(ctx) {
		var mp mongoPlan
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode package: %w", err)
		}
		plans = append(plans, domain.Plan(mp))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return plans, nil
}

func (r *PlanRepository) FindByID(ctx context.Context, id string) (*domain.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPlan
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("find package: %w", err)
	}

	plan := domain.Plan(mp)
	return &plan, nil
}
