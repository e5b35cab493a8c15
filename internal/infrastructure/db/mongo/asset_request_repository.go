package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
	"github.com/mercury-msp/helpdesk/internal/core/ports"
)

type AssetRequestRepository struct {
	col *mongo.Collection
}

func NewAssetRequestRepository(db *mongo.Database) *AssetRequestRepository {
	return &AssetRequestRepository{col: db.Collection(collectionAssetRequests)}
}

func (r *AssetRequestRepository) FindByID(ctx context.Context, id string) (*domain.AssetRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var req domain.AssetRequest
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAssetRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *AssetRequestRepository) List(ctx context.Context, filter ports.AssetRequestFilter) ([]domain.AssetRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.RequestedBy != "" {
		query["requested_by"] = filter.RequestedBy
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cur, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	requests := []domain.AssetRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *AssetRequestRepository) Create(ctx context.Context, request *domain.AssetRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, request)
	return err
}

func (r *AssetRequestRepository) Update(ctx context.Context, request *domain.AssetRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": request.ID}, request)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrAssetRequestNotFound
	}
	return nil
}

func (r *AssetRequestRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrAssetRequestNotFound
	}
	return nil
}
