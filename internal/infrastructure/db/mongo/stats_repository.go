package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mercury-msp/helpdesk/internal/core/domain"
)

// StatsRepository runs the count and group-by queries behind the dashboard
// across the clients, devices, service_requests, company_assets and
// asset_requests collections.
type StatsRepository struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountClients(ctx context.Context) (int64, error) {
	return r.count(ctx, collectionClients, bson.M{})
}

func (r *StatsRepository) CountDevicesByStatus(ctx context.Context, status domain.DeviceStatus) (int64, error) {
	return r.count(ctx, collectionDevices, bson.M{"status": status})
}

func (r *StatsRepository) CountTicketsByStatus(ctx context.Context, statuses ...domain.TicketStatus) (int64, error) {
	if len(statuses) == 1 {
		return r.count(ctx, collectionTickets, bson.M{"status": statuses[0]})
	}
	return r.count(ctx, collectionTickets, bson.M{"status": bson.M{"$in": statuses}})
}

func (r *StatsRepository) CountAssetsByStatus(ctx context.Context, status domain.AssetStatus) (int64, error) {
	return r.count(ctx, collectionAssets, bson.M{"status": status})
}

func (r *StatsRepository) CountAssetRequestsByStatus(ctx context.Context, status domain.AssetRequestStatus) (int64, error) {
	return r.count(ctx, collectionAssetRequests, bson.M{"status": status})
}

func (r *StatsRepository) CountTicketsResolvedSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, collectionTickets, bson.M{
		"status":     domain.TicketResolved,
		"updated_at": bson.M{"$gte": since},
	})
}

func (r *StatsRepository) DeviceStatusBreakdown(ctx context.Context) ([]domain.BucketCount, error) {
	return r.groupBy(ctx, collectionDevices, "status")
}

func (r *StatsRepository) TicketStatusBreakdown(ctx context.Context) ([]domain.BucketCount, error) {
	return r.groupBy(ctx, collectionTickets, "status")
}

func (r *StatsRepository) TicketPriorityBreakdown(ctx context.Context) ([]domain.BucketCount, error) {
	return r.groupBy(ctx, collectionTickets, "priority")
}

func (r *StatsRepository) AssetStatusBreakdown(ctx context.Context) ([]domain.BucketCount, error) {
	return r.groupBy(ctx, collectionAssets, "status")
}

func (r *StatsRepository) ClientTypeBreakdown(ctx context.Context) ([]domain.BucketCount, error) {
	return r.groupBy(ctx, collectionClients, "type")
}

func (r *StatsRepository) count(ctx context.Context, collection string, query bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.db.Collection(collection).CountDocuments(ctx, query)
}

func (r *StatsRepository) groupBy(ctx context.Context, collection, field string) ([]domain.BucketCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := r.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	buckets := []domain.BucketCount{}
	if err := cur.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}
