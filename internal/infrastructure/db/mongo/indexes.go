package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates all collection indexes the repositories rely on.
// Called once at startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := NewClientRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("client indexes: %w", err)
	}
	if err := NewTicketRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ticket indexes: %w", err)
	}
	if err := NewAssetRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("asset indexes: %w", err)
	}
	return nil
}
