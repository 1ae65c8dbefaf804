package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/database"
	"storefront/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	services *mongo.Collection
	products *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.DB()
	repo := &MongoCatalogRepo{
		services: db.Collection("services"),
		products: db.Collection("products"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	idIndex := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "merchant_id", Value: 1}}},
	}

	if _, err := r.services.Indexes().CreateMany(ctx, idIndex); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	if _, err := r.products.Indexes().CreateMany(ctx, idIndex); err != nil {
		return fmt.Errorf("failed to create product indexes: %w", err)
	}
	return nil
}

// GetServiceByID retrieves an active service by its unique id.
func (r *MongoCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id, "active": true}).Decode(&svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return &svc, nil
}

// GetProductByID retrieves an active product by its unique id.
func (r *MongoCatalogRepo) GetProductByID(id string) (*models.Product, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Product
	if err := r.products.FindOne(ctx, bson.M{"id": id, "active": true}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
	}
	return &p, nil
}

// ListServices retrieves all active services for a merchant.
func (r *MongoCatalogRepo) ListServices(merchantID string) ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{"merchant_id": merchantID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// ListProducts retrieves all active products for a merchant.
func (r *MongoCatalogRepo) ListProducts(merchantID string) ([]models.Product, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.products.Find(ctx, bson.M{"merchant_id": merchantID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}
