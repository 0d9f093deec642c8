package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"motorhub/config"
	"motorhub/database"
	"motorhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	products   *mongo.Collection
	services   *mongo.Collection
	vehicles   *mongo.Collection
	promotions *mongo.Collection
}

// NewMongoCatalogRepo creates a repo bound to the configured database.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoCatalogRepo{
		products:   db.Collection("products"),
		services:   db.Collection("services"),
		vehicles:   db.Collection("vehicles"),
		promotions: db.Collection("promotions"),
	}
}

// FetchSnapshot loads every collection and assembles one snapshot.
// Validation happens at ingestion so downstream code never sees a
// malformed catalog entry.
func (r *MongoCatalogRepo) FetchSnapshot(ctx context.Context) (*models.Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var products []models.Product
	if err := fetchAll(ctx, r.products, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	var services []models.Service
	if err := fetchAll(ctx, r.services, &services); err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	var vehicles []models.Vehicle
	if err := fetchAll(ctx, r.vehicles, &vehicles); err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}
	var promotions []models.Promotion
	if err := fetchAll(ctx, r.promotions, &promotions); err != nil {
		return nil, fmt.Errorf("failed to fetch promotions: %w", err)
	}

	snapshot := &models.Catalog{
		Products:   validProducts(products),
		Services:   validServices(services),
		Vehicles:   vehicles,
		Promotions: promotions,
		Version:    time.Now().UnixNano(),
		LoadedAt:   time.Now(),
	}
	return snapshot, nil
}

func fetchAll[T any](ctx context.Context, coll *mongo.Collection, out *[]T) error {
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

// validProducts drops feed entries that violate the catalog contract:
// missing identity, negative prices, or a discount above base price.
func validProducts(in []models.Product) []models.Product {
	out := make([]models.Product, 0, len(in))
	for _, p := range in {
		if p.ID == "" || p.BasePrice < 0 {
			continue
		}
		if p.DiscountPrice != nil && (*p.DiscountPrice < 0 || *p.DiscountPrice > p.BasePrice) {
			p.DiscountPrice = nil
		}
		if p.Stock == "" {
			p.Stock = models.StockIn
		}
		out = append(out, p)
	}
	return out
}

// validServices enforces the tagged service shape: a service must have
// an id and at least one well-formed provider.
func validServices(in []models.Service) []models.Service {
	out := make([]models.Service, 0, len(in))
	for _, s := range in {
		if s.ID == "" {
			continue
		}
		providers := make([]models.ServiceProvider, 0, len(s.Providers))
		for _, sp := range s.Providers {
			if sp.ID == "" || sp.BasePrice < 0 {
				continue
			}
			if sp.DiscountPrice != nil && (*sp.DiscountPrice < 0 || *sp.DiscountPrice > sp.BasePrice) {
				sp.DiscountPrice = nil
			}
			providers = append(providers, sp)
		}
		if len(providers) == 0 {
			continue
		}
		s.Providers = providers
		out = append(out, s)
	}
	return out
}
