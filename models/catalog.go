package models

import "time"

// Catalog is one immutable snapshot of the marketplace reference data.
// The feed layer replaces the whole snapshot atomically; filtering and
// cart-total computation always work against a single snapshot, never a
// partially refreshed one.
type Catalog struct {
	Products   []Product   `bson:"products" json:"products"`
	Services   []Service   `bson:"services" json:"services"`
	Vehicles   []Vehicle   `bson:"vehicles" json:"vehicles"`
	Promotions []Promotion `bson:"promotions" json:"promotions,omitempty"`
	Version    int64       `bson:"version" json:"version"`
	LoadedAt   time.Time   `bson:"loadedAt" json:"loadedAt"`
}

// ProductByID resolves a product id within this snapshot.
func (c *Catalog) ProductByID(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ProviderByKey resolves a (serviceId, providerId) pair within this
// snapshot.
func (c *Catalog) ProviderByKey(serviceID, providerID string) (Service, ServiceProvider, bool) {
	for _, s := range c.Services {
		if s.ID != serviceID {
			continue
		}
		for _, p := range s.Providers {
			if p.ID == providerID {
				return s, p, true
			}
		}
	}
	return Service{}, ServiceProvider{}, false
}

// VehicleByID resolves a vehicle id within this snapshot.
func (c *Catalog) VehicleByID(id string) (Vehicle, bool) {
	for _, v := range c.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}
