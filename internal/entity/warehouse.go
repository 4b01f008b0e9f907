package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type Coordinates struct {
	Latitude  float64 `bson:"latitude"  json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Warehouse is referenced, never owned, by delivery requests. This service
// only reads warehouses.
type Warehouse struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"  json:"-"`
	Name           string             `bson:"name"           json:"name"`
	Address        string             `bson:"address"        json:"address"`
	Coordinates    Coordinates        `bson:"coordinates"    json:"coordinates"`
	Capacity       int                `bson:"capacity"       json:"capacity"`
	OperatingHours string             `bson:"operatingHours" json:"operatingHours"`
	IsActive       bool               `bson:"isActive"       json:"isActive"`
}
