package models

// VehicleType classifies a vehicle for compatibility filtering.
type VehicleType string

const (
	VehicleTwoWheeler   VehicleType = "two_wheeler"
	VehicleThreeWheeler VehicleType = "three_wheeler"
	VehicleFourWheeler  VehicleType = "four_wheeler"
	VehicleCommercial   VehicleType = "commercial"
)

// Vehicle is a registered vehicle used purely as a filter key.
// This core never mutates vehicles.
type Vehicle struct {
	ID    string      `bson:"id" json:"id"`
	Type  VehicleType `bson:"type" json:"type"`
	Make  string      `bson:"make" json:"make"`
	Model string      `bson:"model" json:"model"`
	Year  int         `bson:"year" json:"year"`
}
