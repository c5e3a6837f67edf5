package model

import (
	"strings"

	"github.com/google/uuid"
)

// Vehicle is a car entered in the derby.
type Vehicle struct {
	ID    string `json:"id" yaml:"id"`
	VIN   string `json:"vin" yaml:"vin"` // vehicle number painted on the car
	Owner string `json:"owner" yaml:"owner"`
	Group string `json:"group" yaml:"group"`
}

// NewVehicle returns a vehicle with a fresh identifier.
func NewVehicle(vin, owner, group string) Vehicle {
	return Vehicle{
		ID:    uuid.NewString(),
		VIN:   strings.TrimSpace(vin),
		Owner: strings.TrimSpace(owner),
		Group: strings.TrimSpace(group),
	}
}

// SortKey selects the vehicle field used to order a roster.
type SortKey string

const (
	SortByVIN   SortKey = "vin"
	SortByOwner SortKey = "owner"
	SortByGroup SortKey = "group"
)

// Less orders a before b by key, falling back to VIN then ID so the order is
// total.
func (k SortKey) Less(a, b Vehicle) bool {
	var x, y string
	switch k {
	case SortByOwner:
		x, y = a.Owner, b.Owner
	case SortByGroup:
		x, y = a.Group, b.Group
	default:
		x, y = a.VIN, b.VIN
	}
	if x != y {
		return x < y
	}
	if a.VIN != b.VIN {
		return a.VIN < b.VIN
	}
	return a.ID < b.ID
}
