package models

import "time"

// Resource is an inventory item owned by the venue.
type Resource struct {
	ID             string    `bson:"id" json:"_id"`
	Resource       string    `bson:"resource" json:"resource"`
	ResType        string    `bson:"resType" json:"resType"`
	Purpose        string    `bson:"purpose" json:"Purpose"`
	PurchaseDate   time.Time `bson:"purchaseDate" json:"PurchaseDate"`
	DistributeDate time.Time `bson:"distributeDate" json:"DistributeDate"`
}
