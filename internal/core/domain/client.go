package domain

import "time"

// ClientType classifies how a client is serviced.
type ClientType string

const (
	ClientManagedSite ClientType = "managed_site"
	ClientIndividual  ClientType = "individual"
	ClientWalkIn      ClientType = "walk_in"
)

// Client is a serviced customer organisation or individual.
type Client struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	Name          string     `json:"name" bson:"name"`
	ContactPerson string     `json:"contact_person" bson:"contact_person"`
	Email         string     `json:"email" bson:"email"`
	Phone         string     `json:"phone" bson:"phone"`
	Address       string     `json:"address" bson:"address"`
	Type          ClientType `json:"type" bson:"type"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at"`
}
