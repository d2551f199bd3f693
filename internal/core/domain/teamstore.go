package domain

import (
	"errors"
	"time"
)

// TeamStoreStatus is the publication state of a team-store microsite.
type TeamStoreStatus string

const (
	TeamStorePending  TeamStoreStatus = "PENDING"
	TeamStoreActive   TeamStoreStatus = "ACTIVE"
	TeamStoreInactive TeamStoreStatus = "INACTIVE"
)

var ErrTeamStoreNotFound = errors.New("team store not found")

// TeamStore is a branded microsite for a club or organisation that sells a
// curated subset of the catalogue.
type TeamStore struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	Name        string          `json:"name" bson:"name"`
	Slug        string          `json:"slug" bson:"slug"`
	Description string          `json:"description,omitempty" bson:"description,omitempty"`
	Logo        string          `json:"logo,omitempty" bson:"logo,omitempty"`
	Banner      string          `json:"banner,omitempty" bson:"banner,omitempty"`
	Website     string          `json:"website,omitempty" bson:"website,omitempty"`
	Email       string          `json:"email" bson:"email"`
	Phone       string          `json:"phone,omitempty" bson:"phone,omitempty"`
	Address     string          `json:"address,omitempty" bson:"address,omitempty"`
	Status      TeamStoreStatus `json:"status" bson:"status"`
	IsActive    bool            `json:"is_active" bson:"is_active"`
	CreatedByID string          `json:"created_by_id" bson:"created_by_id"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" bson:"updated_at"`

	InquiryCount int64 `json:"inquiry_count" bson:"-"`
}
