package domain

import (
	"errors"
	"time"
)

// ProjectStatus tracks a custom-merchandise project from intake to delivery.
type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "PENDING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectReview     ProjectStatus = "REVIEW"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectCancelled  ProjectStatus = "CANCELLED"
)

var ErrProjectNotFound = errors.New("project not found")

// Project is a commissioned design job, usually born from a converted
// contact inquiry.
type Project struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	ProjectType string        `json:"project_type" bson:"project_type"`
	Status      ProjectStatus `json:"status" bson:"status"`
	Priority    Priority      `json:"priority" bson:"priority"`
	CustomerID  string        `json:"customer_id" bson:"customer_id"`
	Customer    *Customer     `json:"customer,omitempty" bson:"-"`
	InquiryID   string        `json:"inquiry_id,omitempty" bson:"inquiry_id,omitempty"`
	Budget      float64       `json:"budget,omitempty" bson:"budget,omitempty"`
	DueDate     *time.Time    `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CreatedByID string        `json:"created_by_id" bson:"created_by_id"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
