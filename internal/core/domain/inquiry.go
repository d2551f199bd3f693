package domain

import (
	"errors"
	"time"
)

// InquiryStatus tracks a contact inquiry through the sales funnel.
type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "NEW"
	InquiryContacted InquiryStatus = "CONTACTED"
	InquiryQuoted    InquiryStatus = "QUOTED"
	InquiryConverted InquiryStatus = "CONVERTED"
	InquiryClosed    InquiryStatus = "CLOSED"
)

// Priority is shared by inquiries and projects.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

var ErrInquiryNotFound = errors.New("inquiry not found")
var ErrInquiryAlreadyConverted = errors.New("inquiry already converted")
var ErrDuplicateInquiry = errors.New("duplicate inquiry submission")

// ContactInquiry is a message submitted through the public contact form or a
// team-store microsite. Inquiries can later be converted into projects.
type ContactInquiry struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	CustomerID      string        `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	Customer        *Customer     `json:"customer,omitempty" bson:"-"`
	Name            string        `json:"name" bson:"name"`
	Email           string        `json:"email" bson:"email"`
	Phone           string        `json:"phone,omitempty" bson:"phone,omitempty"`
	ProjectType     string        `json:"project_type,omitempty" bson:"project_type,omitempty"`
	Message         string        `json:"message" bson:"message"`
	Timeline        string        `json:"timeline,omitempty" bson:"timeline,omitempty"`
	Budget          string        `json:"budget,omitempty" bson:"budget,omitempty"`
	Status          InquiryStatus `json:"status" bson:"status"`
	Priority        Priority      `json:"priority" bson:"priority"`
	AssignedAdminID string        `json:"assigned_admin_id,omitempty" bson:"assigned_admin_id,omitempty"`
	FollowUpDate    *time.Time    `json:"follow_up_date,omitempty" bson:"follow_up_date,omitempty"`
	TeamStoreID     string        `json:"team_store_id,omitempty" bson:"team_store_id,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at"`
}
