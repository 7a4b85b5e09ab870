package models

import "time"

// ComplaintStatus tracks the handling state of a complaint.
type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "Pending"
	ComplaintInProgress ComplaintStatus = "In Progress"
	ComplaintResolved   ComplaintStatus = "Resolved"
)

// ValidComplaintStatus reports whether s belongs to the closed status set.
func ValidComplaintStatus(s ComplaintStatus) bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved:
		return true
	}
	return false
}

// ComplaintPriority is the triage level assigned by an administrator.
type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "Low"
	PriorityMedium ComplaintPriority = "Medium"
	PriorityHigh   ComplaintPriority = "High"
)

// ValidComplaintPriority reports whether p belongs to the closed priority set.
func ValidComplaintPriority(p ComplaintPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Complaint is a customer complaint or feedback entry. Either the
// complain text or the feedback/ratings pair may be present.
type Complaint struct {
	ID        string            `bson:"id" json:"_id"`
	Name      string            `bson:"name" json:"name"`
	Email     string            `bson:"email" json:"email"`
	Complain  string            `bson:"complain,omitempty" json:"complain,omitempty"`
	Feedback  string            `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Ratings   float64           `bson:"ratings,omitempty" json:"ratings,omitempty"`
	Status    ComplaintStatus   `bson:"status" json:"status"`
	Priority  ComplaintPriority `bson:"priority" json:"priority"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
}
