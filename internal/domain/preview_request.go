package domain

import "time"

// RequestStatus tracks how far an incoming lead has been handled by the admin.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestViewed    RequestStatus = "viewed"
	RequestContacted RequestStatus = "contacted"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestViewed, RequestContacted:
		return true
	}
	return false
}

// PreviewRequest is a visitor asking for a live preview of a project. The
// project title is denormalized at submission time so the lead survives a
// later project deletion.
type PreviewRequest struct {
	ID           int64         `db:"id" json:"id"`
	ProjectID    int64         `db:"project_id" json:"projectId"`
	ProjectTitle string        `db:"project_title" json:"projectTitle"`
	Name         string        `db:"name" json:"name"`
	Email        string        `db:"email" json:"email"`
	Phone        string        `db:"phone" json:"phone"`
	Message      string        `db:"message" json:"message"`
	Status       RequestStatus `db:"status" json:"status"`
	CreatedAt    time.Time     `db:"created_at" json:"createdAt"`
}
