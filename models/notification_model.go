package models

// Notification is delivered to exactly one user. Related entities are
// referenced by id only, so no normalization is needed on ingest.
type Notification struct {
	Id            string `json:"id"`
	UserId        string `json:"userId"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	IsRead        bool   `json:"isRead"`
	RelatedUserId string `json:"relatedUserId,omitempty"`
	RelatedPostId string `json:"relatedPostId,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

// Notification type values.
const (
	NotifyLike    = "like"
	NotifyComment = "comment"
	NotifyFollow  = "follow"
	NotifyMessage = "message"
	NotifySystem  = "system"
)
