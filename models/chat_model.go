package models

import "github.com/jinzhu/copier"

// ChatRoom aggregates its participants and an unread counter.
type ChatRoom struct {
	Id           string   `json:"id"`
	Participants []User   `json:"participants"`
	LastMessage  *Message `json:"lastMessage,omitempty"`
	UnreadCount  int      `json:"unreadCount"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// Message belongs to exactly one chat room.
type Message struct {
	Id         string `json:"id"`
	ChatRoomId string `json:"chatRoomId"`
	Sender     User   `json:"sender"`
	Content    string `json:"content"`
	Type       string `json:"type"`
	IsRead     bool   `json:"isRead"`
	CreatedAt  string `json:"createdAt"`
}

// Message type values.
const (
	MessageText  = "text"
	MessageImage = "image"
	MessageFile  = "file"
)

// ChatRoomRecord is the cached form of a ChatRoom, participants folded into
// the user table.
type ChatRoomRecord struct {
	Id             string
	ParticipantIds []string
	LastMessage    *MessageRecord
	UnreadCount    int
	CreatedAt      string
	UpdatedAt      string
}

// MessageRecord is the cached form of a Message, sender folded into the user
// table.
type MessageRecord struct {
	Id         string
	ChatRoomId string
	SenderId   string
	Content    string
	Type       string
	IsRead     bool
	CreatedAt  string
}

func (m Message) Record() MessageRecord {
	rec := MessageRecord{}
	copier.Copy(&rec, &m)
	rec.SenderId = m.Sender.Id
	return rec
}

func (r ChatRoom) Record() ChatRoomRecord {
	rec := ChatRoomRecord{}
	copier.Copy(&rec, &r)
	rec.ParticipantIds = nil
	for _, participant := range r.Participants {
		rec.ParticipantIds = append(rec.ParticipantIds, participant.Id)
	}
	if r.LastMessage != nil {
		last := r.LastMessage.Record()
		rec.LastMessage = &last
	}
	return rec
}
