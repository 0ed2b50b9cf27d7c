package store

import (
	"context"
	"sync"

	"github.com/thrivehealth/thriveGo/gateway"
	"github.com/thrivehealth/thriveGo/models"
)

// Chat store operation kinds.
const (
	OpGetChatRooms = "chat/getChatRooms"
	OpGetMessages  = "chat/getMessages"
	OpSendMessage  = "chat/sendMessage"
)

// ChatStore caches the room list and one flat message collection. The
// message collection is not scoped to a room: switching rooms means the
// caller clears and reloads, otherwise the previous room's messages stay
// visible.
type ChatStore struct {
	Tracker
	gw    *gateway.Gateway
	users *UserTable

	mu            sync.RWMutex
	rooms         []models.ChatRoomRecord
	currentRoomId string
	messages      []models.MessageRecord
}

func NewChatStore(gw *gateway.Gateway, users *UserTable) *ChatStore {
	return &ChatStore{gw: gw, users: users}
}

// ListRooms replaces the room collection.
func (s *ChatStore) ListRooms(ctx context.Context) chan struct{} {
	return s.dispatch(OpGetChatRooms, "Failed to get chat rooms", func() error {
		rooms, err := s.gw.ChatRooms(ctx)
		if err != nil {
			return err
		}
		records := make([]models.ChatRoomRecord, 0, len(rooms))
		for _, room := range rooms {
			s.users.UpsertAll(room.Participants...)
			if room.LastMessage != nil {
				s.users.Upsert(room.LastMessage.Sender)
			}
			records = append(records, room.Record())
		}
		s.mu.Lock()
		s.rooms = records
		s.mu.Unlock()
		return nil
	})
}

// ListMessages replaces the full message collection with one room's history.
func (s *ChatStore) ListMessages(ctx context.Context, chatRoomId string) chan struct{} {
	return s.dispatch(OpGetMessages, "Failed to get messages", func() error {
		messages, err := s.gw.Messages(ctx, chatRoomId)
		if err != nil {
			return err
		}
		records := make([]models.MessageRecord, 0, len(messages))
		for _, message := range messages {
			s.users.Upsert(message.Sender)
			records = append(records, message.Record())
		}
		s.mu.Lock()
		s.messages = records
		s.mu.Unlock()
		return nil
	})
}

// SendMessage appends the server's echo of the delivered message. There is
// no local echo; the sender sees nothing until the round trip completes.
func (s *ChatStore) SendMessage(ctx context.Context, chatRoomId, content string) chan struct{} {
	return s.dispatch(OpSendMessage, "Failed to send message", func() error {
		message, err := s.gw.SendMessage(ctx, chatRoomId, content)
		if err != nil {
			return err
		}
		s.users.Upsert(message.Sender)
		record := message.Record()
		s.mu.Lock()
		s.messages = append(s.messages, record)
		s.mu.Unlock()
		return nil
	})
}

// SetCurrentRoom pins a cached room. Returns false for an unknown room id.
func (s *ChatStore) SetCurrentRoom(chatRoomId string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].Id == chatRoomId {
			s.currentRoomId = chatRoomId
			return true
		}
	}
	return false
}

// ClearMessages drops the cached history; callers do this on room switch.
func (s *ChatStore) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

func (s *ChatStore) Rooms() []models.ChatRoomRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ChatRoomRecord(nil), s.rooms...)
}

func (s *ChatStore) CurrentRoom() (models.ChatRoomRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.rooms {
		if s.rooms[i].Id == s.currentRoomId {
			return s.rooms[i], true
		}
	}
	return models.ChatRoomRecord{}, false
}

func (s *ChatStore) Messages() []models.MessageRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MessageRecord(nil), s.messages...)
}
