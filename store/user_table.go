package store

import (
	"sync"

	"github.com/thrivehealth/thriveGo/models"
)

// UserTable is the single normalized identity table. Every user snapshot the
// backend embeds anywhere (post author, comment author, chat participant,
// message sender, fetched profile) is folded in here, keyed by id; cached
// records reference users by id and resolve through this table at the view
// layer. One shared copy per identity, no cross-store drift.
type UserTable struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserTable() *UserTable {
	return &UserTable{users: make(map[string]models.User)}
}

// Upsert stores a server snapshot. The server copy wins over whatever was
// cached; entities only ever change in response to a fulfilled remote call.
func (t *UserTable) Upsert(user models.User) {
	if len(user.Id) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.users[user.Id] = user
}

func (t *UserTable) UpsertAll(users ...models.User) {
	for _, user := range users {
		t.Upsert(user)
	}
}

func (t *UserTable) Get(id string) (models.User, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	user, ok := t.users[id]
	return user, ok
}

// Patch mutates one cached identity in place. Unknown ids are a silent
// no-op, mirroring the lookup-and-patch rule for counter mutations.
func (t *UserTable) Patch(id string, patch func(*models.User)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	user, ok := t.users[id]
	if !ok {
		return
	}
	patch(&user)
	t.users[id] = user
}
