package store

import (
	"context"
	"sync"

	"github.com/thrivehealth/thriveGo/gateway"
	"github.com/thrivehealth/thriveGo/models"
	"github.com/thrivehealth/thriveGo/session"
)

// User store operation kinds.
const (
	OpLogin           = "auth/login"
	OpRegister        = "auth/register"
	OpGoogleLogin     = "auth/google"
	OpLogout          = "auth/logout"
	OpGetCurrentUser  = "auth/getCurrentUser"
	OpUpdateProfile   = "user/updateProfile"
	OpGetUserProfile  = "user/getUserProfile"
	OpFollowUser      = "user/followUser"
	OpUnfollowUser    = "user/unfollowUser"
	OpGetInterests    = "user/getUserInterests"
	OpUpdateInterests = "user/updateUserInterests"
)

// UserStore owns identity state: which user the session belongs to, which
// profile is being viewed (a separate slot, so browsing someone else's
// profile never clobbers the logged-in identity), and the interest tags
// picked during onboarding. Identities themselves live in the shared user
// table.
type UserStore struct {
	Tracker
	gw      *gateway.Gateway
	users   *UserTable
	session *session.Store

	mu            sync.RWMutex
	currentId     string
	selectedId    string
	userInterests []string
	catalog       []models.HealthInterest
}

func NewUserStore(gw *gateway.Gateway, users *UserTable, sess *session.Store) *UserStore {
	s := &UserStore{gw: gw, users: users, session: sess}

	// resume the persisted identity, if any
	if user, ok := sess.User(); ok {
		users.Upsert(user)
		s.currentId = user.Id
	}
	return s
}

func (s *UserStore) Login(ctx context.Context, email, password string) chan struct{} {
	return s.dispatch(OpLogin, "Login failed", func() error {
		result, err := s.gw.Login(ctx, email, password)
		if err != nil {
			return err
		}
		s.openSession(result)
		return nil
	})
}

func (s *UserStore) Register(ctx context.Context, form models.RegisterForm) chan struct{} {
	return s.dispatch(OpRegister, "Registration failed", func() error {
		result, err := s.gw.Register(ctx, form)
		if err != nil {
			return err
		}
		s.openSession(result)
		return nil
	})
}

// GoogleLogin exchanges a Google OAuth token for a session.
func (s *UserStore) GoogleLogin(ctx context.Context, googleToken string) chan struct{} {
	return s.dispatch(OpGoogleLogin, "Google sign-in failed", func() error {
		result, err := s.gw.GoogleAuth(ctx, googleToken)
		if err != nil {
			return err
		}
		s.openSession(result)
		return nil
	})
}

func (s *UserStore) openSession(result models.AuthResult) {
	s.session.SetCredentials(result.Token, result.User)
	s.users.Upsert(result.User)
	s.mu.Lock()
	s.currentId = result.User.Id
	s.mu.Unlock()
}

// Logout invalidates the session server-side and purges local credentials
// regardless of how that call went.
func (s *UserStore) Logout(ctx context.Context) chan struct{} {
	return s.dispatch(OpLogout, "Logout failed", func() error {
		err := s.gw.Logout(ctx)
		s.session.Clear()
		s.mu.Lock()
		s.currentId = ""
		s.mu.Unlock()
		return err
	})
}

// FetchCurrentUser refreshes the identity behind the session token.
func (s *UserStore) FetchCurrentUser(ctx context.Context) chan struct{} {
	return s.dispatch(OpGetCurrentUser, "Failed to get current user", func() error {
		user, err := s.gw.CurrentUser(ctx)
		if err != nil {
			return err
		}
		s.session.SetUser(user)
		s.users.Upsert(user)
		s.mu.Lock()
		s.currentId = user.Id
		s.mu.Unlock()
		return nil
	})
}

// UpdateProfile saves edits and commits the server's copy.
func (s *UserStore) UpdateProfile(ctx context.Context, userId string, form models.ProfileForm) chan struct{} {
	return s.dispatch(OpUpdateProfile, "Failed to update profile", func() error {
		user, err := s.gw.UpdateProfile(ctx, userId, form)
		if err != nil {
			return err
		}
		s.users.Upsert(user)
		s.mu.RLock()
		isCurrent := user.Id == s.currentId
		s.mu.RUnlock()
		if isCurrent {
			s.session.SetUser(user)
		}
		return nil
	})
}

// FetchProfile loads a profile into the selected-user slot.
func (s *UserStore) FetchProfile(ctx context.Context, userId string) chan struct{} {
	return s.dispatch(OpGetUserProfile, "Failed to get user profile", func() error {
		user, err := s.gw.UserProfile(ctx, userId)
		if err != nil {
			return err
		}
		s.users.Upsert(user)
		s.mu.Lock()
		s.selectedId = user.Id
		s.mu.Unlock()
		return nil
	})
}

// Follow bumps the viewed profile's follower count and the session user's
// following count, both by exactly one. Two distinct identities, both
// patched in the shared table.
func (s *UserStore) Follow(ctx context.Context, userId string) chan struct{} {
	return s.dispatch(OpFollowUser, "Failed to follow user", func() error {
		if err := s.gw.FollowUser(ctx, userId); err != nil {
			return err
		}
		s.adjustFollowEdge(userId, 1)
		return nil
	})
}

func (s *UserStore) Unfollow(ctx context.Context, userId string) chan struct{} {
	return s.dispatch(OpUnfollowUser, "Failed to unfollow user", func() error {
		if err := s.gw.UnfollowUser(ctx, userId); err != nil {
			return err
		}
		s.adjustFollowEdge(userId, -1)
		return nil
	})
}

func (s *UserStore) adjustFollowEdge(followeeId string, delta int) {
	s.users.Patch(followeeId, func(user *models.User) {
		user.Followers += delta
	})
	s.mu.RLock()
	currentId := s.currentId
	s.mu.RUnlock()
	if len(currentId) > 0 {
		s.users.Patch(currentId, func(user *models.User) {
			user.Following += delta
		})
	}
}

// FetchInterests replaces the cached interest tags with the server's copy.
func (s *UserStore) FetchInterests(ctx context.Context, userId string) chan struct{} {
	return s.dispatch(OpGetInterests, "Failed to get user interests", func() error {
		interests, err := s.gw.UserInterests(ctx, userId)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.userInterests = interests
		s.mu.Unlock()
		return nil
	})
}

// UpdateInterests commits the submitted tags once the backend accepts them.
func (s *UserStore) UpdateInterests(ctx context.Context, userId string, interests []string) chan struct{} {
	return s.dispatch(OpUpdateInterests, "Failed to update interests", func() error {
		if err := s.gw.UpdateUserInterests(ctx, userId, interests); err != nil {
			return err
		}
		s.mu.Lock()
		s.userInterests = append([]string(nil), interests...)
		s.mu.Unlock()
		return nil
	})
}

// SetCatalog stores the static onboarding interest catalog.
func (s *UserStore) SetCatalog(catalog []models.HealthInterest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = append([]models.HealthInterest(nil), catalog...)
}

func (s *UserStore) Catalog() []models.HealthInterest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.HealthInterest(nil), s.catalog...)
}

// CurrentUser resolves the session identity through the user table.
func (s *UserStore) CurrentUser() (models.User, bool) {
	s.mu.RLock()
	id := s.currentId
	s.mu.RUnlock()
	if len(id) == 0 {
		return models.User{}, false
	}
	return s.users.Get(id)
}

// SelectedUser resolves the viewed profile through the user table.
func (s *UserStore) SelectedUser() (models.User, bool) {
	s.mu.RLock()
	id := s.selectedId
	s.mu.RUnlock()
	if len(id) == 0 {
		return models.User{}, false
	}
	return s.users.Get(id)
}

func (s *UserStore) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedId = ""
}

func (s *UserStore) Interests() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.userInterests...)
}
