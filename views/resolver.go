// Package views derives read-only projections from the stores for the
// presentation layer. Cached records reference users by id; everything here
// resolves those ids back through the shared user table. Nothing in this
// package mutates state.
package views

import (
	"sort"

	"github.com/thoas/go-funk"
	"github.com/thrivehealth/thriveGo/models"
	"github.com/thrivehealth/thriveGo/session"
	"github.com/thrivehealth/thriveGo/store"
)

// PostView is a feed entry with its author resolved.
type PostView struct {
	models.PostRecord
	Author models.User
}

// CommentView is a comment with its author and replies resolved.
type CommentView struct {
	models.CommentRecord
	Author  models.User
	Replies []CommentView
}

// RoomView is a chat room with its participants resolved.
type RoomView struct {
	models.ChatRoomRecord
	Participants []models.User
}

// MessageView is a chat message with its sender resolved.
type MessageView struct {
	models.MessageRecord
	Sender models.User
}

// ArticleView is a library article with its author resolved.
type ArticleView struct {
	models.ArticleRecord
	Author models.User
}

// Resolver projects store state into renderable views.
type Resolver struct {
	users         *store.UserTable
	posts         *store.PostStore
	user          *store.UserStore
	chat          *store.ChatStore
	articles      *store.ArticleStore
	notifications *store.NotificationStore
	session       *session.Store
}

func NewResolver(
	users *store.UserTable,
	posts *store.PostStore,
	user *store.UserStore,
	chat *store.ChatStore,
	articles *store.ArticleStore,
	notifications *store.NotificationStore,
	sess *session.Store,
) *Resolver {
	return &Resolver{
		users:         users,
		posts:         posts,
		user:          user,
		chat:          chat,
		articles:      articles,
		notifications: notifications,
		session:       sess,
	}
}

// IsAuthenticated gates which page-level views render at all.
func (v *Resolver) IsAuthenticated() bool {
	return v.session.IsAuthenticated()
}

func (v *Resolver) CurrentUser() (models.User, bool) {
	return v.user.CurrentUser()
}

func (v *Resolver) SelectedUser() (models.User, bool) {
	return v.user.SelectedUser()
}

// Feed returns the cached posts resolved and narrowed by the store's current
// filter state, in the filter's sort order.
func (v *Resolver) Feed() []PostView {
	filters := v.posts.Filters()
	resolved := funk.Map(v.posts.Posts(), v.resolvePost).([]PostView)

	matched := funk.Filter(resolved, func(post PostView) bool {
		return v.matchesFilters(post, filters)
	}).([]PostView)

	sortPosts(matched, filters.SortBy)
	return matched
}

func (v *Resolver) matchesFilters(post PostView, filters models.PostFilters) bool {
	switch filters.Type {
	case models.FilterDoctors:
		if post.Author.Role != models.RoleDoctor {
			return false
		}
	case models.FilterInstitutions:
		if post.Author.Role != models.RoleInstitution {
			return false
		}
	case models.FilterMyTopics:
		if !overlaps(post.Tags, v.user.Interests()) {
			return false
		}
	}
	if len(filters.Interests) > 0 && !overlaps(post.Tags, filters.Interests) {
		return false
	}
	return true
}

func overlaps(tags, wanted []string) bool {
	for _, tag := range tags {
		if funk.ContainsString(wanted, tag) {
			return true
		}
	}
	return false
}

func sortPosts(posts []PostView, sortBy string) {
	switch sortBy {
	case models.SortPopular:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Likes > posts[j].Likes
		})
	case models.SortTrending:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].Comments+posts[i].Shares > posts[j].Comments+posts[j].Shares
		})
	default:
		// recent; the store already keeps most-recent-first order
	}
}

func (v *Resolver) CurrentPost() (PostView, bool) {
	record, ok := v.posts.Current()
	if !ok {
		return PostView{}, false
	}
	return v.resolvePost(record), true
}

// IsCurrentPostLiked reports the viewer's like state on the open post.
func (v *Resolver) IsCurrentPostLiked() bool {
	record, ok := v.posts.Current()
	return ok && record.IsLiked
}

// CommentThread resolves the open post's comments, replies included.
func (v *Resolver) CommentThread() []CommentView {
	return funk.Map(v.posts.Comments(), v.resolveComment).([]CommentView)
}

func (v *Resolver) resolvePost(record models.PostRecord) PostView {
	author, _ := v.users.Get(record.AuthorId)
	return PostView{PostRecord: record, Author: author}
}

func (v *Resolver) resolveComment(record models.CommentRecord) CommentView {
	author, _ := v.users.Get(record.AuthorId)
	view := CommentView{CommentRecord: record, Author: author}
	for _, reply := range record.Replies {
		view.Replies = append(view.Replies, v.resolveComment(reply))
	}
	return view
}

// Rooms resolves the chat room list with participants.
func (v *Resolver) Rooms() []RoomView {
	return funk.Map(v.chat.Rooms(), func(record models.ChatRoomRecord) RoomView {
		view := RoomView{ChatRoomRecord: record}
		for _, id := range record.ParticipantIds {
			if participant, ok := v.users.Get(id); ok {
				view.Participants = append(view.Participants, participant)
			}
		}
		return view
	}).([]RoomView)
}

// Messages resolves the loaded message history with senders.
func (v *Resolver) Messages() []MessageView {
	return funk.Map(v.chat.Messages(), func(record models.MessageRecord) MessageView {
		sender, _ := v.users.Get(record.SenderId)
		return MessageView{MessageRecord: record, Sender: sender}
	}).([]MessageView)
}

// TotalUnread sums unread counters across rooms for the chat badge.
func (v *Resolver) TotalUnread() int {
	total := 0
	for _, room := range v.chat.Rooms() {
		total += room.UnreadCount
	}
	return total
}

func (v *Resolver) Articles() []ArticleView {
	return funk.Map(v.articles.Articles(), func(record models.ArticleRecord) ArticleView {
		author, _ := v.users.Get(record.AuthorId)
		return ArticleView{ArticleRecord: record, Author: author}
	}).([]ArticleView)
}

func (v *Resolver) CurrentArticle() (ArticleView, bool) {
	record, ok := v.articles.Current()
	if !ok {
		return ArticleView{}, false
	}
	author, _ := v.users.Get(record.AuthorId)
	return ArticleView{ArticleRecord: record, Author: author}, true
}

func (v *Resolver) Notifications() []models.Notification {
	return v.notifications.Notifications()
}

// UnreadNotificationCount feeds the bell badge.
func (v *Resolver) UnreadNotificationCount() int {
	count := 0
	for _, notification := range v.notifications.Notifications() {
		if !notification.IsRead {
			count++
		}
	}
	return count
}
