package main

import (
	"github.com/thrivehealth/thriveGo/gateway"
	"github.com/thrivehealth/thriveGo/session"
	"github.com/thrivehealth/thriveGo/store"
	"github.com/thrivehealth/thriveGo/views"
)

type Inject struct {
	Session *session.Store
	Gateway *gateway.Gateway
	Users   *store.UserTable

	PostStore         *store.PostStore
	UserStore         *store.UserStore
	ChatStore         *store.ChatStore
	ArticleStore      *store.ArticleStore
	NotificationStore *store.NotificationStore

	Views *views.Resolver
}

// NewInject wires one application session: the persisted session feeds the
// gateway its bearer token, the gateway's 401 trap purges that same session,
// and every store shares one user table.
func NewInject(cfg Config) (*Inject, error) {
	inj := &Inject{}

	sess, err := session.Open(cfg.SessionFile)
	if err != nil {
		return nil, err
	}
	inj.Session = sess

	inj.Gateway = gateway.New(gateway.Config{
		BaseURL:        cfg.APIURL,
		Timeout:        cfg.Timeout,
		TokenProvider:  sess.Token,
		OnUnauthorized: func() { sess.Clear() },
	})

	inj.Users = store.NewUserTable()
	inj.PostStore = store.NewPostStore(inj.Gateway, inj.Users)
	inj.UserStore = store.NewUserStore(inj.Gateway, inj.Users, sess)
	inj.ChatStore = store.NewChatStore(inj.Gateway, inj.Users)
	inj.ArticleStore = store.NewArticleStore(inj.Gateway, inj.Users)
	inj.NotificationStore = store.NewNotificationStore(inj.Gateway)

	inj.Views = views.NewResolver(
		inj.Users,
		inj.PostStore,
		inj.UserStore,
		inj.ChatStore,
		inj.ArticleStore,
		inj.NotificationStore,
		sess,
	)
	return inj, nil
}
