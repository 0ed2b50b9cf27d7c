package store

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/thrivehealth/thriveGo/models"
)

func pagedPosts(page, perPage, total int, author models.User) ([]models.Post, models.Pagination) {
	posts := make([]models.Post, 0, perPage)
	for i := 0; i < perPage; i++ {
		posts = append(posts, testPost(fmt.Sprintf("p%d", (page-1)*perPage+i+1), author))
	}
	totalPages := (total + perPage - 1) / perPage
	return posts, models.Pagination{Page: page, Limit: perPage, Total: total, TotalPages: totalPages}
}

func TestListPageOneReplacesLaterPagesAppend(t *testing.T) {
	author := testUser("u1", models.RoleDoctor)
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		posts, pagination := pagedPosts(page, 10, 25, author)
		writePage(w, posts, pagination)
	})

	s := NewPostStore(newTestGateway(t, mux), NewUserTable())

	<-s.List(context.Background(), 1, 10, models.DefaultPostFilters())
	if got := len(s.Posts()); got != 10 {
		t.Fatalf("after page 1: %d posts, want 10", got)
	}
	if got := s.Pagination(); got.Page != 1 || got.Total != 25 || got.TotalPages != 3 {
		t.Errorf("pagination = %+v, want page 1, total 25, totalPages 3", got)
	}

	<-s.List(context.Background(), 2, 10, models.DefaultPostFilters())
	posts := s.Posts()
	if len(posts) != 20 {
		t.Fatalf("after page 2: %d posts, want 20", len(posts))
	}
	// prior entries keep their order, new page lands behind them
	for i, post := range posts {
		if want := fmt.Sprintf("p%d", i+1); post.Id != want {
			t.Fatalf("posts[%d].Id = %q, want %q", i, post.Id, want)
		}
	}

	// page 1 again replaces outright
	<-s.List(context.Background(), 1, 10, models.DefaultPostFilters())
	if got := len(s.Posts()); got != 10 {
		t.Errorf("after refetching page 1: %d posts, want 10", got)
	}
}

func TestListFilterSwitchResetsToPageOne(t *testing.T) {
	author := testUser("u1", models.RoleDoctor)
	var requestedPages []string
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		requestedPages = append(requestedPages, r.URL.Query().Get("page"))
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		posts, pagination := pagedPosts(page, 10, 25, author)
		writePage(w, posts, pagination)
	})

	s := NewPostStore(newTestGateway(t, mux), NewUserTable())
	<-s.List(context.Background(), 1, 10, models.DefaultPostFilters())
	<-s.List(context.Background(), 2, 10, models.DefaultPostFilters())
	if len(s.Posts()) != 20 {
		t.Fatalf("precondition: %d posts, want 20", len(s.Posts()))
	}

	// switching filters mid-scroll must drop the cache and ask for page 1,
	// whatever page the caller passed
	filters := models.PostFilters{Type: models.FilterDoctors, Interests: []string{}, SortBy: models.SortRecent}
	<-s.List(context.Background(), 3, 10, filters)

	if got := requestedPages[len(requestedPages)-1]; got != "1" {
		t.Errorf("page requested after filter switch = %s, want 1", got)
	}
	if got := len(s.Posts()); got != 10 {
		t.Errorf("after filter switch: %d posts, want 10 (replaced)", got)
	}
	if got := s.Filters(); got.Type != models.FilterDoctors {
		t.Errorf("filters.Type = %q, want %q", got.Type, models.FilterDoctors)
	}
}

func TestLikeUnlikeNetsToZero(t *testing.T) {
	author := testUser("u1", models.RoleUser)
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		post := testPost("p1", author)
		post.Likes = 7
		writePage(w, []models.Post{post}, models.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1})
	})
	mux.HandleFunc("/posts/p1/like", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, nil)
	})

	s := NewPostStore(newTestGateway(t, mux), NewUserTable())
	<-s.List(context.Background(), 1, 10, models.DefaultPostFilters())
	s.SetCurrent("p1")

	<-s.Like(context.Background(), "p1")
	if post := s.Posts()[0]; !post.IsLiked || post.Likes != 8 {
		t.Fatalf("after like: isLiked=%v likes=%d, want true/8", post.IsLiked, post.Likes)
	}
	if current, _ := s.Current(); !current.IsLiked || current.Likes != 8 {
		t.Fatalf("current slot after like: isLiked=%v likes=%d, want true/8", current.IsLiked, current.Likes)
	}

	<-s.Unlike(context.Background(), "p1")
	if post := s.Posts()[0]; post.IsLiked || post.Likes != 7 {
		t.Errorf("after unlike: isLiked=%v likes=%d, want false/7", post.IsLiked, post.Likes)
	}
	if current, _ := s.Current(); current.IsLiked || current.Likes != 7 {
		t.Errorf("current slot after unlike: isLiked=%v likes=%d, want false/7", current.IsLiked, current.Likes)
	}
}

func TestMutationOnAbsentPostIsSilentNoOp(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts/p9/bookmark", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, nil)
	})

	s := NewPostStore(newTestGateway(t, mux), NewUserTable())

	<-s.Bookmark(context.Background(), "p9")
	if got := len(s.Posts()); got != 0 {
		t.Errorf("store gained %d posts, want 0", got)
	}
	if errText := s.Err(OpBookmarkPost); len(errText) > 0 {
		t.Errorf("Err(%s) = %q, want none", OpBookmarkPost, errText)
	}
}

func TestCreatePrependsAcknowledgedPost(t *testing.T) {
	author := testUser("u1", models.RoleUser)
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			writeData(w, testPost("p-new", author))
			return
		}
		writePage(w, []models.Post{testPost("p-old", author)}, models.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1})
	})

	s := NewPostStore(newTestGateway(t, mux), NewUserTable())
	<-s.List(context.Background(), 1, 10, models.DefaultPostFilters())
	<-s.Create(context.Background(), models.PostDraft{Content: "hello"})

	posts := s.Posts()
	if len(posts) != 2 || posts[0].Id != "p-new" || posts[1].Id != "p-old" {
		t.Errorf("posts after create = %v, want [p-new p-old]", postIds(posts))
	}
}

func TestCreateCommentBumpsCounterEverywhere(t *testing.T) {
	author := testUser("u1", models.RoleUser)
	commenter := testUser("u2", models.RoleUser)
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		post := testPost("p1", author)
		post.Comments = 3
		writePage(w, []models.Post{post}, models.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1})
	})
	mux.HandleFunc("/posts/p1/comments", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, models.Comment{Id: "c1", PostId: "p1", Author: commenter, Content: "nice"})
	})

	s := NewPostStore(newTestGateway(t, mux), NewUserTable())
	<-s.List(context.Background(), 1, 10, models.DefaultPostFilters())
	s.SetCurrent("p1")

	<-s.CreateComment(context.Background(), "p1", "nice")

	if post := s.Posts()[0]; post.Comments != 4 {
		t.Errorf("list entry comment count = %d, want 4", post.Comments)
	}
	if current, _ := s.Current(); current.Comments != 4 {
		t.Errorf("current slot comment count = %d, want 4", current.Comments)
	}
	comments := s.Comments()
	if len(comments) != 1 || comments[0].Id != "c1" || comments[0].AuthorId != "u2" {
		t.Errorf("comments = %+v, want one record c1 by u2", comments)
	}
}

func TestCreateCommentForUncachedPostChangesNoCounter(t *testing.T) {
	commenter := testUser("u2", models.RoleUser)
	mux := http.NewServeMux()
	mux.HandleFunc("/posts/p9/comments", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, models.Comment{Id: "c9", PostId: "p9", Author: commenter, Content: "hi"})
	})

	s := NewPostStore(newTestGateway(t, mux), NewUserTable())
	<-s.CreateComment(context.Background(), "p9", "hi")

	if got := len(s.Posts()); got != 0 {
		t.Errorf("store gained %d posts, want 0", got)
	}
	if errText := s.Err(OpCreateComment); len(errText) > 0 {
		t.Errorf("Err(%s) = %q, want none", OpCreateComment, errText)
	}
	if got := len(s.Comments()); got != 1 {
		t.Errorf("comment thread has %d entries, want 1", got)
	}
}

func TestListCommentsReplacesThread(t *testing.T) {
	commenter := testUser("u2", models.RoleUser)
	mux := http.NewServeMux()
	mux.HandleFunc("/posts/p1/comments", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []models.Comment{
			{Id: "c1", PostId: "p1", Author: commenter, Content: "first", Replies: []models.Comment{
				{Id: "c2", PostId: "p1", Author: commenter, Content: "self-reply"},
			}},
		})
	})

	s := NewPostStore(newTestGateway(t, mux), NewUserTable())
	<-s.ListComments(context.Background(), "p1")
	<-s.ListComments(context.Background(), "p1")

	comments := s.Comments()
	if len(comments) != 1 {
		t.Fatalf("thread has %d roots after refetch, want 1 (replace, not append)", len(comments))
	}
	if len(comments[0].Replies) != 1 || comments[0].Replies[0].AuthorId != "u2" {
		t.Errorf("nested reply not normalized: %+v", comments[0].Replies)
	}
}

func TestConcurrentLikeAndListSettleClean(t *testing.T) {
	author := testUser("u1", models.RoleUser)
	mux := http.NewServeMux()
	listCalls := 0
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		listCalls++
		post := testPost("p1", author)
		if listCalls > 1 {
			// the slow refetch lands after the like was acknowledged
			time.Sleep(80 * time.Millisecond)
			post.IsLiked = true
			post.Likes = 1
		}
		writePage(w, []models.Post{post}, models.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1})
	})
	mux.HandleFunc("/posts/p1/like", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, nil)
	})

	s := NewPostStore(newTestGateway(t, mux), NewUserTable())
	<-s.List(context.Background(), 1, 10, models.DefaultPostFilters())
	s.SetCurrent("p1")

	listDone := s.List(context.Background(), 1, 10, models.DefaultPostFilters())
	likeDone := s.Like(context.Background(), "p1")

	if !s.Loading() {
		t.Error("Loading() = false with operations in flight")
	}

	<-likeDone
	<-listDone

	if s.Loading() {
		t.Error("Loading() = true after both operations settled")
	}
	if errText := s.FirstErr(); len(errText) > 0 {
		t.Errorf("FirstErr() = %q after clean settles, want none", errText)
	}
	if post := s.Posts()[0]; !post.IsLiked {
		t.Error("like flag lost after concurrent list settled")
	}
	if current, _ := s.Current(); !current.IsLiked {
		t.Error("current slot lost the like flag; list must not touch it")
	}
}

func TestFailedMutationRecordsErrorForItsKindOnly(t *testing.T) {
	author := testUser("u1", models.RoleUser)
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		post := testPost("p1", author)
		post.Likes = 5
		writePage(w, []models.Post{post}, models.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1})
	})
	mux.HandleFunc("/posts/p1/like", func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusInternalServerError, "likes are down")
	})

	s := NewPostStore(newTestGateway(t, mux), NewUserTable())
	<-s.List(context.Background(), 1, 10, models.DefaultPostFilters())
	<-s.Like(context.Background(), "p1")

	if got := s.Err(OpLikePost); got != "likes are down" {
		t.Errorf("Err(%s) = %q, want server message", OpLikePost, got)
	}
	if got := s.Err(OpGetPosts); len(got) > 0 {
		t.Errorf("Err(%s) = %q, unrelated kind must stay clean", OpGetPosts, got)
	}
	// rejected mutation commits nothing
	if post := s.Posts()[0]; post.IsLiked || post.Likes != 5 {
		t.Errorf("post mutated on rejected like: isLiked=%v likes=%d", post.IsLiked, post.Likes)
	}

	s.ClearErr(OpLikePost)
	if got := s.Err(OpLikePost); len(got) > 0 {
		t.Errorf("Err after ClearErr = %q, want none", got)
	}
}

func postIds(posts []models.PostRecord) []string {
	ids := make([]string, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.Id)
	}
	return ids
}
