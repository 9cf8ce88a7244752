package store

import (
	"errors"
	"sync"
	"time"

	"github.com/mshv/microblog/internal/model"
)

// Error messages double as the response bodies, so the wording matters.
var (
	ErrUserNotFound    = errors.New("User not found")
	ErrArticleNotFound = errors.New("Article not found")
	ErrDuplicateEmail  = errors.New("User with this email already exists")
)

// Store holds both tables for the lifetime of the process. Records live
// in insertion-ordered slices so list endpoints are deterministic; the
// maps are an id index over the same pointers. A single mutex guards
// every operation, including id allocation and the cascading delete.
// Every method returns copies of the stored records: callers marshal
// them after the lock is released, which must not race with an update
// mutating the table in place.
type Store struct {
	mu sync.Mutex

	users       []*model.User
	userByID    map[int64]*model.User
	articles    []*model.Article
	articleByID map[int64]*model.Article

	nextUserID    int64
	nextArticleID int64
}

func New() *Store {
	return &Store{
		userByID:    map[int64]*model.User{},
		articleByID: map[int64]*model.Article{},
	}
}

// CreateUser allocates the next user id and stores the record. Emails
// are unique across all users, compared byte for byte.
func (s *Store) CreateUser(name, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	s.nextUserID++
	user := &model.User{
		ID:    s.nextUserID,
		Name:  name,
		Email: email,
	}
	s.users = append(s.users, user)
	s.userByID[user.ID] = user

	return cloneUser(user), nil
}

func (s *Store) ListUsers() []*model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, cloneUser(u))
	}

	return users
}

func (s *Store) GetUser(id int64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.userByID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	return cloneUser(user), nil
}

// UpdateUser replaces the supplied fields. An empty string means "not
// provided" and leaves the field unchanged. Email uniqueness is checked
// against every other user.
func (s *Store) UpdateUser(id int64, name, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.userByID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	if email != "" {
		for _, u := range s.users {
			if u.ID != id && u.Email == email {
				return nil, ErrDuplicateEmail
			}
		}
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}

	return cloneUser(user), nil
}

// DeleteUser removes the user and every article whose user_id matches.
// Holding the lock across both removals keeps the cascade atomic from
// the caller's point of view.
func (s *Store) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.userByID[id]; !ok {
		return ErrUserNotFound
	}

	delete(s.userByID, id)
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)

			break
		}
	}

	kept := make([]*model.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if a.UserID == id {
			delete(s.articleByID, a.ID)

			continue
		}
		kept = append(kept, a)
	}
	s.articles = kept

	return nil
}

// CreateArticle checks the author exists at creation time, allocates
// the next article id and stamps created_at. The reference is not
// enforced afterwards except through DeleteUser's cascade.
func (s *Store) CreateArticle(userID int64, title, content string, tags []string) (*model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.userByID[userID]; !ok {
		return nil, ErrUserNotFound
	}

	if tags == nil {
		tags = []string{}
	}

	s.nextArticleID++
	article := &model.Article{
		ID:        s.nextArticleID,
		UserID:    userID,
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: time.Now(),
	}
	s.articles = append(s.articles, article)
	s.articleByID[article.ID] = article

	return cloneArticle(article), nil
}

// ListArticles applies the tag and date filters independently and
// returns matches in storage order. A nil after means no date filter;
// the comparison is inclusive.
func (s *Store) ListArticles(tag string, after *time.Time) []*model.Article {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []*model.Article{}
	for _, a := range s.articles {
		if tag != "" && !hasTag(a, tag) {
			continue
		}
		if after != nil && a.CreatedAt.Before(*after) {
			continue
		}
		matched = append(matched, cloneArticle(a))
	}

	return matched
}

func (s *Store) GetArticle(id int64) (*model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	article, ok := s.articleByID[id]
	if !ok {
		return nil, ErrArticleNotFound
	}

	return cloneArticle(article), nil
}

func cloneUser(u *model.User) *model.User {
	c := *u

	return &c
}

// cloneArticle shares the tags slice: tags are never mutated after
// creation.
func cloneArticle(a *model.Article) *model.Article {
	c := *a

	return &c
}

func hasTag(a *model.Article, tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}

	return false
}
