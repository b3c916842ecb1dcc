// Package mocks provides in-memory repository implementations for tests.
package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gidacan/blog-backend/internal/domain/entity"
)

// MockArticleRepository is an in-memory ArticleRepository
type MockArticleRepository struct {
	mu       sync.Mutex
	articles map[uint]*entity.Article
	nextID   uint

	// Err, when set, is returned by every method
	Err error
}

// NewMockArticleRepository creates an empty mock repository
func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		articles: make(map[uint]*entity.Article),
		nextID:   1,
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *entity.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	article.ID = m.nextID
	m.nextID++
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	cp := *article
	m.articles[article.ID] = &cp
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id uint) (*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	a, ok := m.articles[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (m *MockArticleRepository) GetByName(ctx context.Context, name string) (*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	var match *entity.Article
	for _, a := range m.articles {
		if a.Name != name {
			continue
		}
		if match == nil || a.ID < match.ID {
			match = a
		}
	}
	if match == nil {
		return nil, nil
	}
	cp := *match
	return &cp, nil
}

func (m *MockArticleRepository) Update(ctx context.Context, article *entity.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	article.UpdatedAt = time.Now()
	cp := *article
	m.articles[article.ID] = &cp
	return nil
}

func (m *MockArticleRepository) List(ctx context.Context, page, size int) ([]*entity.Article, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, 0, m.Err
	}
	all := make([]*entity.Article, 0, len(m.articles))
	for _, a := range m.articles {
		cp := *a
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return paginate(all, page, size), int64(len(all)), nil
}

// MockUserRepository is an in-memory UserRepository
type MockUserRepository struct {
	mu     sync.Mutex
	users  map[uint]*entity.User
	nextID uint

	// Err, when set, is returned by every method
	Err error
}

// NewMockUserRepository creates an empty mock repository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[uint]*entity.User),
		nextID: 1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	user.ID = m.nextID
	m.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *MockUserRepository) GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	for _, u := range m.users {
		if u.Username == usernameOrEmail || u.Email == usernameOrEmail {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	user.UpdatedAt = time.Now()
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.users, id)
	return nil
}

func (m *MockUserRepository) List(ctx context.Context, page, size int) ([]*entity.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, 0, m.Err
	}
	all := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return paginate(all, page, size), int64(len(all)), nil
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) UpsertByEmail(ctx context.Context, user *entity.User) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	now := time.Now()
	for _, existing := range m.users {
		if existing.Email != user.Email {
			continue
		}
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
		user.UpdatedAt = now
		cp := *user
		m.users[existing.ID] = &cp
		return false, nil
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = now
	user.UpdatedAt = now
	cp := *user
	m.users[user.ID] = &cp
	return true, nil
}

func paginate[T any](items []*T, page, size int) []*T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = len(items)
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []*T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
