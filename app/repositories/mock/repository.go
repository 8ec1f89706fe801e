// Package mock provides map-backed repositories for service and controller tests.
package mock

import (
	"context"
	"sync"

	"blogposts/app/models"
	"blogposts/app/repositories"

	"github.com/google/uuid"
)

// BlogRepository is an in-memory repositories.BlogRepository.
type BlogRepository struct {
	blogs map[string]models.Blog
	mutex sync.RWMutex

	// Err, when set, is returned by every call.
	Err error
}

// PostRepository is an in-memory repositories.PostRepository.
type PostRepository struct {
	posts map[string]models.Post
	mutex sync.RWMutex

	// Err, when set, is returned by every call.
	Err error
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{blogs: make(map[string]models.Blog)}
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]models.Post)}
}

// Clear removes every blog.
func (m *BlogRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.blogs = make(map[string]models.Blog)
}

// Len reports how many blogs are stored.
func (m *BlogRepository) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.blogs)
}

// BlogRepository implementation
func (m *BlogRepository) List(ctx context.Context, q models.BlogQuery) ([]*models.Blog, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var blogs []*models.Blog
	for _, blog := range m.blogs {
		if !repositories.MatchesName(&blog, q.SearchNameTerm) {
			continue
		}
		b := blog
		blogs = append(blogs, &b)
	}
	repositories.SortBlogs(blogs, q.SortField(), q.Ascending())
	return repositories.Paginate(blogs, q.ListQuery), len(blogs), nil
}

func (m *BlogRepository) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	blog, exists := m.blogs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return &blog, nil
}

func (m *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if m.Err != nil {
		return m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	blog.ID = uuid.NewString()
	m.blogs[blog.ID] = *blog
	return nil
}

func (m *BlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	if m.Err != nil {
		return m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	existing, exists := m.blogs[blog.ID]
	if !exists {
		return repositories.ErrNotFound
	}
	existing.Name = blog.Name
	existing.Description = blog.Description
	existing.WebsiteURL = blog.WebsiteURL
	m.blogs[blog.ID] = existing
	return nil
}

func (m *BlogRepository) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.blogs[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.blogs, id)
	return nil
}

func (m *BlogRepository) DeleteAll(ctx context.Context) error {
	if m.Err != nil {
		return m.Err
	}
	m.Clear()
	return nil
}

// Clear removes every post.
func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]models.Post)
}

// Len reports how many posts are stored.
func (m *PostRepository) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.posts)
}

// PostRepository implementation
func (m *PostRepository) List(ctx context.Context, q models.PostQuery) ([]*models.Post, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, post := range m.posts {
		if q.BlogID != "" && post.BlogID != q.BlogID {
			continue
		}
		p := post
		posts = append(posts, &p)
	}
	repositories.SortPosts(posts, q.SortField(), q.Ascending())
	return repositories.Paginate(posts, q.ListQuery), len(posts), nil
}

func (m *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return &post, nil
}

func (m *PostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.Err != nil {
		return m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = uuid.NewString()
	m.posts[post.ID] = *post
	return nil
}

func (m *PostRepository) Update(ctx context.Context, post *models.Post) error {
	if m.Err != nil {
		return m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	existing, exists := m.posts[post.ID]
	if !exists {
		return repositories.ErrNotFound
	}
	existing.Title = post.Title
	existing.ShortDescription = post.ShortDescription
	existing.Content = post.Content
	existing.BlogID = post.BlogID
	existing.BlogName = post.BlogName
	m.posts[post.ID] = existing
	return nil
}

func (m *PostRepository) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) DeleteByBlogID(ctx context.Context, blogID string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	removed := 0
	for id, post := range m.posts {
		if post.BlogID == blogID {
			delete(m.posts, id)
			removed++
		}
	}
	return removed, nil
}

func (m *PostRepository) DeleteAll(ctx context.Context) error {
	if m.Err != nil {
		return m.Err
	}
	m.Clear()
	return nil
}

var (
	_ repositories.BlogRepository = (*BlogRepository)(nil)
	_ repositories.PostRepository = (*PostRepository)(nil)
)
