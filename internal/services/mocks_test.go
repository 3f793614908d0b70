package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/yoockh/devconnect/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) ListByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) profile(args mock.Arguments) (*models.Profile, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	return m.profile(m.Called(ctx, userID))
}

func (m *MockProfileRepo) GetByExperienceID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	return m.profile(m.Called(ctx, id))
}

func (m *MockProfileRepo) GetByEducationID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	return m.profile(m.Called(ctx, id))
}

func (m *MockProfileRepo) List(ctx context.Context) ([]models.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileRepo) Upsert(ctx context.Context, userID string, f models.ProfileFields) (*models.Profile, error) {
	return m.profile(m.Called(ctx, userID, f))
}

func (m *MockProfileRepo) PushExperience(ctx context.Context, userID string, e models.Experience) (*models.Profile, error) {
	return m.profile(m.Called(ctx, userID, e))
}

func (m *MockProfileRepo) PushEducation(ctx context.Context, userID string, e models.Education) (*models.Profile, error) {
	return m.profile(m.Called(ctx, userID, e))
}

func (m *MockProfileRepo) SetExperience(ctx context.Context, userID string, list []models.Experience) (*models.Profile, error) {
	args := m.Called(ctx, userID, list)
	if fn, ok := args.Get(0).(func(context.Context, string, []models.Experience) *models.Profile); ok {
		return fn(ctx, userID, list), args.Error(1)
	}
	return m.profile(args)
}

func (m *MockProfileRepo) SetEducation(ctx context.Context, userID string, list []models.Education) (*models.Profile, error) {
	args := m.Called(ctx, userID, list)
	if fn, ok := args.Get(0).(func(context.Context, string, []models.Education) *models.Profile); ok {
		return fn(ctx, userID, list), args.Error(1)
	}
	return m.profile(args)
}

func (m *MockProfileRepo) DeleteByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	return m.profile(m.Called(ctx, userID))
}

func (m *MockProfileRepo) Restore(ctx context.Context, p *models.Profile) error {
	return m.Called(ctx, p).Error(0)
}

// memCache is an in-process cache.Cache for tests.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = b
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}
