package routes

import (
	"context"
	"sync"
	"time"

	"github.com/yoockh/devconnect/internal/models"
	"github.com/yoockh/devconnect/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memUsers struct {
	mu   sync.Mutex
	byID map[string]models.User
}

func newMemUsers() *memUsers { return &memUsers{byID: map[string]models.User{}} }

func (r *memUsers) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return utils.ErrDuplicate
		}
	}
	r.byID[u.ID] = *u
	return nil
}

func (r *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &u, nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *memUsers) ListByIDs(_ context.Context, ids []string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUsers) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

// memProfiles mimics the document store: one profile per user, merge on upsert.
type memProfiles struct {
	mu      sync.Mutex
	byUser  map[string]models.Profile
	listErr error
}

func newMemProfiles() *memProfiles { return &memProfiles{byUser: map[string]models.Profile{}} }

func (r *memProfiles) GetByUserID(_ context.Context, userID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byUser[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &p, nil
}

func (r *memProfiles) GetByExperienceID(_ context.Context, id primitive.ObjectID) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.byUser {
		for _, e := range p.Experience {
			if e.ID == id {
				return &p, nil
			}
		}
	}
	return nil, utils.ErrNotFound
}

func (r *memProfiles) GetByEducationID(_ context.Context, id primitive.ObjectID) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.byUser {
		for _, e := range p.Education {
			if e.ID == id {
				return &p, nil
			}
		}
	}
	return nil, utils.ErrNotFound
}

func (r *memProfiles) List(_ context.Context) ([]models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []models.Profile{}
	for _, p := range r.byUser {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProfiles) Upsert(_ context.Context, userID string, f models.ProfileFields) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byUser[userID]
	if !ok {
		p = models.Profile{
			ID:         primitive.NewObjectID(),
			UserID:     userID,
			Experience: []models.Experience{},
			Education:  []models.Education{},
			CreatedAt:  time.Now().UTC(),
		}
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.Company, f.Company)
	set(&p.Website, f.Website)
	set(&p.Location, f.Location)
	set(&p.Bio, f.Bio)
	set(&p.Status, f.Status)
	set(&p.GithubUsername, f.GithubUsername)
	if f.Skills != nil {
		p.Skills = f.Skills
	}
	set(&p.Social.Youtube, f.Social.Youtube)
	set(&p.Social.Twitter, f.Social.Twitter)
	set(&p.Social.Instagram, f.Social.Instagram)
	set(&p.Social.Linkedin, f.Social.Linkedin)
	set(&p.Social.Facebook, f.Social.Facebook)
	r.byUser[userID] = p
	return &p, nil
}

func (r *memProfiles) update(userID string, fn func(p *models.Profile)) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byUser[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	fn(&p)
	r.byUser[userID] = p
	return &p, nil
}

func (r *memProfiles) PushExperience(_ context.Context, userID string, e models.Experience) (*models.Profile, error) {
	return r.update(userID, func(p *models.Profile) {
		p.Experience = append([]models.Experience{e}, p.Experience...)
	})
}

func (r *memProfiles) PushEducation(_ context.Context, userID string, e models.Education) (*models.Profile, error) {
	return r.update(userID, func(p *models.Profile) {
		p.Education = append([]models.Education{e}, p.Education...)
	})
}

func (r *memProfiles) SetExperience(_ context.Context, userID string, list []models.Experience) (*models.Profile, error) {
	return r.update(userID, func(p *models.Profile) { p.Experience = list })
}

func (r *memProfiles) SetEducation(_ context.Context, userID string, list []models.Education) (*models.Profile, error) {
	return r.update(userID, func(p *models.Profile) { p.Education = list })
}

func (r *memProfiles) DeleteByUserID(_ context.Context, userID string) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byUser[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	delete(r.byUser, userID)
	return &p, nil
}

func (r *memProfiles) Restore(_ context.Context, p *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUser[p.UserID]; ok {
		return utils.ErrDuplicate
	}
	r.byUser[p.UserID] = *p
	return nil
}
