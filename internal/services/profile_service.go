package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/devconnect/internal/cache"
	"github.com/yoockh/devconnect/internal/models"
	mongorepo "github.com/yoockh/devconnect/internal/repositories/mongo"
	pgrepo "github.com/yoockh/devconnect/internal/repositories/postgres"
	"github.com/yoockh/devconnect/internal/utils"
	"github.com/yoockh/devconnect/internal/validation"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MsgNoProfile          = "There's no profile for this user"
	MsgProfileNotFound    = "Profile not found"
	MsgExperienceNotFound = "Experience not found"
	MsgEducationNotFound  = "Education not found"
)

type ProfileService interface {
	GetMe(ctx context.Context, userID string) (*models.ProfileView, error)
	Upsert(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error)
	List(ctx context.Context) ([]models.ProfileView, error)
	GetByUser(ctx context.Context, userID string) (*models.ProfileView, error)
	DeleteAccount(ctx context.Context, userID string) error

	GetByExperience(ctx context.Context, expID string) (*models.Profile, error)
	AddExperience(ctx context.Context, userID string, in ExperienceInput) (*models.Profile, error)
	UpdateExperience(ctx context.Context, userID, expID string, in ExperienceInput) ([]models.Experience, error)
	DeleteExperience(ctx context.Context, userID, expID string) (*models.Profile, error)

	GetEducationByEntry(ctx context.Context, eduID string) ([]models.Education, error)
	AddEducation(ctx context.Context, userID string, in EducationInput) (*models.Profile, error)
	UpdateEducation(ctx context.Context, userID, eduID string, in EducationInput) ([]models.Education, error)
	DeleteEducation(ctx context.Context, userID, eduID string) (*models.Profile, error)
}

type ProfileServiceOptions struct {
	Cache    cache.Cache
	CacheTTL time.Duration
	Logger   logrus.FieldLogger
}

type profileService struct {
	profiles mongorepo.ProfileRepository
	users    pgrepo.UserRepository
	validate *validator.Validate
	cache    cache.Cache
	ttl      time.Duration
	log      logrus.FieldLogger
}

func NewProfileService(profiles mongorepo.ProfileRepository, users pgrepo.UserRepository, v *validator.Validate, opts ProfileServiceOptions) ProfileService {
	if opts.Cache == nil {
		opts.Cache = cache.Noop{}
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &profileService{
		profiles: profiles,
		users:    users,
		validate: v,
		cache:    opts.Cache,
		ttl:      opts.CacheTTL,
		log:      opts.Logger,
	}
}

func (s *profileService) GetMe(ctx context.Context, userID string) (*models.ProfileView, error) {
	const op = "ProfileService.GetMe"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user id is required", nil)
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, MsgNoProfile, err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return s.populateOne(ctx, op, p)
}

func (s *profileService) Upsert(ctx context.Context, userID string, in ProfileInput) (*models.Profile, error) {
	const op = "ProfileService.Upsert"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user id is required", nil)
	}
	in.Status = strings.TrimSpace(in.Status)
	if err := check(s.validate, op, in); err != nil {
		return nil, err
	}
	skills := ParseSkills(in.Skills)
	if len(skills) == 0 {
		return nil, utils.Invalid(op, utils.FieldError{Msg: in.Messages()["skills"], Param: "skills", Location: "body"})
	}

	f := models.ProfileFields{
		Company:        optional(in.Company),
		Website:        optional(in.Website),
		Location:       optional(in.Location),
		Bio:            optional(in.Bio),
		Status:         optional(in.Status),
		GithubUsername: optional(in.GithubUsername),
		Skills:         skills,
		Social: models.SocialFields{
			Youtube:   optional(in.Youtube),
			Twitter:   optional(in.Twitter),
			Instagram: optional(in.Instagram),
			Linkedin:  optional(in.Linkedin),
			Facebook:  optional(in.Facebook),
		},
	}

	p, err := s.profiles.Upsert(ctx, userID, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert profile", err)
	}
	s.invalidate(ctx, userID)
	return p, nil
}

func (s *profileService) List(ctx context.Context) ([]models.ProfileView, error) {
	const op = "ProfileService.List"

	var cached []models.ProfileView
	if hit, err := s.cache.GetJSON(ctx, cache.ProfileListKey(), &cached); err != nil {
		s.log.WithError(err).WithField("op", op).Warn("profile cache read failed")
	} else if hit {
		return cached, nil
	}

	list, err := s.profiles.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list profiles", err)
	}
	out, err := s.populate(ctx, list)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile owners", err)
	}

	if err := s.cache.SetJSON(ctx, cache.ProfileListKey(), out, s.ttl); err != nil {
		s.log.WithError(err).WithField("op", op).Warn("profile cache write failed")
	}
	return out, nil
}

func (s *profileService) GetByUser(ctx context.Context, userID string) (*models.ProfileView, error) {
	const op = "ProfileService.GetByUser"

	if _, err := uuid.Parse(userID); err != nil {
		return nil, utils.E(utils.CodeNotFound, op, MsgProfileNotFound, err)
	}

	key := cache.ProfileUserKey(userID)
	var cached models.ProfileView
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
		s.log.WithError(err).WithField("op", op).Warn("profile cache read failed")
	} else if hit {
		return &cached, nil
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, MsgProfileNotFound, err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	view, err := s.populateOne(ctx, op, p)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, key, view, s.ttl); err != nil {
		s.log.WithError(err).WithField("op", op).Warn("profile cache write failed")
	}
	return view, nil
}

// DeleteAccount removes the profile and then the user. When the user cannot be
// removed the profile is put back so the two stores stay consistent.
func (s *profileService) DeleteAccount(ctx context.Context, userID string) error {
	const op = "ProfileService.DeleteAccount"

	if userID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user id is required", nil)
	}

	removed, err := s.profiles.DeleteByUserID(ctx, userID)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return utils.E(utils.CodeInternal, op, "failed to delete profile", err)
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		if removed != nil {
			if rerr := s.profiles.Restore(ctx, removed); rerr != nil {
				s.log.WithError(rerr).WithFields(logrus.Fields{
					"op":      op,
					"user_id": userID,
				}).Error("failed to restore profile after user delete failure")
			}
		}
		return utils.E(utils.CodeInternal, op, "failed to delete user", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

// GetByExperience returns the profile that holds the experience entry.
func (s *profileService) GetByExperience(ctx context.Context, expID string) (*models.Profile, error) {
	const op = "ProfileService.GetByExperience"

	id, err := primitive.ObjectIDFromHex(expID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, MsgExperienceNotFound, err)
	}
	p, err := s.profiles.GetByExperienceID(ctx, id)
	if err != nil {
		return nil, notFoundOr(op, err, MsgExperienceNotFound, "failed to get profile")
	}
	return p, nil
}

func (s *profileService) AddExperience(ctx context.Context, userID string, in ExperienceInput) (*models.Profile, error) {
	const op = "ProfileService.AddExperience"

	e, err := s.experienceFrom(op, in)
	if err != nil {
		return nil, err
	}
	e.ID = primitive.NewObjectID()

	p, err := s.profiles.PushExperience(ctx, userID, e)
	if err != nil {
		return nil, notFoundOr(op, err, MsgNoProfile, "failed to add experience")
	}
	s.invalidate(ctx, userID)
	return p, nil
}

func (s *profileService) UpdateExperience(ctx context.Context, userID, expID string, in ExperienceInput) ([]models.Experience, error) {
	const op = "ProfileService.UpdateExperience"

	e, err := s.experienceFrom(op, in)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(expID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, MsgExperienceNotFound, err)
	}
	e.ID = id

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(op, err, MsgNoProfile, "failed to get profile")
	}
	list, ok := replaceEntry(p.Experience, id, e)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, MsgExperienceNotFound, nil)
	}

	p, err = s.profiles.SetExperience(ctx, userID, list)
	if err != nil {
		return nil, notFoundOr(op, err, MsgNoProfile, "failed to update experience")
	}
	s.invalidate(ctx, userID)
	return p.Experience, nil
}

func (s *profileService) DeleteExperience(ctx context.Context, userID, expID string) (*models.Profile, error) {
	const op = "ProfileService.DeleteExperience"

	id, err := primitive.ObjectIDFromHex(expID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, MsgExperienceNotFound, err)
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(op, err, MsgNoProfile, "failed to get profile")
	}
	list, ok := removeEntry(p.Experience, id)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, MsgExperienceNotFound, nil)
	}

	p, err = s.profiles.SetExperience(ctx, userID, list)
	if err != nil {
		return nil, notFoundOr(op, err, MsgNoProfile, "failed to delete experience")
	}
	s.invalidate(ctx, userID)
	return p, nil
}

// GetEducationByEntry returns the education list that holds the entry.
func (s *profileService) GetEducationByEntry(ctx context.Context, eduID string) ([]models.Education, error) {
	const op = "ProfileService.GetEducationByEntry"

	id, err := primitive.ObjectIDFromHex(eduID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, MsgEducationNotFound, err)
	}
	p, err := s.profiles.GetByEducationID(ctx, id)
	if err != nil {
		return nil, notFoundOr(op, err, MsgEducationNotFound, "failed to get profile")
	}
	return p.Education, nil
}

func (s *profileService) AddEducation(ctx context.Context, userID string, in EducationInput) (*models.Profile, error) {
	const op = "ProfileService.AddEducation"

	e, err := s.educationFrom(op, in)
	if err != nil {
		return nil, err
	}
	e.ID = primitive.NewObjectID()

	p, err := s.profiles.PushEducation(ctx, userID, e)
	if err != nil {
		return nil, notFoundOr(op, err, MsgNoProfile, "failed to add education")
	}
	s.invalidate(ctx, userID)
	return p, nil
}

func (s *profileService) UpdateEducation(ctx context.Context, userID, eduID string, in EducationInput) ([]models.Education, error) {
	const op = "ProfileService.UpdateEducation"

	e, err := s.educationFrom(op, in)
	if err != nil {
		return nil, err
	}
	id, err := primitive.ObjectIDFromHex(eduID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, MsgEducationNotFound, err)
	}
	e.ID = id

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(op, err, MsgNoProfile, "failed to get profile")
	}
	list, ok := replaceEntry(p.Education, id, e)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, MsgEducationNotFound, nil)
	}

	p, err = s.profiles.SetEducation(ctx, userID, list)
	if err != nil {
		return nil, notFoundOr(op, err, MsgNoProfile, "failed to update education")
	}
	s.invalidate(ctx, userID)
	return p.Education, nil
}

func (s *profileService) DeleteEducation(ctx context.Context, userID, eduID string) (*models.Profile, error) {
	const op = "ProfileService.DeleteEducation"

	id, err := primitive.ObjectIDFromHex(eduID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, MsgEducationNotFound, err)
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(op, err, MsgNoProfile, "failed to get profile")
	}
	list, ok := removeEntry(p.Education, id)
	if !ok {
		return nil, utils.E(utils.CodeNotFound, op, MsgEducationNotFound, nil)
	}

	p, err = s.profiles.SetEducation(ctx, userID, list)
	if err != nil {
		return nil, notFoundOr(op, err, MsgNoProfile, "failed to delete education")
	}
	s.invalidate(ctx, userID)
	return p, nil
}

func (s *profileService) experienceFrom(op string, in ExperienceInput) (models.Experience, error) {
	if err := check(s.validate, op, in); err != nil {
		return models.Experience{}, err
	}
	from, err := validation.ParseDate(in.From)
	if err != nil {
		return models.Experience{}, utils.Invalid(op, utils.FieldError{Msg: in.Messages()["from.date"], Param: "from", Location: "body"})
	}
	to, err := optionalDate(in.To)
	if err != nil {
		return models.Experience{}, utils.Invalid(op, utils.FieldError{Msg: in.Messages()["to.date"], Param: "to", Location: "body"})
	}
	return models.Experience{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	}, nil
}

func (s *profileService) educationFrom(op string, in EducationInput) (models.Education, error) {
	if err := check(s.validate, op, in); err != nil {
		return models.Education{}, err
	}
	from, err := optionalDate(in.From)
	if err != nil {
		return models.Education{}, utils.Invalid(op, utils.FieldError{Msg: in.Messages()["from.date"], Param: "from", Location: "body"})
	}
	to, err := optionalDate(in.To)
	if err != nil {
		return models.Education{}, utils.Invalid(op, utils.FieldError{Msg: in.Messages()["to.date"], Param: "to", Location: "body"})
	}
	return models.Education{
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	}, nil
}

func (s *profileService) populateOne(ctx context.Context, op string, p *models.Profile) (*models.ProfileView, error) {
	views, err := s.populate(ctx, []models.Profile{*p})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile owner", err)
	}
	return &views[0], nil
}

// populate joins each profile with its owner's name and avatar.
func (s *profileService) populate(ctx context.Context, list []models.Profile) ([]models.ProfileView, error) {
	ids := make([]string, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, p := range list {
		if _, ok := seen[p.UserID]; ok {
			continue
		}
		seen[p.UserID] = struct{}{}
		ids = append(ids, p.UserID)
	}

	users, err := s.users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.UserSummary, len(users))
	for i := range users {
		byID[users[i].ID] = users[i].Summary()
	}

	out := make([]models.ProfileView, 0, len(list))
	for _, p := range list {
		out = append(out, models.NewProfileView(p, byID[p.UserID]))
	}
	return out, nil
}

func (s *profileService) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Del(ctx, cache.ProfileListKey(), cache.ProfileUserKey(userID)); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("profile cache invalidation failed")
	}
}

// ParseSkills splits a comma separated list, trimming each skill and dropping blanks.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := validation.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func notFoundOr(op string, err error, notFoundMsg, internalMsg string) error {
	if errors.Is(err, utils.ErrNotFound) {
		return utils.E(utils.CodeNotFound, op, notFoundMsg, err)
	}
	return utils.E(utils.CodeInternal, op, internalMsg, err)
}
