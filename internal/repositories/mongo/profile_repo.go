package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/yoockh/devconnect/internal/models"
	"github.com/yoockh/devconnect/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ProfilesCollection = "profiles"

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Profile, error)
	GetByExperienceID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error)
	GetByEducationID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Upsert(ctx context.Context, userID string, f models.ProfileFields) (*models.Profile, error)
	PushExperience(ctx context.Context, userID string, e models.Experience) (*models.Profile, error)
	PushEducation(ctx context.Context, userID string, e models.Education) (*models.Profile, error)
	SetExperience(ctx context.Context, userID string, list []models.Experience) (*models.Profile, error)
	SetEducation(ctx context.Context, userID string, list []models.Education) (*models.Profile, error)
	DeleteByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Restore(ctx context.Context, p *models.Profile) error
}

type profileRepo struct {
	col *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) ProfileRepository {
	return &profileRepo{col: db.Collection(ProfilesCollection)}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	return r.findOne(ctx, bson.M{"user": userID})
}

// GetByExperienceID returns the profile holding the experience entry id.
func (r *profileRepo) GetByExperienceID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	return r.findOne(ctx, bson.M{"experience._id": id})
}

func (r *profileRepo) GetByEducationID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	return r.findOne(ctx, bson.M{"education._id": id})
}

func (r *profileRepo) findOne(ctx context.Context, filter bson.M) (*models.Profile, error) {
	var p models.Profile
	err := r.col.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) List(ctx context.Context) ([]models.Profile, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Profile{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert applies f in a single findOneAndUpdate. Supplied fields overwrite,
// omitted fields keep their stored value.
func (r *profileRepo) Upsert(ctx context.Context, userID string, f models.ProfileFields) (*models.Profile, error) {
	update := upsertUpdate(f, primitive.NewObjectID(), time.Now().UTC())
	return r.findOneAndUpdate(ctx, bson.M{"user": userID}, update, true)
}

// upsertUpdate only touches id, empty lists and date when the document is created.
func upsertUpdate(f models.ProfileFields, id primitive.ObjectID, now time.Time) bson.M {
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":        id,
			"experience": bson.A{},
			"education":  bson.A{},
			"date":       now,
		},
	}
	if set := upsertSet(f); len(set) > 0 {
		update["$set"] = set
	}
	return update
}

func upsertSet(f models.ProfileFields) bson.M {
	set := bson.M{}
	put := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	put("company", f.Company)
	put("website", f.Website)
	put("location", f.Location)
	put("bio", f.Bio)
	put("status", f.Status)
	put("githubusername", f.GithubUsername)
	if f.Skills != nil {
		set["skills"] = f.Skills
	}
	put("social.youtube", f.Social.Youtube)
	put("social.twitter", f.Social.Twitter)
	put("social.instagram", f.Social.Instagram)
	put("social.linkedin", f.Social.Linkedin)
	put("social.facebook", f.Social.Facebook)
	return set
}

func (r *profileRepo) PushExperience(ctx context.Context, userID string, e models.Experience) (*models.Profile, error) {
	return r.pushFront(ctx, userID, "experience", e)
}

func (r *profileRepo) PushEducation(ctx context.Context, userID string, e models.Education) (*models.Profile, error) {
	return r.pushFront(ctx, userID, "education", e)
}

func (r *profileRepo) pushFront(ctx context.Context, userID, field string, v any) (*models.Profile, error) {
	return r.findOneAndUpdate(ctx, bson.M{"user": userID}, pushFrontUpdate(field, v), false)
}

func pushFrontUpdate(field string, v any) bson.M {
	return bson.M{"$push": bson.M{
		field: bson.M{"$each": bson.A{v}, "$position": 0},
	}}
}

func (r *profileRepo) SetExperience(ctx context.Context, userID string, list []models.Experience) (*models.Profile, error) {
	return r.findOneAndUpdate(ctx, bson.M{"user": userID}, bson.M{"$set": bson.M{"experience": list}}, false)
}

func (r *profileRepo) SetEducation(ctx context.Context, userID string, list []models.Education) (*models.Profile, error) {
	return r.findOneAndUpdate(ctx, bson.M{"user": userID}, bson.M{"$set": bson.M{"education": list}}, false)
}

func (r *profileRepo) findOneAndUpdate(ctx context.Context, filter, update bson.M, upsert bool) (*models.Profile, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetUpsert(upsert)

	var p models.Profile
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, utils.ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteByUserID removes the profile and returns what was removed.
func (r *profileRepo) DeleteByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var p models.Profile
	err := r.col.FindOneAndDelete(ctx, bson.M{"user": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Restore re-inserts a previously deleted profile with its original id.
func (r *profileRepo) Restore(ctx context.Context, p *models.Profile) error {
	_, err := r.col.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrDuplicate
	}
	return err
}
