package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Profile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID         string             `bson:"user" json:"user"`
	Company        string             `bson:"company,omitempty" json:"company,omitempty"`
	Website        string             `bson:"website,omitempty" json:"website,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Status         string             `bson:"status" json:"status"`
	GithubUsername string             `bson:"githubusername,omitempty" json:"githubusername,omitempty"`
	Skills         []string           `bson:"skills" json:"skills"`
	Social         Social             `bson:"social" json:"social"`
	Experience     []Experience       `bson:"experience" json:"experience"`
	Education      []Education        `bson:"education" json:"education"`
	CreatedAt      time.Time          `bson:"date" json:"date"`
}

type Social struct {
	Youtube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Linkedin  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
}

type Experience struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Company     string             `bson:"company" json:"company"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	From        time.Time          `bson:"from" json:"from"`
	To          *time.Time         `bson:"to,omitempty" json:"to,omitempty"`
	Current     bool               `bson:"current" json:"current"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
}

func (e Experience) EntryID() primitive.ObjectID { return e.ID }

type Education struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	School       string             `bson:"school" json:"school"`
	Degree       string             `bson:"degree" json:"degree"`
	FieldOfStudy string             `bson:"fieldofstudy" json:"fieldofstudy"`
	From         *time.Time         `bson:"from,omitempty" json:"from,omitempty"`
	To           *time.Time         `bson:"to,omitempty" json:"to,omitempty"`
	Current      bool               `bson:"current" json:"current"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
}

func (e Education) EntryID() primitive.ObjectID { return e.ID }

// ProfileView is a profile as clients read it, with the owner populated in
// place of the bare user id.
type ProfileView struct {
	ID             primitive.ObjectID `json:"_id"`
	User           UserSummary        `json:"user"`
	Company        string             `json:"company,omitempty"`
	Website        string             `json:"website,omitempty"`
	Location       string             `json:"location,omitempty"`
	Bio            string             `json:"bio,omitempty"`
	Status         string             `json:"status"`
	GithubUsername string             `json:"githubusername,omitempty"`
	Skills         []string           `json:"skills"`
	Social         Social             `json:"social"`
	Experience     []Experience       `json:"experience"`
	Education      []Education        `json:"education"`
	CreatedAt      time.Time          `json:"date"`
}

func NewProfileView(p Profile, owner UserSummary) ProfileView {
	if owner.ID == "" {
		owner.ID = p.UserID
	}
	return ProfileView{
		ID:             p.ID,
		User:           owner,
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Bio:            p.Bio,
		Status:         p.Status,
		GithubUsername: p.GithubUsername,
		Skills:         p.Skills,
		Social:         p.Social,
		Experience:     p.Experience,
		Education:      p.Education,
		CreatedAt:      p.CreatedAt,
	}
}

// ProfileFields carries an upsert. Nil pointers are fields the caller did not supply.
type ProfileFields struct {
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	Status         *string
	GithubUsername *string
	Skills         []string
	Social         SocialFields
}

type SocialFields struct {
	Youtube   *string
	Twitter   *string
	Instagram *string
	Linkedin  *string
	Facebook  *string
}
