package services

import "github.com/yoockh/devconnect/internal/validation"

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (RegisterInput) Messages() validation.Messages {
	return validation.Messages{
		"name":     "Name is required",
		"email":    "Please include a valid email",
		"password": "Please enter a password with 6 or more characters",
	}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (LoginInput) Messages() validation.Messages {
	return validation.Messages{
		"email":    "Please include a valid email",
		"password": "Password is required",
	}
}

// ProfileInput is a create-or-update request. Empty optional fields are left untouched.
type ProfileInput struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" binding:"required"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" binding:"required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Instagram      string `json:"instagram"`
	Linkedin       string `json:"linkedin"`
	Facebook       string `json:"facebook"`
}

func (ProfileInput) Messages() validation.Messages {
	return validation.Messages{
		"status": "Status is required",
		"skills": "Skills is required",
	}
}

type ExperienceInput struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required,date"`
	To          string `json:"to" binding:"omitempty,date"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

func (ExperienceInput) Messages() validation.Messages {
	return validation.Messages{
		"title":         "Title is required",
		"company":       "Company is required",
		"from.required": "From is required",
		"from.date":     "From must be a valid date",
		"to.date":       "To must be a valid date",
	}
}

type EducationInput struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"omitempty,date"`
	To           string `json:"to" binding:"omitempty,date"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

func (EducationInput) Messages() validation.Messages {
	return validation.Messages{
		"school":       "School is required",
		"degree":       "Degree is required",
		"fieldofstudy": "Field of study is required",
		"from.date":    "From must be a valid date",
		"to.date":      "To must be a valid date",
	}
}
