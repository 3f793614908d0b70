package models

import "time"

// User is the credential record. PasswordHash never leaves the server.
type User struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey" json:"_id"`
	Name         string    `gorm:"column:name;type:text;not null" json:"name"`
	Email        string    `gorm:"column:email;type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password;type:text;not null" json:"-"`
	Avatar       string    `gorm:"column:avatar;type:text" json:"avatar"`
	CreatedAt    time.Time `gorm:"column:date" json:"date"`
}

func (User) TableName() string { return "users" }

// UserSummary is the part of a user joined into profile reads.
type UserSummary struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}
