package models

import "time"

// FAQ is a single question/answer entry with optional illustrative image.
type FAQ struct {
	ID        string    `json:"id"`
	Image     string    `json:"image,omitempty"`     // URL or data URI
	ImageName string    `json:"imageName,omitempty"` // display name of the image
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FAQFields is the writable part of an FAQ. PUT overwrites every field.
type FAQFields struct {
	Image     string
	ImageName string
	Question  string
	Answer    string
}
