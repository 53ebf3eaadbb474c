package model

type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
