package model

import (
	"time"

	"github.com/google/uuid"
	vm "github.com/siherrmann/validator/model"
)

type PostStatus string

const (
	POST_STATUS_DRAFT     PostStatus = "draft"
	POST_STATUS_PUBLISHED PostStatus = "published"
	POST_STATUS_ARCHIVED  PostStatus = "archived"
)

var PostStatuses = []KeyValuePair{
	{Key: string(POST_STATUS_DRAFT), Value: "Draft"},
	{Key: string(POST_STATUS_PUBLISHED), Value: "Published"},
	{Key: string(POST_STATUS_ARCHIVED), Value: "Archived"},
}

var PostCategories = []KeyValuePair{
	{Key: "development", Value: "Development"},
	{Key: "design", Value: "Design"},
	{Key: "accessibility", Value: "Accessibility"},
}

// Post represents a managed article
type Post struct {
	ID          int        `json:"id"`
	RID         uuid.UUID  `json:"rid"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	Category    string     `json:"category"`
	Status      PostStatus `json:"status"`
	Views       int        `json:"views"`
	CreatedAt   time.Time  `json:"created_at"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// PostFormValidations are the form fields required to save a post.
func PostFormValidations() []vm.Validation {
	return []vm.Validation{
		{Key: "title", Type: vm.String, Requirement: "min1"},
		{Key: "author", Type: vm.String, Requirement: "min1"},
	}
}

func (p *Post) EntityID() int {
	return p.ID
}

func (p *Post) Kind() EntityType {
	return ENTITY_POST
}

func (p *Post) Field(key string) any {
	return p.ToDataMap()[key]
}

func (p *Post) Fields() map[string]any {
	return p.ToDataMap()
}

// ToDataMap returns the displayed fields keyed by their JSON names.
func (p *Post) ToDataMap() DataMap {
	dataMap := DataMap{
		"id":         p.ID,
		"title":      p.Title,
		"content":    p.Content,
		"author":     p.Author,
		"category":   p.Category,
		"status":     string(p.Status),
		"views":      p.Views,
		"created_at": p.CreatedAt,
	}
	if p.PublishedAt != nil {
		dataMap["published_at"] = *p.PublishedAt
	}
	return dataMap
}

// PostFromDataMap reads the editable post fields of a form draft.
func PostFromDataMap(d DataMap) *Post {
	return &Post{
		Title:    d.GetStringByKey("title"),
		Content:  d.GetStringByKey("content"),
		Author:   d.GetStringByKey("author"),
		Category: d.GetStringByKey("category"),
		Status:   PostStatus(d.GetStringByKey("status")),
	}
}

func IsValidPostStatus(status PostStatus) bool {
	return status == POST_STATUS_DRAFT || status == POST_STATUS_PUBLISHED || status == POST_STATUS_ARCHIVED
}
