package model

import (
	"fmt"
	"strings"
)

type EntityType string

const (
	ENTITY_USER EntityType = "user"
	ENTITY_POST EntityType = "post"
)

// EntityTypes lists the entity kinds in tab order.
var EntityTypes = []EntityType{ENTITY_POST, ENTITY_USER}

func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(strings.ToLower(strings.TrimSpace(s))) {
	case ENTITY_USER:
		return ENTITY_USER, nil
	case ENTITY_POST:
		return ENTITY_POST, nil
	}
	return "", fmt.Errorf("unknown entity type %q", s)
}

// Label is the singular display name.
func (e EntityType) Label() string {
	switch e {
	case ENTITY_USER:
		return "User"
	case ENTITY_POST:
		return "Post"
	}
	return string(e)
}

// PluralLabel is the tab name.
func (e EntityType) PluralLabel() string {
	return e.Label() + "s"
}

type Action string

const (
	ACTION_CREATE  Action = "create"
	ACTION_EDIT    Action = "edit"
	ACTION_DELETE  Action = "delete"
	ACTION_PUBLISH Action = "publish"
	ACTION_ARCHIVE Action = "archive"
	ACTION_RESTORE Action = "restore"
)

func ParseAction(s string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(s)))
	switch action {
	case ACTION_CREATE, ACTION_EDIT, ACTION_DELETE, ACTION_PUBLISH, ACTION_ARCHIVE, ACTION_RESTORE:
		return action, nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// Entity is a managed record shown as one table row.
type Entity interface {
	Field(key string) any
	Fields() map[string]any
	EntityID() int
	Kind() EntityType
	ToDataMap() DataMap
}
