package model

import (
	"errors"
	"fmt"
)

var ErrUnsupportedAction = errors.New("unsupported action")

type Variant string

const (
	VARIANT_PRIMARY   Variant = "primary"
	VARIANT_SECONDARY Variant = "secondary"
	VARIANT_SUCCESS   Variant = "success"
	VARIANT_DANGER    Variant = "danger"
)

// ActionButton is the resolved state of a button triggering action on an entity.
type ActionButton struct {
	EntityType EntityType
	Action     Action
	Label      string
	Variant    Variant
	Disabled   bool
}

type actionKey struct {
	entityType EntityType
	action     Action
}

type actionRule struct {
	label   string
	variant Variant
	// disabled is only consulted when an entity is given.
	disabled func(entity Entity) bool
}

var actionRules = map[actionKey]actionRule{
	{ENTITY_USER, ACTION_CREATE}:  {label: "New User", variant: VARIANT_PRIMARY},
	{ENTITY_USER, ACTION_EDIT}:    {label: "Edit", variant: VARIANT_PRIMARY},
	{ENTITY_USER, ACTION_DELETE}:  {label: "Delete", variant: VARIANT_DANGER, disabled: userHasRole(ROLE_ADMIN)},
	{ENTITY_POST, ACTION_CREATE}:  {label: "New Post", variant: VARIANT_PRIMARY},
	{ENTITY_POST, ACTION_EDIT}:    {label: "Edit", variant: VARIANT_PRIMARY},
	{ENTITY_POST, ACTION_DELETE}:  {label: "Delete", variant: VARIANT_DANGER},
	{ENTITY_POST, ACTION_PUBLISH}: {label: "Publish", variant: VARIANT_SUCCESS, disabled: postHasStatus(POST_STATUS_PUBLISHED)},
	{ENTITY_POST, ACTION_ARCHIVE}: {label: "Archive", variant: VARIANT_SECONDARY, disabled: not(postHasStatus(POST_STATUS_PUBLISHED))},
	{ENTITY_POST, ACTION_RESTORE}: {label: "Restore", variant: VARIANT_PRIMARY, disabled: not(postHasStatus(POST_STATUS_ARCHIVED))},
}

// rowActions are the per-row buttons in display order.
var rowActions = map[EntityType][]Action{
	ENTITY_USER: {ACTION_EDIT, ACTION_DELETE},
	ENTITY_POST: {ACTION_EDIT, ACTION_DELETE, ACTION_PUBLISH, ACTION_ARCHIVE, ACTION_RESTORE},
}

// ResolveAction returns label, variant and enabled state of the button for
// action on an entity of entityType. entity may be nil for toolbar buttons.
func ResolveAction(entityType EntityType, action Action, entity Entity) (ActionButton, error) {
	rule, ok := actionRules[actionKey{entityType, action}]
	if !ok {
		return ActionButton{}, fmt.Errorf("%w: %s on %s", ErrUnsupportedAction, action, entityType)
	}

	button := ActionButton{
		EntityType: entityType,
		Action:     action,
		Label:      rule.label,
		Variant:    rule.variant,
	}
	if entity != nil && rule.disabled != nil {
		button.Disabled = rule.disabled(entity)
	}
	return button, nil
}

// RowActions resolves every row button for entity.
func RowActions(entity Entity) []ActionButton {
	buttons := []ActionButton{}
	for _, action := range rowActions[entity.Kind()] {
		button, err := ResolveAction(entity.Kind(), action, entity)
		if err != nil {
			continue
		}
		buttons = append(buttons, button)
	}
	return buttons
}

func userHasRole(role UserRole) func(Entity) bool {
	return func(entity Entity) bool {
		user, ok := entity.(*User)
		return ok && user != nil && user.Role == role
	}
}

func postHasStatus(status PostStatus) func(Entity) bool {
	return func(entity Entity) bool {
		post, ok := entity.(*Post)
		return ok && post != nil && post.Status == status
	}
}

func not(predicate func(Entity) bool) func(Entity) bool {
	return func(entity Entity) bool {
		return !predicate(entity)
	}
}
