package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAction(t *testing.T) {
	tests := []struct {
		name       string
		entityType EntityType
		action     Action
		entity     Entity
		label      string
		variant    Variant
		disabled   bool
	}{
		{"Create user from the toolbar", ENTITY_USER, ACTION_CREATE, nil, "New User", VARIANT_PRIMARY, false},
		{"Create post from the toolbar", ENTITY_POST, ACTION_CREATE, nil, "New Post", VARIANT_PRIMARY, false},
		{"Edit user", ENTITY_USER, ACTION_EDIT, &User{Role: ROLE_ADMIN}, "Edit", VARIANT_PRIMARY, false},
		{"Delete regular user", ENTITY_USER, ACTION_DELETE, &User{Role: ROLE_USER}, "Delete", VARIANT_DANGER, false},
		{"Delete admin user is disabled", ENTITY_USER, ACTION_DELETE, &User{Role: ROLE_ADMIN}, "Delete", VARIANT_DANGER, true},
		{"Delete post", ENTITY_POST, ACTION_DELETE, &Post{Status: POST_STATUS_PUBLISHED}, "Delete", VARIANT_DANGER, false},
		{"Publish draft", ENTITY_POST, ACTION_PUBLISH, &Post{Status: POST_STATUS_DRAFT}, "Publish", VARIANT_SUCCESS, false},
		{"Publish archived", ENTITY_POST, ACTION_PUBLISH, &Post{Status: POST_STATUS_ARCHIVED}, "Publish", VARIANT_SUCCESS, false},
		{"Publish published is disabled", ENTITY_POST, ACTION_PUBLISH, &Post{Status: POST_STATUS_PUBLISHED}, "Publish", VARIANT_SUCCESS, true},
		{"Archive published", ENTITY_POST, ACTION_ARCHIVE, &Post{Status: POST_STATUS_PUBLISHED}, "Archive", VARIANT_SECONDARY, false},
		{"Archive draft is disabled", ENTITY_POST, ACTION_ARCHIVE, &Post{Status: POST_STATUS_DRAFT}, "Archive", VARIANT_SECONDARY, true},
		{"Restore archived", ENTITY_POST, ACTION_RESTORE, &Post{Status: POST_STATUS_ARCHIVED}, "Restore", VARIANT_PRIMARY, false},
		{"Restore published is disabled", ENTITY_POST, ACTION_RESTORE, &Post{Status: POST_STATUS_PUBLISHED}, "Restore", VARIANT_PRIMARY, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			button, err := ResolveAction(tt.entityType, tt.action, tt.entity)
			require.NoError(t, err)
			assert.Equal(t, tt.label, button.Label)
			assert.Equal(t, tt.variant, button.Variant)
			assert.Equal(t, tt.disabled, button.Disabled)
		})
	}

	t.Run("Status actions on users are unsupported", func(t *testing.T) {
		for _, action := range []Action{ACTION_PUBLISH, ACTION_ARCHIVE, ACTION_RESTORE} {
			_, err := ResolveAction(ENTITY_USER, action, &User{})
			assert.ErrorIs(t, err, ErrUnsupportedAction)
		}
	})

	t.Run("Every row action has a rule", func(t *testing.T) {
		for entityType, actions := range rowActions {
			for _, action := range actions {
				_, ok := actionRules[actionKey{entityType, action}]
				assert.True(t, ok, "missing rule for %s/%s", entityType, action)
			}
		}
	})
}

func TestRowActions(t *testing.T) {
	buttons := RowActions(&Post{Status: POST_STATUS_DRAFT})
	require.Len(t, buttons, 5)

	disabled := map[Action]bool{}
	for _, button := range buttons {
		disabled[button.Action] = button.Disabled
	}
	assert.Equal(t, map[Action]bool{
		ACTION_EDIT:    false,
		ACTION_DELETE:  false,
		ACTION_PUBLISH: false,
		ACTION_ARCHIVE: true,
		ACTION_RESTORE: true,
	}, disabled)

	assert.Len(t, RowActions(&User{}), 2)
}

func TestParse(t *testing.T) {
	entityType, err := ParseEntityType(" User ")
	require.NoError(t, err)
	assert.Equal(t, ENTITY_USER, entityType)

	_, err = ParseEntityType("comment")
	assert.Error(t, err)

	action, err := ParseAction("ARCHIVE")
	require.NoError(t, err)
	assert.Equal(t, ACTION_ARCHIVE, action)

	_, err = ParseAction("launch")
	assert.Error(t, err)
}
