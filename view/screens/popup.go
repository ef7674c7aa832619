package screens

import (
	"fmt"

	"github.com/siherrmann/contentManager/model"
	"github.com/siherrmann/contentManager/view/components"

	"github.com/a-h/templ"
)

const closeOnSuccess = `if(event.detail.successful) this.closest('.popup').remove()`

// EntityPopup renders the create or edit form of state. It renders nothing for a closed modal.
func EntityPopup(entityType model.EntityType, state model.ModalState, csrfToken string) templ.Component {
	if !state.IsOpen() {
		return templ.NopComponent
	}

	action := fmt.Sprintf("/api/%s/add", entityType)
	info := ""
	if editing, ok := state.(model.ModalEditing); ok {
		action = fmt.Sprintf("/api/%s/update?id=%d", entityType, editing.ID)
		info = editInfo(entityType, editing)
	}

	form := entityForm(entityType, action, info, model.ModalDraft(state), model.ModalSubmitLabel(state), csrfToken)
	return components.Modal(model.ModalTitle(state, entityType), form)
}

// DeletePopup asks to confirm the deletion of entity.
func DeletePopup(entity model.Entity, csrfToken string) templ.Component {
	action := fmt.Sprintf("/api/%s/delete?id=%d", entity.Kind(), entity.EntityID())
	question := fmt.Sprintf("Do you really want to delete %s %d?", entity.Kind().Label(), entity.EntityID())

	return components.Modal("Delete "+entity.Kind().Label(), deleteForm(action, question, csrfToken))
}

// editInfo summarises the edited entity above the form.
func editInfo(entityType model.EntityType, editing model.ModalEditing) string {
	info := fmt.Sprintf("ID: %d | created: %s", editing.ID, editing.Draft.GetTimeByKey("created_at"))
	if entityType == model.ENTITY_POST {
		info += fmt.Sprintf(" | views: %d", editing.Draft.GetIntByKey("views"))
	}
	return info
}

func categoryOptions() []model.KeyValuePair {
	return append([]model.KeyValuePair{{Key: "", Value: "None"}}, model.PostCategories...)
}
