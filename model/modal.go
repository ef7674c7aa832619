package model

// ModalState is the state of the create/edit dialog. It is one of
// ModalClosed, ModalCreating or ModalEditing.
type ModalState interface {
	IsOpen() bool
	modalState()
}

type ModalClosed struct{}

// ModalCreating holds the draft of an entity that does not exist yet.
type ModalCreating struct {
	Draft DataMap
}

// ModalEditing holds the draft of the existing entity with ID.
type ModalEditing struct {
	ID    int
	Draft DataMap
}

func (ModalClosed) IsOpen() bool   { return false }
func (ModalCreating) IsOpen() bool { return true }
func (ModalEditing) IsOpen() bool  { return true }

func (ModalClosed) modalState()   {}
func (ModalCreating) modalState() {}
func (ModalEditing) modalState()  {}

// ModalTitle returns the dialog title for entityType, or "" if the modal is closed.
func ModalTitle(state ModalState, entityType EntityType) string {
	switch state.(type) {
	case ModalCreating:
		return "New " + entityType.Label()
	case ModalEditing:
		return "Edit " + entityType.Label()
	default:
		return ""
	}
}

// ModalSubmitLabel returns the label of the submit button.
func ModalSubmitLabel(state ModalState) string {
	if _, ok := state.(ModalEditing); ok {
		return "Save"
	}
	return "Create"
}

// ModalDraft returns the draft of an open modal, or nil.
func ModalDraft(state ModalState) DataMap {
	switch s := state.(type) {
	case ModalCreating:
		return s.Draft
	case ModalEditing:
		return s.Draft
	default:
		return nil
	}
}

// DefaultDraft returns the form defaults for a new entity of entityType.
func DefaultDraft(entityType EntityType) DataMap {
	switch entityType {
	case ENTITY_USER:
		return DataMap{
			"username": "",
			"email":    "",
			"role":     string(ROLE_USER),
			"status":   string(USER_STATUS_ACTIVE),
		}
	case ENTITY_POST:
		return DataMap{
			"title":    "",
			"content":  "",
			"author":   "",
			"category": "",
			"status":   string(POST_STATUS_DRAFT),
		}
	default:
		return DataMap{}
	}
}
