package page

import (
	"github.com/siherrmann/contentManager/model"
	"github.com/siherrmann/contentManager/table"
)

// Columns returns the table schema of entityType.
func Columns(entityType model.EntityType) []table.Column[model.Entity] {
	switch entityType {
	case model.ENTITY_USER:
		return userColumns()
	case model.ENTITY_POST:
		return postColumns()
	default:
		return nil
	}
}

func userColumns() []table.Column[model.Entity] {
	return []table.Column[model.Entity]{
		{Key: "id", Header: "ID", Width: "70px", Sortable: true},
		{Key: "username", Header: "Username", Sortable: true},
		{Key: "email", Header: "Email", Sortable: true},
		{Key: "role", Header: "Role", Width: "120px", Sortable: true},
		{Key: "status", Header: "Status", Width: "120px", Sortable: true},
		{Key: "created_at", Header: "Created", Width: "120px", Sortable: true},
		actionsColumn(),
	}
}

func postColumns() []table.Column[model.Entity] {
	return []table.Column[model.Entity]{
		{Key: "id", Header: "ID", Width: "70px", Sortable: true},
		{Key: "title", Header: "Title", Sortable: true},
		{Key: "author", Header: "Author", Sortable: true},
		{Key: "category", Header: "Category", Width: "140px", Sortable: true},
		{Key: "status", Header: "Status", Width: "120px", Sortable: true},
		{Key: "views", Header: "Views", Width: "90px", Sortable: true},
		{Key: "created_at", Header: "Created", Width: "120px", Sortable: true},
		actionsColumn(),
	}
}

// actionsColumn renders the row buttons as []model.ActionButton.
func actionsColumn() table.Column[model.Entity] {
	return table.Column[model.Entity]{
		Key:    "actions",
		Header: "Actions",
		Width:  "260px",
		Render: func(row model.Entity) any {
			return model.RowActions(row)
		},
	}
}
