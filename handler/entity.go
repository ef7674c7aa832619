package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/siherrmann/contentManager/model"
	"github.com/siherrmann/contentManager/page"
	"github.com/siherrmann/contentManager/view/screens"

	"github.com/labstack/echo/v4"
	vm "github.com/siherrmann/validator/model"
)

type userRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Role     string `json:"role" form:"role"`
	Status   string `json:"status" form:"status"`
}

type postRequest struct {
	Title    string `json:"title" form:"title"`
	Content  string `json:"content" form:"content"`
	Author   string `json:"author" form:"author"`
	Category string `json:"category" form:"category"`
}

// listResponse is one page of the table as JSON.
type listResponse struct {
	Rows       []model.DataMap `json:"rows"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	Filtered   int             `json:"filtered"`
	Search     string          `json:"search"`
	Sort       string          `json:"sort,omitempty"`
	Direction  string          `json:"dir"`
}

// =======API Handlers=======

// AddEntity creates an entity of :entity from the form or JSON body
func (m *ManagerHandler) AddEntity(c echo.Context) error {
	p, err := m.newPage(c)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	draft, err := m.bindDraft(c, p.EntityType())
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	p.OpenCreate()
	for key, value := range draft.StripEmpty() {
		p.SetDraftField(key, value)
	}
	return m.submit(c, p, http.StatusCreated)
}

// UpdateEntity updates the entity with the id query parameter
func (m *ManagerHandler) UpdateEntity(c echo.Context) error {
	p, err := m.newPage(c)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	id, err := queryId(c)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	draft, err := m.bindDraft(c, p.EntityType())
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	if err := p.OpenEdit(c.Request().Context(), id); err != nil {
		return renderPopupOrJson(c, statusForError(err), fmt.Sprintf("%s not found", p.EntityType().Label()))
	}
	for key, value := range draft {
		p.SetDraftField(key, value)
	}
	return m.submit(c, p, http.StatusOK)
}

// DeleteEntity deletes the entity with the id query parameter
func (m *ManagerHandler) DeleteEntity(c echo.Context) error {
	p, err := m.newPage(c)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	id, err := queryId(c)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	if err := p.Delete(c.Request().Context(), id); err != nil {
		return renderPopupOrJson(c, statusForError(err), p.Alerts().Error)
	}

	m.logger.Info("Entity deleted", "entity", p.EntityType(), "id", id)
	c.Response().Header().Add("HX-Trigger", screens.RefreshTrigger)

	return renderPopupOrJson(c, http.StatusOK, p.Alerts().Success)
}

// PublishPost publishes the post with the id query parameter
func (m *ManagerHandler) PublishPost(c echo.Context) error {
	return m.transitionPost(c, model.ACTION_PUBLISH)
}

// ArchivePost archives the post with the id query parameter
func (m *ManagerHandler) ArchivePost(c echo.Context) error {
	return m.transitionPost(c, model.ACTION_ARCHIVE)
}

// RestorePost moves the archived post with the id query parameter back to draft
func (m *ManagerHandler) RestorePost(c echo.Context) error {
	return m.transitionPost(c, model.ACTION_RESTORE)
}

// GetEntities returns one page of :entity with the table state taken from the query
func (m *ManagerHandler) GetEntities(c echo.Context) error {
	p, err := m.loadPage(c)
	if err != nil {
		return c.JSON(statusForError(err), map[string]string{"error": errorMessage(err)})
	}

	view := p.Table()
	state := view.State()
	response := listResponse{
		Rows:       []model.DataMap{},
		Page:       state.Page,
		TotalPages: view.TotalPages(),
		Filtered:   view.FilteredCount(),
		Search:     state.SearchTerm,
		Sort:       state.SortKey,
		Direction:  state.SortDirection.String(),
	}
	for _, entity := range view.Visible() {
		response.Rows = append(response.Rows, entity.ToDataMap())
	}

	return c.JSON(http.StatusOK, response)
}

// ExportEntities exports all entities of :entity matching the search as a JSON array file
func (m *ManagerHandler) ExportEntities(c echo.Context) error {
	p, err := m.loadPage(c)
	if err != nil {
		return c.JSON(statusForError(err), map[string]string{"error": errorMessage(err)})
	}

	// Export every filtered row, not just the current page
	export := []model.DataMap{}
	view := p.Table()
	for n := 1; n <= view.TotalPages(); n++ {
		view.GoToPage(n)
		for _, entity := range view.Visible() {
			export = append(export, entity.ToDataMap())
		}
	}

	filename := fmt.Sprintf("%ss_%s.json", p.EntityType(), time.Now().Format("20060102_150405"))
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	return c.JSON(http.StatusOK, export)
}

func (m *ManagerHandler) transitionPost(c echo.Context, action model.Action) error {
	p, err := page.NewManagementPage(m.users, m.posts, model.ENTITY_POST, m.options)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	id, err := queryId(c)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), errorMessage(err))
	}

	post, err := p.Transition(c.Request().Context(), id, action)
	if err != nil {
		return renderPopupOrJson(c, statusForError(err), p.Alerts().Error)
	}

	m.logger.Info("Post status changed", "id", id, "action", action, "status", post.Status)
	c.Response().Header().Add("HX-Trigger", screens.RefreshTrigger)

	return renderPopupOrJson(c, http.StatusOK, p.Alerts().Success, post)
}

func (m *ManagerHandler) submit(c echo.Context, p *page.ManagementPage, status int) error {
	entity, err := p.Submit(c.Request().Context())
	if err != nil && entity == nil {
		return renderPopupOrJson(c, statusForError(err), p.Alerts().Error)
	}
	if err != nil {
		m.logger.Warn("Failed to reload rows after save", "entity", p.EntityType(), "error", err)
	}

	m.logger.Info("Entity saved", "entity", p.EntityType(), "id", entity.EntityID())
	c.Response().Header().Add("HX-Trigger", screens.RefreshTrigger)

	return renderPopupOrJson(c, status, p.Alerts().Success, entity)
}

// bindDraft validates the required fields of entityType and binds the
// request body into a form draft. The draft only holds the fields the body
// contains, so a partial update keeps the other fields of the entity.
func (m *ManagerHandler) bindDraft(c echo.Context, entityType model.EntityType) (model.DataMap, error) {
	var validations []vm.Validation
	switch entityType {
	case model.ENTITY_USER:
		validations = model.UserFormValidations()
	case model.ENTITY_POST:
		validations = model.PostFormValidations()
	}

	// The body is read twice, once for validation and once for binding
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
	}
	resetBody := func() {
		c.Request().Body = io.NopCloser(bytes.NewReader(body))
		c.Request().Form = nil
		c.Request().PostForm = nil
	}

	resetBody()
	parameters := map[string]any{}
	err = m.validator.UnmapOrUnmarshalValidateAndUpdateWithValidation(c.Request(), &parameters, validations)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
	}

	resetBody()
	switch entityType {
	case model.ENTITY_USER:
		var requestData userRequest
		if err := c.Bind(&requestData); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		}
		return submittedFields(c, body, model.DataMap{
			"username": requestData.Username,
			"email":    requestData.Email,
			"role":     requestData.Role,
			"status":   requestData.Status,
		})
	default:
		var requestData postRequest
		if err := c.Bind(&requestData); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		}
		return submittedFields(c, body, model.DataMap{
			"title":    requestData.Title,
			"content":  requestData.Content,
			"author":   requestData.Author,
			"category": requestData.Category,
		})
	}
}

// submittedFields drops the fields of draft that body does not contain.
// Bodies other than JSON and url encoded forms keep every field.
func submittedFields(c echo.Context, body []byte, draft model.DataMap) (model.DataMap, error) {
	submitted := map[string]bool{}
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	switch {
	case strings.HasPrefix(contentType, echo.MIMEApplicationJSON):
		fields := map[string]json.RawMessage{}
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		}
		for key := range fields {
			submitted[key] = true
		}
	case strings.HasPrefix(contentType, echo.MIMEApplicationForm):
		values, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		}
		for key := range values {
			submitted[key] = true
		}
	default:
		return draft, nil
	}

	for key := range draft {
		if !submitted[key] {
			delete(draft, key)
		}
	}
	return draft, nil
}
