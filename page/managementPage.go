package page

import (
	"context"
	"errors"
	"fmt"

	"github.com/siherrmann/contentManager/model"
	"github.com/siherrmann/contentManager/service"
	"github.com/siherrmann/contentManager/table"
)

var ErrModalClosed = errors.New("no open form to submit")

// Alerts are the transient messages shown above the table.
type Alerts struct {
	Success string
	Error   string
}

// ManagementPage drives the management screen of one entity type at a time.
// It is not safe for concurrent use.
type ManagementPage struct {
	users service.UserServiceFunctions
	posts service.PostServiceFunctions

	entityType model.EntityType
	view       *table.TabularView[model.Entity]
	modal      model.ModalState
	alerts     Alerts
	stats      []model.Stat
}

// NewManagementPage creates a page showing entityType. Call Load to fetch the rows.
func NewManagementPage(users service.UserServiceFunctions, posts service.PostServiceFunctions, entityType model.EntityType, options table.Options) (*ManagementPage, error) {
	columns := Columns(entityType)
	if columns == nil {
		return nil, fmt.Errorf("unknown entity type %q", entityType)
	}

	view, err := table.New(columns, nil, options)
	if err != nil {
		return nil, err
	}

	return &ManagementPage{
		users:      users,
		posts:      posts,
		entityType: entityType,
		view:       view,
		modal:      model.ModalClosed{},
	}, nil
}

func (p *ManagementPage) EntityType() model.EntityType {
	return p.entityType
}

func (p *ManagementPage) Table() *table.TabularView[model.Entity] {
	return p.view
}

func (p *ManagementPage) Modal() model.ModalState {
	return p.modal
}

func (p *ManagementPage) ModalTitle() string {
	return model.ModalTitle(p.modal, p.entityType)
}

func (p *ManagementPage) Alerts() Alerts {
	return p.alerts
}

// Stats returns the statistics of the rows loaded last.
func (p *ManagementPage) Stats() []model.Stat {
	return p.stats
}

// Load fetches the rows of the active entity type and hands them to the table.
func (p *ManagementPage) Load(ctx context.Context) error {
	rows, stats, err := p.fetch(ctx)
	if err != nil {
		p.alerts.Error = fmt.Sprintf("Failed to load %s: %v", p.entityType.PluralLabel(), err)
		return err
	}
	p.stats = stats
	p.view.SetRows(rows)
	return nil
}

// SwitchEntity shows entityType with its own schema. The modal is closed.
func (p *ManagementPage) SwitchEntity(ctx context.Context, entityType model.EntityType) error {
	columns := Columns(entityType)
	if columns == nil {
		return fmt.Errorf("unknown entity type %q", entityType)
	}
	if err := p.view.SetColumns(columns); err != nil {
		return err
	}
	p.entityType = entityType
	p.modal = model.ModalClosed{}
	return p.Load(ctx)
}

// OpenCreate opens an empty form with the defaults of the active entity type.
func (p *ManagementPage) OpenCreate() {
	p.modal = model.ModalCreating{Draft: model.DefaultDraft(p.entityType)}
}

// OpenEdit opens the form for the entity with id.
func (p *ManagementPage) OpenEdit(ctx context.Context, id int) error {
	entity, err := p.Get(ctx, id)
	if err != nil {
		p.alerts.Error = err.Error()
		return err
	}
	p.modal = model.ModalEditing{ID: id, Draft: entity.ToDataMap()}
	return nil
}

// SetDraftField updates one field of the open form. It is a no-op if the modal is closed.
func (p *ManagementPage) SetDraftField(key string, value any) {
	if draft := model.ModalDraft(p.modal); draft != nil {
		draft[key] = value
	}
}

func (p *ManagementPage) CloseModal() {
	p.modal = model.ModalClosed{}
}

// Submit saves the open form. On success the rows are reloaded and the modal
// closes, on failure the modal stays open with the error alert set.
func (p *ManagementPage) Submit(ctx context.Context) (model.Entity, error) {
	var entity model.Entity
	var err error
	var message string

	switch state := p.modal.(type) {
	case model.ModalCreating:
		entity, err = p.Create(ctx, state.Draft)
		message = p.entityType.Label() + " created successfully"
	case model.ModalEditing:
		entity, err = p.Update(ctx, state.ID, state.Draft)
		message = p.entityType.Label() + " updated successfully"
	default:
		return nil, ErrModalClosed
	}
	if err != nil {
		p.alerts.Error = err.Error()
		return nil, err
	}

	p.modal = model.ModalClosed{}
	p.alerts.Success = message
	return entity, p.Load(ctx)
}

// Create inserts an entity of the active type from draft.
func (p *ManagementPage) Create(ctx context.Context, draft model.DataMap) (model.Entity, error) {
	switch p.entityType {
	case model.ENTITY_USER:
		return entityOrNil(p.users.InsertUser(ctx, model.UserFromDataMap(draft)))
	case model.ENTITY_POST:
		return entityOrNil(p.posts.InsertPost(ctx, model.PostFromDataMap(draft)))
	}
	return nil, fmt.Errorf("unknown entity type %q", p.entityType)
}

// Update replaces the editable fields of the entity with id from draft.
func (p *ManagementPage) Update(ctx context.Context, id int, draft model.DataMap) (model.Entity, error) {
	switch p.entityType {
	case model.ENTITY_USER:
		return entityOrNil(p.users.UpdateUser(ctx, id, model.UserFromDataMap(draft)))
	case model.ENTITY_POST:
		return entityOrNil(p.posts.UpdatePost(ctx, id, model.PostFromDataMap(draft)))
	}
	return nil, fmt.Errorf("unknown entity type %q", p.entityType)
}

// Get returns the entity with id of the active type.
func (p *ManagementPage) Get(ctx context.Context, id int) (model.Entity, error) {
	switch p.entityType {
	case model.ENTITY_USER:
		return entityOrNil(p.users.SelectUser(ctx, id))
	case model.ENTITY_POST:
		return entityOrNil(p.posts.SelectPost(ctx, id))
	}
	return nil, fmt.Errorf("unknown entity type %q", p.entityType)
}

// Delete removes the entity with id if its delete button is enabled.
func (p *ManagementPage) Delete(ctx context.Context, id int) error {
	err := p.perform(ctx, id, model.ACTION_DELETE, func(ctx context.Context) error {
		switch p.entityType {
		case model.ENTITY_USER:
			return p.users.DeleteUser(ctx, id)
		default:
			return p.posts.DeletePost(ctx, id)
		}
	})
	if err != nil {
		return err
	}
	p.alerts.Success = p.entityType.Label() + " deleted successfully"
	return p.Load(ctx)
}

// Transition publishes, archives or restores the post with id.
func (p *ManagementPage) Transition(ctx context.Context, id int, action model.Action) (*model.Post, error) {
	if p.entityType != model.ENTITY_POST {
		return nil, fmt.Errorf("%s: %w", action, model.ErrUnsupportedAction)
	}

	var post *model.Post
	err := p.perform(ctx, id, action, func(ctx context.Context) error {
		var err error
		switch action {
		case model.ACTION_PUBLISH:
			post, err = p.posts.PublishPost(ctx, id)
		case model.ACTION_ARCHIVE:
			post, err = p.posts.ArchivePost(ctx, id)
		case model.ACTION_RESTORE:
			post, err = p.posts.RestorePost(ctx, id)
		default:
			err = fmt.Errorf("%s: %w", action, model.ErrUnsupportedAction)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	p.alerts.Success = fmt.Sprintf("Post %q %sd successfully", post.Title, action)
	return post, p.Load(ctx)
}

func (p *ManagementPage) DismissSuccess() {
	p.alerts.Success = ""
}

func (p *ManagementPage) DismissError() {
	p.alerts.Error = ""
}

// perform runs fn if the rule of action is enabled for the entity with id.
func (p *ManagementPage) perform(ctx context.Context, id int, action model.Action, fn func(ctx context.Context) error) error {
	entity, err := p.Get(ctx, id)
	if err != nil {
		p.alerts.Error = err.Error()
		return err
	}

	button, err := model.ResolveAction(p.entityType, action, entity)
	if err != nil {
		p.alerts.Error = err.Error()
		return err
	}
	if button.Disabled {
		err = fmt.Errorf("%w: %s is not available for %s %d", service.ErrConflict, action, p.entityType, id)
		p.alerts.Error = err.Error()
		return err
	}

	if err := fn(ctx); err != nil {
		p.alerts.Error = err.Error()
		return err
	}
	return nil
}

func (p *ManagementPage) fetch(ctx context.Context) ([]model.Entity, []model.Stat, error) {
	switch p.entityType {
	case model.ENTITY_USER:
		users, err := p.users.SelectAllUsers(ctx)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]model.Entity, 0, len(users))
		for _, user := range users {
			rows = append(rows, user)
		}
		return rows, model.UserStats(users), nil
	case model.ENTITY_POST:
		posts, err := p.posts.SelectAllPosts(ctx)
		if err != nil {
			return nil, nil, err
		}
		rows := make([]model.Entity, 0, len(posts))
		for _, post := range posts {
			rows = append(rows, post)
		}
		return rows, model.PostStats(posts), nil
	}
	return nil, nil, fmt.Errorf("unknown entity type %q", p.entityType)
}

// entityOrNil keeps a failed lookup from returning a non-nil interface holding a nil pointer.
func entityOrNil[E model.Entity](entity E, err error) (model.Entity, error) {
	if err != nil {
		return nil, err
	}
	return entity, nil
}
