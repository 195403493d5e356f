package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bigitcorp/taskboard/internal/core/domain"
	"github.com/bigitcorp/taskboard/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubTaskRepo struct {
	tasks     []domain.Task
	createErr error
	updateErr error
}

func (r *stubTaskRepo) List(context.Context) ([]domain.Task, error) {
	out := make([]domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *stubTaskRepo) GetByID(_ context.Context, id string) (*domain.Task, error) {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			t := r.tasks[i]
			return &t, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	t.ID = newSubID("task")
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Checklist == nil {
		t.Checklist = []domain.ChecklistItem{}
	}
	if t.Comments == nil {
		t.Comments = []domain.Comment{}
	}
	r.tasks = append(r.tasks, *t)
	return t, nil
}

func (r *stubTaskRepo) Update(_ context.Context, id string, patch ports.TaskPatch) (*domain.Task, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	for i := range r.tasks {
		if r.tasks[i].ID != id {
			continue
		}
		t := &r.tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.ProjectID != nil {
			t.ProjectID = *patch.ProjectID
		}
		if patch.Assignee != nil {
			t.Assignee = *patch.Assignee
		}
		if patch.Manager != nil {
			t.Manager = *patch.Manager
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		if patch.Checklist != nil {
			t.Checklist = *patch.Checklist
		}
		if patch.Comments != nil {
			t.Comments = *patch.Comments
		}
		t.UpdatedAt = time.Now().UTC()
		out := *t
		return &out, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) Delete(_ context.Context, id string) error {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

type stubProjectRepo struct {
	projects []domain.Project
}

func (r *stubProjectRepo) List(context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *stubProjectRepo) GetByID(_ context.Context, id string) (*domain.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id {
			p := r.projects[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	p.ID = newSubID("proj")
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.projects = append(r.projects, *p)
	return p, nil
}

func (r *stubProjectRepo) Update(_ context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID != id {
			continue
		}
		p := &r.projects[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		p.UpdatedAt = time.Now().UTC()
		out := *p
		return &out, nil
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

// stubNotifRepo keeps notifications newest-first, like the real repository.
type stubNotifRepo struct {
	notifs []domain.Notification
}

func (r *stubNotifRepo) List(context.Context) ([]domain.Notification, error) {
	out := make([]domain.Notification, len(r.notifs))
	copy(out, r.notifs)
	return out, nil
}

func (r *stubNotifRepo) GetByID(_ context.Context, id string) (*domain.Notification, error) {
	for i := range r.notifs {
		if r.notifs[i].ID == id {
			n := r.notifs[i]
			return &n, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

func (r *stubNotifRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	n.ID = newSubID("notif")
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	if n.Metadata == nil {
		n.Metadata = map[string]string{}
	}
	r.notifs = append([]domain.Notification{*n}, r.notifs...)
	return n, nil
}

func (r *stubNotifRepo) SetRead(_ context.Context, id string, read bool) (*domain.Notification, error) {
	for i := range r.notifs {
		if r.notifs[i].ID == id {
			r.notifs[i].Read = read
			n := r.notifs[i]
			return &n, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

func (r *stubNotifRepo) SetDeleted(_ context.Context, id string, deleted bool) (*domain.Notification, error) {
	for i := range r.notifs {
		if r.notifs[i].ID == id {
			r.notifs[i].Deleted = deleted
			n := r.notifs[i]
			return &n, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

func (r *stubNotifRepo) Purge(_ context.Context, id string) error {
	for i := range r.notifs {
		if r.notifs[i].ID == id {
			r.notifs = append(r.notifs[:i], r.notifs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

type stubUserRepo struct {
	users []domain.User
}

func (r *stubUserRepo) List(context.Context) ([]domain.User, error) {
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		u := &r.users[i]
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.PasswordHash != nil {
			u.PasswordHash = *patch.PasswordHash
		}
		if patch.Avatar != nil {
			u.Avatar = *patch.Avatar
		}
		out := *u
		return &out, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) SaveAll(_ context.Context, users []domain.User) error {
	r.users = users
	return nil
}

type stubSessionRepo struct {
	current *domain.User
}

func (r *stubSessionRepo) Current(context.Context) (*domain.User, error) {
	if r.current == nil || r.current.ID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	u := *r.current
	return &u, nil
}

func (r *stubSessionRepo) SetCurrent(_ context.Context, u domain.User) error {
	safe := u.WithoutPassword()
	r.current = &safe
	return nil
}

func (r *stubSessionRepo) Clear(context.Context) error {
	r.current = nil
	return nil
}

type stubSettingsRepo struct {
	settings domain.Settings
	saved    bool
}

func (r *stubSettingsRepo) Get(context.Context) (domain.Settings, error) {
	if !r.saved {
		return domain.DefaultSettings(), nil
	}
	return r.settings, nil
}

func (r *stubSettingsRepo) Save(_ context.Context, s domain.Settings) error {
	r.settings = s
	r.saved = true
	return nil
}

// stubAuditor records every entry so tests can assert the one-entry-per-write
// invariant.
type stubAuditor struct {
	entries []ports.AuditEntry
}

func (a *stubAuditor) Record(_ context.Context, entry ports.AuditEntry) {
	a.entries = append(a.entries, entry)
}

type stubMailer struct {
	sent []string // "to|subject"
}

func (m *stubMailer) Send(_ context.Context, to, subject, _ string) bool {
	m.sent = append(m.sent, to+"|"+subject)
	return true
}

// fakeStore is an in-memory ports.Store for backup and settings tests,
// JSON-encoding documents the way the real backends do.
type fakeStore struct {
	docs map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string][]byte{}}
}

func (s *fakeStore) Load(_ context.Context, key string, out any) error {
	raw, ok := s.docs[key]
	if !ok {
		return ports.ErrKeyNotFound
	}
	return json.Unmarshal(raw, out)
}

func (s *fakeStore) Save(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.docs[key] = raw
	return nil
}

func (s *fakeStore) ReplaceAll(ctx context.Context, docs map[string]any) error {
	for key, v := range docs {
		if err := s.Save(ctx, key, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *fakeStore) Ping(context.Context) error { return nil }

func (s *fakeStore) Close(context.Context) error { return nil }
