// Package accounttest provides in-memory collaborators for exercising the
// account lifecycle without postgres or SMTP.
package accounttest

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-accounts/internal/domain/account"
	"github.com/BruksfildServices01/barber-accounts/internal/models"
)

// Repository is a map-backed account.Repository enforcing the unique email
// constraint.
type Repository struct {
	mu    sync.Mutex
	users map[string]models.User

	// Err, when set, is returned by every call.
	Err error
}

func NewRepository() *Repository {
	return &Repository{users: make(map[string]models.User)}
}

func (r *Repository) Create(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return account.ErrEmailTaken
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.users[u.ID] = clone(*u)
	return nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, u := range r.users {
		if u.Email == email {
			out := clone(u)
			return &out, nil
		}
	}
	return nil, account.ErrNotFound
}

func (r *Repository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, account.ErrNotFound
	}
	out := clone(u)
	return &out, nil
}

func (r *Repository) List(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, clone(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *Repository) Update(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.users[u.ID]; !ok {
		return account.ErrNotFound
	}
	for id, existing := range r.users {
		if id != u.ID && existing.Email == u.Email {
			return account.ErrEmailTaken
		}
	}
	r.users[u.ID] = clone(*u)
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.users[id]; !ok {
		return account.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// Len reports how many accounts are stored.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

func clone(u models.User) models.User {
	if u.ConfirmationCode != nil {
		code := *u.ConfirmationCode
		u.ConfirmationCode = &code
	}
	if u.ConfirmationExpiresAt != nil {
		exp := *u.ConfirmationExpiresAt
		u.ConfirmationExpiresAt = &exp
	}
	return u
}

// Message is one delivery captured by Mailer.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer records deliveries. When Err is set, Send fails without recording.
type Mailer struct {
	mu   sync.Mutex
	sent []Message
	Err  error
}

var ErrDeliveryFailed = errors.New("accounttest: delivery failed")

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.sent = append(m.sent, Message{To: to, Subject: subject, Body: body})
	return nil
}

func (m *Mailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Message(nil), m.sent...)
}
