package repositories

import (
	"time"

	"classhub/internal/adapters/persistence/store"
	"classhub/internal/core/domain"
)

// ContactMessageRepository handles contact message data access
type ContactMessageRepository struct {
	messages *store.Collection[domain.ContactMessage]
}

// NewContactMessageRepository creates a new contact message repository
func NewContactMessageRepository(s *store.Store) *ContactMessageRepository {
	return &ContactMessageRepository{messages: s.ContactMessages}
}

// List lists all contact messages in insertion order
func (r *ContactMessageRepository) List() []domain.ContactMessage {
	return r.messages.List()
}

// GetByID gets a contact message by ID
func (r *ContactMessageRepository) GetByID(id int) (domain.ContactMessage, error) {
	m, ok := r.messages.Get(id)
	if !ok {
		return domain.ContactMessage{}, domain.ErrNotFound
	}
	return m, nil
}

// Create stores a new contact message. CreatedAt is stamped here, once;
// there is no update path so it stays immutable.
func (r *ContactMessageRepository) Create(m domain.ContactMessage) domain.ContactMessage {
	return r.messages.Insert(func(id int) domain.ContactMessage {
		m.ID = id
		m.CreatedAt = time.Now().UTC()
		return m
	})
}

// Delete removes a contact message
func (r *ContactMessageRepository) Delete(id int) error {
	if !r.messages.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}
