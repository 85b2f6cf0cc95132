package repositories

import (
	"sort"

	"classhub/internal/adapters/persistence/store"
	"classhub/internal/core/domain"
)

// AnnouncementRepository handles announcement data access
type AnnouncementRepository struct {
	announcements *store.Collection[domain.Announcement]
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(s *store.Store) *AnnouncementRepository {
	return &AnnouncementRepository{announcements: s.Announcements}
}

// List lists all announcements, newest first. Dates are YYYY-MM-DD strings
// so lexical comparison is chronological; ties go to the higher ID.
func (r *AnnouncementRepository) List() []domain.Announcement {
	items := r.announcements.List()
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date > items[j].Date
		}
		return items[i].ID > items[j].ID
	})
	return items
}

// GetByID gets an announcement by ID
func (r *AnnouncementRepository) GetByID(id int) (domain.Announcement, error) {
	a, ok := r.announcements.Get(id)
	if !ok {
		return domain.Announcement{}, domain.ErrNotFound
	}
	return a, nil
}

// Create creates a new announcement and assigns its ID
func (r *AnnouncementRepository) Create(a domain.Announcement) domain.Announcement {
	return r.announcements.Insert(func(id int) domain.Announcement {
		a.ID = id
		return a
	})
}

// Update applies the non-nil fields of patch over the existing record
func (r *AnnouncementRepository) Update(id int, patch domain.AnnouncementPatch) (domain.Announcement, error) {
	updated, ok := r.announcements.Update(id, func(a domain.Announcement) domain.Announcement {
		if patch.Date != nil {
			a.Date = *patch.Date
		}
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.Content != nil {
			a.Content = *patch.Content
		}
		if patch.PostedBy != nil {
			a.PostedBy = *patch.PostedBy
		}
		if patch.Status != nil {
			a.Status = *patch.Status
		}
		return a
	})
	if !ok {
		return domain.Announcement{}, domain.ErrNotFound
	}
	return updated, nil
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(id int) error {
	if !r.announcements.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}
