package repositories

import (
	"classhub/internal/adapters/persistence/store"
	"classhub/internal/core/domain"
)

// AssignmentRepository handles assignment data access
type AssignmentRepository struct {
	assignments *store.Collection[domain.Assignment]
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(s *store.Store) *AssignmentRepository {
	return &AssignmentRepository{assignments: s.Assignments}
}

// List lists all assignments in insertion order
func (r *AssignmentRepository) List() []domain.Assignment {
	return r.assignments.List()
}

// GetByID gets an assignment by ID
func (r *AssignmentRepository) GetByID(id int) (domain.Assignment, error) {
	a, ok := r.assignments.Get(id)
	if !ok {
		return domain.Assignment{}, domain.ErrNotFound
	}
	return a, nil
}

// Create creates a new assignment and assigns its ID
func (r *AssignmentRepository) Create(a domain.Assignment) domain.Assignment {
	return r.assignments.Insert(func(id int) domain.Assignment {
		a.ID = id
		return a
	})
}

// Update applies the non-nil fields of patch over the existing record
func (r *AssignmentRepository) Update(id int, patch domain.AssignmentPatch) (domain.Assignment, error) {
	updated, ok := r.assignments.Update(id, func(a domain.Assignment) domain.Assignment {
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.DueDate != nil {
			a.DueDate = *patch.DueDate
		}
		if patch.AssignedDate != nil {
			a.AssignedDate = *patch.AssignedDate
		}
		if patch.Description != nil {
			a.Description = *patch.Description
		}
		if patch.Type != nil {
			a.Type = *patch.Type
		}
		if patch.Submitted != nil {
			a.Submitted = *patch.Submitted
		}
		if patch.Total != nil {
			a.Total = *patch.Total
		}
		if patch.Status != nil {
			a.Status = *patch.Status
		}
		return a
	})
	if !ok {
		return domain.Assignment{}, domain.ErrNotFound
	}
	return updated, nil
}

// Delete removes an assignment
func (r *AssignmentRepository) Delete(id int) error {
	if !r.assignments.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}
