// Package repositories exposes typed CRUD access to the in-memory store,
// one repository per entity type. Repositories perform no validation;
// request bodies are checked in the HTTP layer before they get here.
package repositories

import (
	"classhub/internal/adapters/persistence/store"
	"classhub/internal/core/domain"
)

// CoreMemberRepository handles core member data access
type CoreMemberRepository struct {
	members *store.Collection[domain.CoreMember]
}

// NewCoreMemberRepository creates a new core member repository
func NewCoreMemberRepository(s *store.Store) *CoreMemberRepository {
	return &CoreMemberRepository{members: s.CoreMembers}
}

// List lists all core members in insertion order
func (r *CoreMemberRepository) List() []domain.CoreMember {
	return r.members.List()
}

// GetByID gets a core member by ID
func (r *CoreMemberRepository) GetByID(id int) (domain.CoreMember, error) {
	member, ok := r.members.Get(id)
	if !ok {
		return domain.CoreMember{}, domain.ErrNotFound
	}
	return member, nil
}

// Create creates a new core member and assigns its ID
func (r *CoreMemberRepository) Create(member domain.CoreMember) domain.CoreMember {
	return r.members.Insert(func(id int) domain.CoreMember {
		member.ID = id
		return member
	})
}

// Update applies the non-nil fields of patch over the existing record
func (r *CoreMemberRepository) Update(id int, patch domain.CoreMemberPatch) (domain.CoreMember, error) {
	updated, ok := r.members.Update(id, func(m domain.CoreMember) domain.CoreMember {
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.StudentID != nil {
			m.StudentID = *patch.StudentID
		}
		if patch.Role != nil {
			m.Role = *patch.Role
		}
		if patch.ImageURL != nil {
			m.ImageURL = *patch.ImageURL
		}
		if patch.Description != nil {
			m.Description = *patch.Description
		}
		return m
	})
	if !ok {
		return domain.CoreMember{}, domain.ErrNotFound
	}
	return updated, nil
}

// Delete removes a core member
func (r *CoreMemberRepository) Delete(id int) error {
	if !r.members.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}

// ClassMemberRepository handles class member data access
type ClassMemberRepository struct {
	members *store.Collection[domain.ClassMember]
}

// NewClassMemberRepository creates a new class member repository
func NewClassMemberRepository(s *store.Store) *ClassMemberRepository {
	return &ClassMemberRepository{members: s.ClassMembers}
}

// List lists all class members in insertion order
func (r *ClassMemberRepository) List() []domain.ClassMember {
	return r.members.List()
}

// GetByID gets a class member by ID
func (r *ClassMemberRepository) GetByID(id int) (domain.ClassMember, error) {
	member, ok := r.members.Get(id)
	if !ok {
		return domain.ClassMember{}, domain.ErrNotFound
	}
	return member, nil
}

// Create creates a new class member and assigns its ID
func (r *ClassMemberRepository) Create(member domain.ClassMember) domain.ClassMember {
	return r.members.Insert(func(id int) domain.ClassMember {
		member.ID = id
		return member
	})
}

// Update applies the non-nil fields of patch over the existing record
func (r *ClassMemberRepository) Update(id int, patch domain.ClassMemberPatch) (domain.ClassMember, error) {
	updated, ok := r.members.Update(id, func(m domain.ClassMember) domain.ClassMember {
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.StudentID != nil {
			m.StudentID = *patch.StudentID
		}
		if patch.ImageURL != nil {
			m.ImageURL = *patch.ImageURL
		}
		return m
	})
	if !ok {
		return domain.ClassMember{}, domain.ErrNotFound
	}
	return updated, nil
}

// Delete removes a class member
func (r *ClassMemberRepository) Delete(id int) error {
	if !r.members.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}
