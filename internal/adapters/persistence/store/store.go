// Package store holds the process-local in-memory state of the portal:
// one keyed collection per entity type, each with its own monotonic ID
// allocator. There is no persistence; a restart wipes everything and the
// seeder repopulates it.
package store

import "classhub/internal/core/domain"

// Store bundles every entity collection. Build one with NewStore at
// startup and pass the handle to repositories; there is deliberately no
// package-level instance so tests can use a fresh store per case.
type Store struct {
	Users           *Collection[domain.User]
	CoreMembers     *Collection[domain.CoreMember]
	ClassMembers    *Collection[domain.ClassMember]
	Announcements   *Collection[domain.Announcement]
	Schedules       *Collection[domain.Schedule]
	Assignments     *Collection[domain.Assignment]
	Transactions    *Collection[domain.Transaction]
	ContactMessages *Collection[domain.ContactMessage]
}

// NewStore creates an empty store with all collections initialized
func NewStore() *Store {
	return &Store{
		Users:           NewCollection[domain.User](),
		CoreMembers:     NewCollection[domain.CoreMember](),
		ClassMembers:    NewCollection[domain.ClassMember](),
		Announcements:   NewCollection[domain.Announcement](),
		Schedules:       NewCollection[domain.Schedule](),
		Assignments:     NewCollection[domain.Assignment](),
		Transactions:    NewCollection[domain.Transaction](),
		ContactMessages: NewCollection[domain.ContactMessage](),
	}
}
