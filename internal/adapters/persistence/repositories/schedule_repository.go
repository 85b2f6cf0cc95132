package repositories

import (
	"sort"

	"classhub/internal/adapters/persistence/store"
	"classhub/internal/core/domain"
)

// ScheduleRepository handles schedule data access
type ScheduleRepository struct {
	schedules *store.Collection[domain.Schedule]
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(s *store.Store) *ScheduleRepository {
	return &ScheduleRepository{schedules: s.Schedules}
}

// List lists all schedule slots in weekday order (Monday first), then by
// start time, then by ID. Unknown day names sort after Sunday.
func (r *ScheduleRepository) List() []domain.Schedule {
	items := r.schedules.List()
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := weekdayRank(items[i].Day), weekdayRank(items[j].Day)
		if di != dj {
			return di < dj
		}
		if items[i].StartTime != items[j].StartTime {
			return items[i].StartTime < items[j].StartTime
		}
		return items[i].ID < items[j].ID
	})
	return items
}

func weekdayRank(day string) int {
	if idx := domain.WeekdayIndex(day); idx >= 0 {
		return idx
	}
	return len(domain.Weekdays)
}

// GetByID gets a schedule slot by ID
func (r *ScheduleRepository) GetByID(id int) (domain.Schedule, error) {
	s, ok := r.schedules.Get(id)
	if !ok {
		return domain.Schedule{}, domain.ErrNotFound
	}
	return s, nil
}

// Create creates a new schedule slot and assigns its ID
func (r *ScheduleRepository) Create(s domain.Schedule) domain.Schedule {
	return r.schedules.Insert(func(id int) domain.Schedule {
		s.ID = id
		return s
	})
}

// Update applies the non-nil fields of patch over the existing record
func (r *ScheduleRepository) Update(id int, patch domain.SchedulePatch) (domain.Schedule, error) {
	updated, ok := r.schedules.Update(id, func(s domain.Schedule) domain.Schedule {
		if patch.Day != nil {
			s.Day = *patch.Day
		}
		if patch.StartTime != nil {
			s.StartTime = *patch.StartTime
		}
		if patch.EndTime != nil {
			s.EndTime = *patch.EndTime
		}
		if patch.Subject != nil {
			s.Subject = *patch.Subject
		}
		if patch.Location != nil {
			s.Location = *patch.Location
		}
		if patch.Color != nil {
			s.Color = *patch.Color
		}
		return s
	})
	if !ok {
		return domain.Schedule{}, domain.ErrNotFound
	}
	return updated, nil
}

// Delete removes a schedule slot
func (r *ScheduleRepository) Delete(id int) error {
	if !r.schedules.Delete(id) {
		return domain.ErrNotFound
	}
	return nil
}
