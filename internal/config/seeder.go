package config

import (
	"fmt"
	"log"

	"classhub/internal/adapters/persistence/store"
	"classhub/internal/core/domain"
	"classhub/internal/pkg/password"
)

// Seeder populates the in-memory store with fixture data so the portal is
// not empty after a restart. It runs once at startup, before any HTTP
// traffic; running it twice duplicates everything with fresh IDs, which is
// fine for a single-instance process but means callers must not re-run it.
type Seeder struct {
	store *store.Store
}

// NewSeeder creates a new seeder instance
func NewSeeder(s *store.Store) *Seeder {
	return &Seeder{store: s}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Seeding portal fixture data...")

	if err := s.seedAdminUser(); err != nil {
		return err
	}
	s.seedCoreMembers()
	s.seedClassMembers()
	s.seedAnnouncements()
	s.seedSchedules()
	s.seedAssignments()
	s.seedTransactions()

	log.Printf("✅ Seeding completed: %d core members, %d class members, %d announcements, %d schedules, %d assignments, %d transactions",
		s.store.CoreMembers.Len(), s.store.ClassMembers.Len(), s.store.Announcements.Len(),
		s.store.Schedules.Len(), s.store.Assignments.Len(), s.store.Transactions.Len())
	return nil
}

// seedAdminUser seeds the default portal account.
// Development convenience only; there is no login surface yet.
func (s *Seeder) seedAdminUser() error {
	hashed, err := password.Hash("admin123456")
	if err != nil {
		return err
	}
	s.store.Users.Insert(func(id int) domain.User {
		return domain.User{ID: id, Username: "admin", Password: hashed}
	})
	return nil
}

func (s *Seeder) seedCoreMembers() {
	coreMembers := []domain.CoreMember{
		{
			Name:        "Anaya Wijaya",
			StudentID:   "19210720",
			Role:        domain.RolePresident,
			ImageURL:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=500&h=350",
			Description: "Coordinates class activities and chairs the weekly briefing.",
		},
		{
			Name:        "Budi Santoso",
			StudentID:   "19210721",
			Role:        domain.RoleSecretary,
			ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=500&h=350",
			Description: "Keeps minutes, announcements and the assignment tracker.",
		},
		{
			Name:        "Cindy Permata",
			StudentID:   "19210722",
			Role:        domain.RoleTreasurer,
			ImageURL:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=500&h=350",
			Description: "Collects dues and maintains the class ledger.",
		},
	}
	for _, m := range coreMembers {
		m := m
		s.store.CoreMembers.Insert(func(id int) domain.CoreMember {
			m.ID = id
			return m
		})
	}
}

func (s *Seeder) seedClassMembers() {
	memberImages := []string{
		"https://images.unsplash.com/photo-1639149888905-fb39731f2e6c?auto=format&fit=crop&w=300&h=160",
		"https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=300&h=160",
		"https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&w=300&h=160",
		"https://images.unsplash.com/photo-1531746020798-e6953c6e8e04?auto=format&fit=crop&w=300&h=160",
		"https://images.unsplash.com/photo-1591084728795-1149f32d9866?auto=format&fit=crop&w=300&h=160",
		"https://images.unsplash.com/photo-1463453091185-61582044d556?auto=format&fit=crop&w=300&h=160",
		"https://images.unsplash.com/photo-1534528741775-53994a69daeb?auto=format&fit=crop&w=300&h=160",
		"https://images.unsplash.com/photo-1560250097-0b93528c311a?auto=format&fit=crop&w=300&h=160",
	}
	memberNames := []string{
		"Dewi Anggraini", "Eko Prasetyo", "Fani Sulistiawati", "Gunawan Wibisono",
		"Hani Puspita", "Irfan Malik", "Jasmine Putri", "Kevin Anggara",
	}

	for i, name := range memberNames {
		name := name
		i := i
		s.store.ClassMembers.Insert(func(id int) domain.ClassMember {
			return domain.ClassMember{
				ID:        id,
				Name:      name,
				StudentID: fmt.Sprintf("%d", 19210723+i),
				ImageURL:  memberImages[i%len(memberImages)],
			}
		})
	}

	// Fill out the roster to 38 members with deterministic placeholder
	// portraits so repeated seeds produce identical data.
	for i := 0; i < 30; i++ {
		i := i
		gender := "men"
		if i%2 == 1 {
			gender = "women"
		}
		portrait := (i*7 + 11) % 100
		s.store.ClassMembers.Insert(func(id int) domain.ClassMember {
			return domain.ClassMember{
				ID:        id,
				Name:      fmt.Sprintf("Student %d", id),
				StudentID: fmt.Sprintf("%d", 19210731+i),
				ImageURL:  fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", gender, portrait),
			}
		})
	}
}

func (s *Seeder) seedAnnouncements() {
	announcements := []domain.Announcement{
		{
			Date:     "2023-10-15",
			Title:    "Mid-term Exam Schedule",
			Content:  "The mid-term exams will be held from October 25 to October 30. Please check the schedule below and prepare accordingly.",
			PostedBy: "Anaya Wijaya",
			Status:   "important",
		},
		{
			Date:     "2023-10-10",
			Title:    "Group Project Assignment",
			Content:  "Group project assignments for this semester have been posted. Please form groups of 4-5 students and submit your proposal by October 20.",
			PostedBy: "Budi Santoso",
			Status:   "new",
		},
		{
			Date:     "2023-10-05",
			Title:    "Rescheduled Class for Next Week",
			Content:  "The cryptography class on Monday has been rescheduled to Wednesday at the same time due to a faculty meeting.",
			PostedBy: "Anaya Wijaya",
			Status:   "upcoming",
		},
	}
	for _, a := range announcements {
		a := a
		s.store.Announcements.Insert(func(id int) domain.Announcement {
			a.ID = id
			return a
		})
	}
}

func (s *Seeder) seedSchedules() {
	schedules := []domain.Schedule{
		{Day: "Monday", StartTime: "08:00", EndTime: "10:00", Subject: "Cryptography Basics", Location: "Room 301", Color: "primary"},
		{Day: "Wednesday", StartTime: "08:00", EndTime: "10:00", Subject: "System Security", Location: "Lab 102", Color: "accent"},
		{Day: "Friday", StartTime: "08:00", EndTime: "10:00", Subject: "Advanced Algorithms", Location: "Room 305", Color: "primary"},
		{Day: "Tuesday", StartTime: "10:15", EndTime: "12:15", Subject: "Database Systems", Location: "Lab 104", Color: "accent"},
		{Day: "Thursday", StartTime: "10:15", EndTime: "12:15", Subject: "Networking Fundamentals", Location: "Room 302", Color: "primary"},
		{Day: "Monday", StartTime: "13:00", EndTime: "15:00", Subject: "Web Security", Location: "Lab 101", Color: "accent"},
		{Day: "Wednesday", StartTime: "13:00", EndTime: "15:00", Subject: "Project Workshop", Location: "Lab 103", Color: "accent"},
	}
	for _, slot := range schedules {
		slot := slot
		s.store.Schedules.Insert(func(id int) domain.Schedule {
			slot.ID = id
			return slot
		})
	}
}

func (s *Seeder) seedAssignments() {
	assignments := []domain.Assignment{
		{
			Title:        "Cryptography Implementation",
			DueDate:      "2023-10-25",
			AssignedDate: "2023-10-10",
			Description:  "Implement a basic encryption algorithm using the principles discussed in class.",
			Type:         domain.AssignmentGroup,
			Submitted:    12,
			Total:        38,
			Status:       "upcoming",
		},
		{
			Title:        "Security Analysis Report",
			DueDate:      "2023-10-18",
			AssignedDate: "2023-10-01",
			Description:  "Analyze a case study of a recent security breach and write a detailed report.",
			Type:         domain.AssignmentIndividual,
			Submitted:    25,
			Total:        38,
			Status:       "upcoming",
		},
		{
			Title:        "Network Security Quiz",
			DueDate:      "2023-09-30",
			AssignedDate: "2023-09-25",
			Description:  "Online quiz covering topics from chapters 3-5 of the textbook.",
			Type:         domain.AssignmentIndividual,
			Submitted:    38,
			Total:        38,
			Status:       "completed",
		},
	}
	for _, a := range assignments {
		a := a
		s.store.Assignments.Insert(func(id int) domain.Assignment {
			a.ID = id
			return a
		})
	}
}

func (s *Seeder) seedTransactions() {
	transactions := []domain.Transaction{
		{Date: "2023-10-12", Description: "Monthly Class Dues", Category: "dues", Amount: 1900000, Type: domain.TransactionIncome, Status: "completed"},
		{Date: "2023-10-05", Description: "Class Event Supplies", Category: "supplies", Amount: 750000, Type: domain.TransactionExpense, Status: "completed"},
		{Date: "2023-09-28", Description: "Study Materials Printing", Category: "materials", Amount: 450000, Type: domain.TransactionExpense, Status: "completed"},
		{Date: "2023-09-20", Description: "Fundraising Event", Category: "fundraising", Amount: 2500000, Type: domain.TransactionIncome, Status: "completed"},
		{Date: "2023-09-15", Description: "Monthly Class Dues", Category: "dues", Amount: 1900000, Type: domain.TransactionIncome, Status: "completed"},
		{Date: "2023-09-10", Description: "Field Trip Transportation", Category: "transportation", Amount: 1200000, Type: domain.TransactionExpense, Status: "completed"},
		{Date: "2023-09-05", Description: "Welcome Party Decorations", Category: "events", Amount: 350000, Type: domain.TransactionExpense, Status: "completed"},
		{Date: "2023-08-28", Description: "Monthly Class Dues", Category: "dues", Amount: 1300000, Type: domain.TransactionIncome, Status: "completed"},
	}
	for _, tx := range transactions {
		tx := tx
		s.store.Transactions.Insert(func(id int) domain.Transaction {
			tx.ID = id
			return tx
		})
	}
}
