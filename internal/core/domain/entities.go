package domain

import "time"

// Role represents a core member's role in the class committee
type Role string

const (
	RolePresident Role = "president"
	RoleSecretary Role = "secretary"
	RoleTreasurer Role = "treasurer"
)

// TransactionType distinguishes money coming in from money going out
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// AssignmentType distinguishes individual from group work
type AssignmentType string

const (
	AssignmentIndividual AssignmentType = "individual"
	AssignmentGroup      AssignmentType = "group"
)

// Weekdays in schedule order, Monday first
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// CoreMember represents a class committee member (president, secretary, treasurer)
type CoreMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	StudentID   string `json:"studentId"`
	Role        Role   `json:"role"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description,omitempty"`
}

// ClassMember represents a regular class member
type ClassMember struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
	ImageURL  string `json:"imageUrl"`
}

// Announcement represents a class announcement
// Date is a YYYY-MM-DD string; defaults to the creation date when omitted
type Announcement struct {
	ID       int    `json:"id"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	PostedBy string `json:"postedBy"`
	Status   string `json:"status"` // "important", "new", "upcoming", ...
}

// Schedule represents one weekly class slot
// Overlapping slots are permitted; the portal renders whatever is stored
type Schedule struct {
	ID        int    `json:"id"`
	Day       string `json:"day"` // "Monday" .. "Sunday"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject"`
	Location  string `json:"location"`
	Color     string `json:"color"` // "primary" or "accent"
}

// Assignment represents class coursework with a submission tally
// The store does not enforce 0 <= Submitted <= Total; callers own that
type Assignment struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	DueDate      string         `json:"dueDate"`
	AssignedDate string         `json:"assignedDate"`
	Description  string         `json:"description"`
	Type         AssignmentType `json:"type"`
	Submitted    int            `json:"submitted"`
	Total        int            `json:"total"`
	Status       string         `json:"status"` // "upcoming", "completed", ...
}

// Transaction represents one bookkeeping entry. Amount is always
// non-negative; the sign is inferred from Type at aggregation time.
type Transaction struct {
	ID          int             `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"` // "dues", "supplies", "events", ...
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Status      string          `json:"status"` // "completed", "pending", ...
}

// ContactMessage represents a message sent through the contact form.
// CreatedAt is stamped by the server once at creation and never updated.
type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Urgent    bool      `json:"urgent"`
	CreatedAt time.Time `json:"createdAt"`
}

// User represents a portal account. Password is stored hashed.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// ============================================================
// Patch types for partial updates
// nil fields keep the existing value (merge semantics)
// ============================================================

// CoreMemberPatch holds optional overrides for a core member
type CoreMemberPatch struct {
	Name        *string `json:"name"`
	StudentID   *string `json:"studentId"`
	Role        *Role   `json:"role"`
	ImageURL    *string `json:"imageUrl"`
	Description *string `json:"description"`
}

// ClassMemberPatch holds optional overrides for a class member
type ClassMemberPatch struct {
	Name      *string `json:"name"`
	StudentID *string `json:"studentId"`
	ImageURL  *string `json:"imageUrl"`
}

// AnnouncementPatch holds optional overrides for an announcement
type AnnouncementPatch struct {
	Date     *string `json:"date"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	PostedBy *string `json:"postedBy"`
	Status   *string `json:"status"`
}

// SchedulePatch holds optional overrides for a schedule slot
type SchedulePatch struct {
	Day       *string `json:"day"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Subject   *string `json:"subject"`
	Location  *string `json:"location"`
	Color     *string `json:"color"`
}

// AssignmentPatch holds optional overrides for an assignment
type AssignmentPatch struct {
	Title        *string         `json:"title"`
	DueDate      *string         `json:"dueDate"`
	AssignedDate *string         `json:"assignedDate"`
	Description  *string         `json:"description"`
	Type         *AssignmentType `json:"type"`
	Submitted    *int            `json:"submitted"`
	Total        *int            `json:"total"`
	Status       *string         `json:"status"`
}

// TransactionPatch holds optional overrides for a transaction
type TransactionPatch struct {
	Date        *string          `json:"date"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Amount      *float64         `json:"amount"`
	Type        *TransactionType `json:"type"`
	Status      *string          `json:"status"`
}

// ValidRole reports whether r is one of the known committee roles
func ValidRole(r Role) bool {
	return r == RolePresident || r == RoleSecretary || r == RoleTreasurer
}

// ValidTransactionType reports whether t is income or expense
func ValidTransactionType(t TransactionType) bool {
	return t == TransactionIncome || t == TransactionExpense
}

// ValidAssignmentType reports whether t is individual or group
func ValidAssignmentType(t AssignmentType) bool {
	return t == AssignmentIndividual || t == AssignmentGroup
}

// ValidWeekday reports whether day is one of Monday..Sunday
func ValidWeekday(day string) bool {
	return WeekdayIndex(day) >= 0
}

// WeekdayIndex returns the position of day in the Monday-first week,
// or -1 if day is not a weekday name
func WeekdayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}
