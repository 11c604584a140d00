package models

// User represents a registered household member. Users are never updated or
// deleted once created.
type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
}

// SessionUser is the identity carried by a signed session cookie.
type SessionUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ShoppingItem is one row of the shared shopping list. Item names are unique
// across the whole list; inserting an existing name is a silent no-op.
type ShoppingItem struct {
	ID       int64  `db:"id" json:"id"`
	UserID   int64  `db:"user_id" json:"-"`
	Item     string `db:"item" json:"item"`
	Quantity int    `db:"quantity" json:"quantity"`
	Notes    string `db:"notes" json:"notes"`
}

// Expense is a single ledger entry. Amounts are stored as integer cents so
// that report sums stay exact.
type Expense struct {
	ID          int64  `db:"id" json:"id"`
	UserID      int64  `db:"user_id" json:"-"`
	Date        string `db:"expense_date" json:"date"` // YYYY-MM-DD
	Description string `db:"description" json:"description"`
	AmountCents int64  `db:"amount_cents" json:"amountCents"`
	Spender     string `db:"spender" json:"spender"`
}

// Activity is a planned calendar entry. Type is the description string of an
// ActivityType, referenced by value: renaming or deleting the type leaves
// existing activities untouched.
type Activity struct {
	ID          int64  `db:"id" json:"id"`
	UserID      int64  `db:"user_id" json:"-"`
	Date        string `db:"activity_date" json:"date"` // YYYY-MM-DD
	Time        string `db:"activity_time" json:"time"` // HH:MM
	Description string `db:"description" json:"description"`
	Location    string `db:"location" json:"location"`
	Type        string `db:"activity_type" json:"type"`
}

// ActivityType is a user-defined activity category with a display color.
type ActivityType struct {
	ID          int64  `db:"id" json:"id"`
	Description string `db:"description" json:"description"`
	Color       string `db:"color" json:"color"` // hex, e.g. #ff9800
}

// MaintenanceType is a user-defined bike maintenance category.
type MaintenanceType struct {
	ID          int64  `db:"id" json:"id"`
	Description string `db:"description" json:"description"`
}

// ExpenseType is an expense category. Five defaults are seeded at first
// startup and never re-seeded.
type ExpenseType struct {
	ID          int64  `db:"id" json:"id"`
	Description string `db:"description" json:"description"`
}

// MaintenanceRecord is one bike maintenance log entry.
type MaintenanceRecord struct {
	ID          int64  `db:"id" json:"id"`
	UserID      int64  `db:"user_id" json:"-"`
	Date        string `db:"maintenance_date" json:"date"` // YYYY-MM-DD
	Description string `db:"description" json:"description"`
}

// UsefulNumber is a phone book entry.
type UsefulNumber struct {
	ID          int64  `db:"id" json:"id"`
	UserID      int64  `db:"user_id" json:"-"`
	Description string `db:"description" json:"description"`
	PhoneNumber string `db:"phone_number" json:"phoneNumber"`
	Notes       string `db:"notes" json:"notes"`
}

// MonthTotal is the summed expense amount for one YYYY-MM bucket.
type MonthTotal struct {
	Month string
	Cents int64
}

// CategoryTotal is the summed expense amount for one category description.
type CategoryTotal struct {
	Description string
	Cents       int64
}

// HomeView carries everything the home template renders: all entity lists
// plus the expense report aggregates, recomputed on every request.
type HomeView struct {
	Items            []ShoppingItem
	Expenses         []Expense
	Activities       []Activity
	ActivityTypes    []ActivityType
	MaintenanceTypes []MaintenanceType
	ExpenseTypes     []ExpenseType
	Maintenances     []MaintenanceRecord
	Numbers          []UsefulNumber
	MonthlyTotals    []MonthTotal
	YearlyByCategory []CategoryTotal
	Today            string // YYYY-MM-DD, seeds the calendar widget
}
