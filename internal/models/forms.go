package models

// Form models bound from the HTML views. Numeric and date fields arrive as
// strings and are validated in the service layer so that a malformed field
// becomes a silent redirect rather than a binding failure.

type RegisterForm struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Username  string `form:"username"`
	Password  string `form:"password"`
}

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type ShoppingItemForm struct {
	Item     string `form:"item"`
	Quantity string `form:"quantity"` // integer >= 1, defaults to 1 when blank
	Notes    string `form:"notes"`
}

type ExpenseForm struct {
	Date        string `form:"date"`
	Description string `form:"description"`
	Amount      string `form:"amount"` // non-negative decimal
	Spender     string `form:"spender"`
}

type ActivityForm struct {
	Date        string `form:"activity_date"`
	Time        string `form:"activity_time"` // defaults to 00:00 when blank
	Description string `form:"description"`
	Location    string `form:"location"`
	Type        string `form:"activity_type"`
}

type ActivityTypeForm struct {
	Description string `form:"description"`
	Color       string `form:"color"` // defaults to #000000 when blank
}

type MaintenanceTypeForm struct {
	Description string `form:"description"`
}

type ExpenseTypeForm struct {
	Description string `form:"description"`
}

type MaintenanceForm struct {
	Date        string `form:"maintenance_date"`
	Description string `form:"description"`
}

type UsefulNumberForm struct {
	Description string `form:"description"`
	PhoneNumber string `form:"phone_number"`
	Notes       string `form:"notes"`
}
