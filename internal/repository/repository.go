package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/tatiadventure/household-server/internal/models"
)

// ErrDuplicate is returned when an insert hits a unique constraint that the
// caller needs to surface (currently only usernames).
var ErrDuplicate = errors.New("duplicate entry")

// Repository interface defines the methods that any repository implementation must satisfy
type Repository interface {
	// User operations
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// Shopping list operations
	AddShoppingItem(ctx context.Context, item *models.ShoppingItem) error
	ListShoppingItems(ctx context.Context) ([]models.ShoppingItem, error)
	DeleteShoppingItem(ctx context.Context, id int64) error

	// Expense ledger operations
	AddExpense(ctx context.Context, expense *models.Expense) error
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, id int64) error

	// Activity planner operations
	AddActivity(ctx context.Context, activity *models.Activity) error
	ListActivities(ctx context.Context) ([]models.Activity, error)
	DeleteActivity(ctx context.Context, id int64) error

	// Type table operations
	AddActivityType(ctx context.Context, t *models.ActivityType) error
	ListActivityTypes(ctx context.Context) ([]models.ActivityType, error)
	DeleteActivityType(ctx context.Context, id int64) error

	AddMaintenanceType(ctx context.Context, t *models.MaintenanceType) error
	ListMaintenanceTypes(ctx context.Context) ([]models.MaintenanceType, error)
	DeleteMaintenanceType(ctx context.Context, id int64) error

	AddExpenseType(ctx context.Context, t *models.ExpenseType) error
	ListExpenseTypes(ctx context.Context) ([]models.ExpenseType, error)
	DeleteExpenseType(ctx context.Context, id int64) error

	// Bike maintenance log operations
	AddMaintenance(ctx context.Context, rec *models.MaintenanceRecord) error
	ListMaintenances(ctx context.Context) ([]models.MaintenanceRecord, error)
	DeleteMaintenance(ctx context.Context, id int64) error

	// Useful numbers operations
	AddUsefulNumber(ctx context.Context, n *models.UsefulNumber) error
	ListUsefulNumbers(ctx context.Context) ([]models.UsefulNumber, error)
	DeleteUsefulNumber(ctx context.Context, id int64) error

	Ping(ctx context.Context) error
}

// SQLRepository implements the Repository interface over sqlx. Queries are
// written with ? placeholders and rebound for the active driver, so the same
// implementation serves both SQLite and PostgreSQL.
type SQLRepository struct {
	db *sqlx.DB
}

// NewSQLRepository creates a new SQL repository
func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{
		db: db,
	}
}

// GetDB returns the underlying database connection
func (r *SQLRepository) GetDB() *sqlx.DB {
	return r.db
}

func (r *SQLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// User repository methods

// CreateUser inserts the user and fills in the generated id. A username
// conflict resolves atomically at the storage layer and is reported as
// ErrDuplicate, never as a failed insert racing a prior existence check.
func (r *SQLRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := r.db.Rebind(`
		INSERT INTO users (username, password_hash, first_name, last_name)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (username) DO NOTHING
		RETURNING id
	`)

	err := r.db.QueryRowxContext(ctx, query,
		user.Username, user.PasswordHash, user.FirstName, user.LastName).Scan(&user.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrDuplicate
	}

	return err
}

func (r *SQLRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := r.db.Rebind(`SELECT * FROM users WHERE username = ?`)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, err
	}

	return &user, nil
}

// Shopping list repository methods

// AddShoppingItem inserts the item unless one with the same name already
// exists; the conflicting insert is a silent no-op.
func (r *SQLRepository) AddShoppingItem(ctx context.Context, item *models.ShoppingItem) error {
	query := r.db.Rebind(`
		INSERT INTO shopping_items (user_id, item, quantity, notes)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (item) DO NOTHING
	`)

	_, err := r.db.ExecContext(ctx, query, item.UserID, item.Item, item.Quantity, item.Notes)
	return err
}

func (r *SQLRepository) ListShoppingItems(ctx context.Context) ([]models.ShoppingItem, error) {
	var items []models.ShoppingItem
	err := r.db.SelectContext(ctx, &items, `SELECT * FROM shopping_items`)
	return items, err
}

func (r *SQLRepository) DeleteShoppingItem(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "shopping_items", id)
}

// Expense ledger repository methods

func (r *SQLRepository) AddExpense(ctx context.Context, expense *models.Expense) error {
	query := r.db.Rebind(`
		INSERT INTO expenses (user_id, expense_date, description, amount_cents, spender)
		VALUES (?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		expense.UserID, expense.Date, expense.Description, expense.AmountCents, expense.Spender)
	return err
}

func (r *SQLRepository) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.SelectContext(ctx, &expenses, `SELECT * FROM expenses`)
	return expenses, err
}

func (r *SQLRepository) DeleteExpense(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "expenses", id)
}

// Activity planner repository methods

func (r *SQLRepository) AddActivity(ctx context.Context, activity *models.Activity) error {
	query := r.db.Rebind(`
		INSERT INTO activities (user_id, activity_date, activity_time, description, location, activity_type)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		activity.UserID, activity.Date, activity.Time,
		activity.Description, activity.Location, activity.Type)
	return err
}

func (r *SQLRepository) ListActivities(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.SelectContext(ctx, &activities, `SELECT * FROM activities`)
	return activities, err
}

func (r *SQLRepository) DeleteActivity(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "activities", id)
}

// Type table repository methods. Duplicate descriptions are silent no-ops,
// enforced by the unique constraint rather than a check-then-insert.

func (r *SQLRepository) AddActivityType(ctx context.Context, t *models.ActivityType) error {
	query := r.db.Rebind(`
		INSERT INTO activity_types (description, color)
		VALUES (?, ?)
		ON CONFLICT (description) DO NOTHING
	`)

	_, err := r.db.ExecContext(ctx, query, t.Description, t.Color)
	return err
}

func (r *SQLRepository) ListActivityTypes(ctx context.Context) ([]models.ActivityType, error) {
	var types []models.ActivityType
	err := r.db.SelectContext(ctx, &types, `SELECT * FROM activity_types`)
	return types, err
}

func (r *SQLRepository) DeleteActivityType(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "activity_types", id)
}

func (r *SQLRepository) AddMaintenanceType(ctx context.Context, t *models.MaintenanceType) error {
	query := r.db.Rebind(`
		INSERT INTO maintenance_types (description)
		VALUES (?)
		ON CONFLICT (description) DO NOTHING
	`)

	_, err := r.db.ExecContext(ctx, query, t.Description)
	return err
}

func (r *SQLRepository) ListMaintenanceTypes(ctx context.Context) ([]models.MaintenanceType, error) {
	var types []models.MaintenanceType
	err := r.db.SelectContext(ctx, &types, `SELECT * FROM maintenance_types ORDER BY description ASC`)
	return types, err
}

func (r *SQLRepository) DeleteMaintenanceType(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "maintenance_types", id)
}

func (r *SQLRepository) AddExpenseType(ctx context.Context, t *models.ExpenseType) error {
	query := r.db.Rebind(`
		INSERT INTO expense_types (description)
		VALUES (?)
		ON CONFLICT (description) DO NOTHING
	`)

	_, err := r.db.ExecContext(ctx, query, t.Description)
	return err
}

func (r *SQLRepository) ListExpenseTypes(ctx context.Context) ([]models.ExpenseType, error) {
	var types []models.ExpenseType
	err := r.db.SelectContext(ctx, &types, `SELECT * FROM expense_types`)
	return types, err
}

func (r *SQLRepository) DeleteExpenseType(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "expense_types", id)
}

// Bike maintenance repository methods

func (r *SQLRepository) AddMaintenance(ctx context.Context, rec *models.MaintenanceRecord) error {
	query := r.db.Rebind(`
		INSERT INTO bike_maintenance (user_id, maintenance_date, description)
		VALUES (?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query, rec.UserID, rec.Date, rec.Description)
	return err
}

func (r *SQLRepository) ListMaintenances(ctx context.Context) ([]models.MaintenanceRecord, error) {
	var records []models.MaintenanceRecord
	err := r.db.SelectContext(ctx, &records, `SELECT * FROM bike_maintenance`)
	return records, err
}

func (r *SQLRepository) DeleteMaintenance(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "bike_maintenance", id)
}

// Useful numbers repository methods

func (r *SQLRepository) AddUsefulNumber(ctx context.Context, n *models.UsefulNumber) error {
	query := r.db.Rebind(`
		INSERT INTO useful_numbers (user_id, description, phone_number, notes)
		VALUES (?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query, n.UserID, n.Description, n.PhoneNumber, n.Notes)
	return err
}

func (r *SQLRepository) ListUsefulNumbers(ctx context.Context) ([]models.UsefulNumber, error) {
	var numbers []models.UsefulNumber
	err := r.db.SelectContext(ctx, &numbers, `SELECT * FROM useful_numbers ORDER BY description ASC`)
	return numbers, err
}

func (r *SQLRepository) DeleteUsefulNumber(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "useful_numbers", id)
}

// deleteByID removes a row by primary key. Deleting an id that does not
// exist is a no-op, not an error. The table name is always one of the fixed
// identifiers above, never user input.
func (r *SQLRepository) deleteByID(ctx context.Context, table string, id int64) error {
	query := r.db.Rebind(`DELETE FROM ` + table + ` WHERE id = ?`)
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
