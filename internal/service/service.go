package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tatiadventure/household-server/internal/models"
	"github.com/tatiadventure/household-server/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors. Only ErrDuplicateUsername and ErrInvalidCredentials are
// ever shown to a user; everything else resolves to a redirect back home.
var (
	ErrDuplicateUsername  = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrValidation         = errors.New("invalid input")
)

// Service defines all the business logic operations
type Service interface {
	// Authentication and sessions
	Register(ctx context.Context, form models.RegisterForm) (*models.SessionUser, error)
	Login(ctx context.Context, form models.LoginForm) (*models.SessionUser, error)
	IssueSessionToken(user *models.SessionUser) (string, error)
	ParseSessionToken(token string) (*models.SessionUser, error)

	// Home view: every entity list plus the expense report aggregates
	HomeView(ctx context.Context, now time.Time) (*models.HomeView, error)

	// Shopping list
	AddShoppingItem(ctx context.Context, userID int64, form models.ShoppingItemForm) error
	RemoveShoppingItem(ctx context.Context, id int64) error

	// Expense ledger
	AddExpense(ctx context.Context, userID int64, form models.ExpenseForm) error
	RemoveExpense(ctx context.Context, id int64) error

	// Activity planner
	AddActivity(ctx context.Context, userID int64, form models.ActivityForm) error
	RemoveActivity(ctx context.Context, id int64) error

	// Type tables
	AddActivityType(ctx context.Context, form models.ActivityTypeForm) error
	RemoveActivityType(ctx context.Context, id int64) error
	AddMaintenanceType(ctx context.Context, form models.MaintenanceTypeForm) error
	RemoveMaintenanceType(ctx context.Context, id int64) error
	AddExpenseType(ctx context.Context, form models.ExpenseTypeForm) error
	RemoveExpenseType(ctx context.Context, id int64) error

	// Bike maintenance log
	AddMaintenance(ctx context.Context, userID int64, form models.MaintenanceForm) error
	RemoveMaintenance(ctx context.Context, id int64) error

	// Useful numbers
	AddUsefulNumber(ctx context.Context, userID int64, form models.UsefulNumberForm) error
	RemoveUsefulNumber(ctx context.Context, id int64) error

	Healthy(ctx context.Context) error
}

// DefaultService implements the Service interface
type DefaultService struct {
	repo            repository.Repository
	sessionSecret   []byte
	sessionDuration time.Duration
}

// NewDefaultService creates a new DefaultService
func NewDefaultService(repo repository.Repository, sessionSecret string) Service {
	return &DefaultService{
		repo:            repo,
		sessionSecret:   []byte(sessionSecret),
		sessionDuration: 24 * time.Hour,
	}
}

// Authentication methods

func (s *DefaultService) Register(ctx context.Context, form models.RegisterForm) (*models.SessionUser, error) {
	firstName := strings.TrimSpace(form.FirstName)
	lastName := strings.TrimSpace(form.LastName)
	username := strings.TrimSpace(form.Username)
	if firstName == "" || lastName == "" || username == "" || form.Password == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}

	// Only the bcrypt hash is ever stored.
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &models.SessionUser{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *DefaultService) Login(ctx context.Context, form models.LoginForm) (*models.SessionUser, error) {
	user, err := s.repo.GetUserByUsername(ctx, strings.TrimSpace(form.Username))
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	// Unknown user and wrong password produce the same error.
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &models.SessionUser{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

// IssueSessionToken signs a session JWT carrying the authenticated identity.
func (s *DefaultService) IssueSessionToken(user *models.SessionUser) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        strconv.FormatInt(user.ID, 10),
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"exp":        now.Add(s.sessionDuration).Unix(),
		"iat":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.sessionSecret)
}

// ParseSessionToken verifies a session JWT and rebuilds the session identity.
// Any failure, expiry included, maps to ErrUnauthenticated.
func (s *DefaultService) ParseSessionToken(tokenString string) (*models.SessionUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.sessionSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthenticated
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	username, _ := claims["username"].(string)
	firstName, _ := claims["first_name"].(string)
	lastName, _ := claims["last_name"].(string)

	return &models.SessionUser{
		ID:        id,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// HomeView loads every entity list and recomputes the expense report
// aggregates. Nothing is cached; the data set is household-sized.
func (s *DefaultService) HomeView(ctx context.Context, now time.Time) (*models.HomeView, error) {
	items, err := s.repo.ListShoppingItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing shopping items: %w", err)
	}
	expenses, err := s.repo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing expenses: %w", err)
	}
	activities, err := s.repo.ListActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing activities: %w", err)
	}
	activityTypes, err := s.repo.ListActivityTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing activity types: %w", err)
	}
	maintenanceTypes, err := s.repo.ListMaintenanceTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing maintenance types: %w", err)
	}
	expenseTypes, err := s.repo.ListExpenseTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing expense types: %w", err)
	}
	maintenances, err := s.repo.ListMaintenances(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing maintenance records: %w", err)
	}
	numbers, err := s.repo.ListUsefulNumbers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing useful numbers: %w", err)
	}

	return &models.HomeView{
		Items:            items,
		Expenses:         expenses,
		Activities:       activities,
		ActivityTypes:    activityTypes,
		MaintenanceTypes: maintenanceTypes,
		ExpenseTypes:     expenseTypes,
		Maintenances:     maintenances,
		Numbers:          numbers,
		MonthlyTotals:    monthlyTotals(expenses),
		YearlyByCategory: yearlyByCategory(expenses, now.Year()),
		Today:            now.Format(dateLayout),
	}, nil
}

// Shopping list

func (s *DefaultService) AddShoppingItem(ctx context.Context, userID int64, form models.ShoppingItemForm) error {
	name := strings.TrimSpace(form.Item)
	if name == "" {
		return fmt.Errorf("%w: item name is required", ErrValidation)
	}

	quantity := 1
	if q := strings.TrimSpace(form.Quantity); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
		}
		quantity = n
	}

	return s.repo.AddShoppingItem(ctx, &models.ShoppingItem{
		UserID:   userID,
		Item:     name,
		Quantity: quantity,
		Notes:    strings.TrimSpace(form.Notes),
	})
}

func (s *DefaultService) RemoveShoppingItem(ctx context.Context, id int64) error {
	return s.repo.DeleteShoppingItem(ctx, id)
}

// Expense ledger

func (s *DefaultService) AddExpense(ctx context.Context, userID int64, form models.ExpenseForm) error {
	date, err := parseDate(form.Date)
	if err != nil {
		return err
	}
	description := strings.TrimSpace(form.Description)
	spender := strings.TrimSpace(form.Spender)
	if description == "" || spender == "" {
		return fmt.Errorf("%w: description and spender are required", ErrValidation)
	}
	cents, err := models.ParseAmountCents(form.Amount)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return s.repo.AddExpense(ctx, &models.Expense{
		UserID:      userID,
		Date:        date,
		Description: description,
		AmountCents: cents,
		Spender:     spender,
	})
}

func (s *DefaultService) RemoveExpense(ctx context.Context, id int64) error {
	return s.repo.DeleteExpense(ctx, id)
}

// Activity planner

func (s *DefaultService) AddActivity(ctx context.Context, userID int64, form models.ActivityForm) error {
	date, err := parseDate(form.Date)
	if err != nil {
		return err
	}
	activityTime, err := parseTimeOfDay(form.Time)
	if err != nil {
		return err
	}
	description := strings.TrimSpace(form.Description)
	location := strings.TrimSpace(form.Location)
	activityType := strings.TrimSpace(form.Type)
	if description == "" || location == "" || activityType == "" {
		return fmt.Errorf("%w: description, location and type are required", ErrValidation)
	}

	// The type is recorded by description, not id. No existence check: a
	// later rename or delete of the type leaves this activity as-is.
	return s.repo.AddActivity(ctx, &models.Activity{
		UserID:      userID,
		Date:        date,
		Time:        activityTime,
		Description: description,
		Location:    location,
		Type:        activityType,
	})
}

func (s *DefaultService) RemoveActivity(ctx context.Context, id int64) error {
	return s.repo.DeleteActivity(ctx, id)
}

// Type tables

func (s *DefaultService) AddActivityType(ctx context.Context, form models.ActivityTypeForm) error {
	description := strings.TrimSpace(form.Description)
	if description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	color := strings.TrimSpace(form.Color)
	if color == "" {
		color = "#000000"
	}

	return s.repo.AddActivityType(ctx, &models.ActivityType{
		Description: description,
		Color:       color,
	})
}

func (s *DefaultService) RemoveActivityType(ctx context.Context, id int64) error {
	return s.repo.DeleteActivityType(ctx, id)
}

func (s *DefaultService) AddMaintenanceType(ctx context.Context, form models.MaintenanceTypeForm) error {
	description := strings.TrimSpace(form.Description)
	if description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}

	return s.repo.AddMaintenanceType(ctx, &models.MaintenanceType{Description: description})
}

func (s *DefaultService) RemoveMaintenanceType(ctx context.Context, id int64) error {
	return s.repo.DeleteMaintenanceType(ctx, id)
}

func (s *DefaultService) AddExpenseType(ctx context.Context, form models.ExpenseTypeForm) error {
	description := strings.TrimSpace(form.Description)
	if description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}

	return s.repo.AddExpenseType(ctx, &models.ExpenseType{Description: description})
}

func (s *DefaultService) RemoveExpenseType(ctx context.Context, id int64) error {
	return s.repo.DeleteExpenseType(ctx, id)
}

// Bike maintenance log

func (s *DefaultService) AddMaintenance(ctx context.Context, userID int64, form models.MaintenanceForm) error {
	date, err := parseDate(form.Date)
	if err != nil {
		return err
	}
	description := strings.TrimSpace(form.Description)
	if description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}

	return s.repo.AddMaintenance(ctx, &models.MaintenanceRecord{
		UserID:      userID,
		Date:        date,
		Description: description,
	})
}

func (s *DefaultService) RemoveMaintenance(ctx context.Context, id int64) error {
	return s.repo.DeleteMaintenance(ctx, id)
}

// Useful numbers

func (s *DefaultService) AddUsefulNumber(ctx context.Context, userID int64, form models.UsefulNumberForm) error {
	description := strings.TrimSpace(form.Description)
	phoneNumber := strings.TrimSpace(form.PhoneNumber)
	if description == "" || phoneNumber == "" {
		return fmt.Errorf("%w: description and phone number are required", ErrValidation)
	}

	return s.repo.AddUsefulNumber(ctx, &models.UsefulNumber{
		UserID:      userID,
		Description: description,
		PhoneNumber: phoneNumber,
		Notes:       strings.TrimSpace(form.Notes),
	})
}

func (s *DefaultService) RemoveUsefulNumber(ctx context.Context, id int64) error {
	return s.repo.DeleteUsefulNumber(ctx, id)
}

func (s *DefaultService) Healthy(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Helpers

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func parseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	return s, nil
}

// parseTimeOfDay validates an HH:MM value; a blank value defaults to 00:00.
func parseTimeOfDay(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "00:00", nil
	}
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("%w: time must be HH:MM", ErrValidation)
	}
	return s, nil
}
