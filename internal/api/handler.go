package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tatiadventure/household-server/internal/models"
	"github.com/tatiadventure/household-server/internal/service"
)

// Handler holds the HTTP handlers for the web UI
type Handler struct {
	svc service.Service
}

// NewHandler creates a new Handler
func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// SetupRoutes registers all routes on the router. Every mutating route sits
// behind the session middleware and redirects back to / when done, success
// and silent-skip alike.
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/", h.Home)
	router.POST("/login", h.Login)
	router.GET("/register", h.RegisterPage)
	router.POST("/register", h.Register)
	router.GET("/logout", h.Logout)
	router.GET("/healthz", h.Health)

	authed := router.Group("/", SessionMiddleware(h.svc))

	authed.POST("/add", h.AddItem)
	authed.GET("/remove_item/:id", h.RemoveItem)

	authed.POST("/add_expense", h.AddExpense)
	authed.GET("/remove_expense/:id", h.RemoveExpense)

	authed.POST("/add_activity", h.AddActivity)
	authed.GET("/remove_activity/:id", h.RemoveActivity)

	authed.POST("/add_activity_type", h.AddActivityType)
	authed.GET("/remove_activity_type/:id", h.RemoveActivityType)

	authed.POST("/add_maintenance_type", h.AddMaintenanceType)
	authed.GET("/remove_maintenance_type/:id", h.RemoveMaintenanceType)

	authed.POST("/add_expense_type", h.AddExpenseType)
	authed.GET("/remove_expense_type/:id", h.RemoveExpenseType)

	authed.POST("/add_maintenance", h.AddMaintenance)
	authed.GET("/remove_maintenance/:id", h.RemoveMaintenance)

	authed.POST("/add_number", h.AddNumber)
	authed.GET("/remove_number/:id", h.RemoveNumber)
}

// Home renders the full organizer for a logged-in user and the login form
// for everyone else.
func (h *Handler) Home(c *gin.Context) {
	sess := h.sessionFromCookie(c)
	if sess == nil {
		c.HTML(http.StatusOK, "login.html", gin.H{})
		return
	}

	view, err := h.svc.HomeView(c.Request.Context(), time.Now())
	if err != nil {
		slog.Error("failed to build home view", "error", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"User":    sess,
		"View":    view,
		"Section": c.Query("section"),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var form models.LoginForm
	_ = c.ShouldBind(&form)

	sess, err := h.svc.Login(c.Request.Context(), form)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			slog.Error("login failed", "error", err)
		}
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": "Invalid username or password"})
		return
	}

	if err := h.setSessionCookie(c, sess); err != nil {
		slog.Error("failed to issue session", "error", err)
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": "Something went wrong, try again"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) RegisterPage(c *gin.Context) {
	if h.sessionFromCookie(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "register.html", gin.H{})
}

func (h *Handler) Register(c *gin.Context) {
	var form models.RegisterForm
	_ = c.ShouldBind(&form)

	sess, err := h.svc.Register(c.Request.Context(), form)
	if err != nil {
		msg := "Something went wrong, try again"
		switch {
		case errors.Is(err, service.ErrDuplicateUsername):
			msg = "Username already in use"
		case errors.Is(err, service.ErrValidation):
			msg = "All fields are required"
		default:
			slog.Error("registration failed", "error", err)
		}
		c.HTML(http.StatusOK, "register.html", gin.H{"Error": msg})
		return
	}

	if err := h.setSessionCookie(c, sess); err != nil {
		slog.Error("failed to issue session", "error", err)
		c.HTML(http.StatusOK, "register.html", gin.H{"Error": "Something went wrong, try again"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session cookie. It is idempotent: logging out twice is
// as good as once.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Health(c *gin.Context) {
	if err := h.svc.Healthy(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Shopping list

func (h *Handler) AddItem(c *gin.Context) {
	var form models.ShoppingItemForm
	h.handleAdd(c, &form, func(ctx context.Context, userID int64) error {
		return h.svc.AddShoppingItem(ctx, userID, form)
	})
}

func (h *Handler) RemoveItem(c *gin.Context) {
	h.handleRemove(c, h.svc.RemoveShoppingItem)
}

// Expense ledger

func (h *Handler) AddExpense(c *gin.Context) {
	var form models.ExpenseForm
	h.handleAdd(c, &form, func(ctx context.Context, userID int64) error {
		return h.svc.AddExpense(ctx, userID, form)
	})
}

func (h *Handler) RemoveExpense(c *gin.Context) {
	h.handleRemove(c, h.svc.RemoveExpense)
}

// Activity planner

func (h *Handler) AddActivity(c *gin.Context) {
	var form models.ActivityForm
	h.handleAdd(c, &form, func(ctx context.Context, userID int64) error {
		return h.svc.AddActivity(ctx, userID, form)
	})
}

func (h *Handler) RemoveActivity(c *gin.Context) {
	h.handleRemove(c, h.svc.RemoveActivity)
}

// Type tables

func (h *Handler) AddActivityType(c *gin.Context) {
	var form models.ActivityTypeForm
	h.handleAdd(c, &form, func(ctx context.Context, _ int64) error {
		return h.svc.AddActivityType(ctx, form)
	})
}

func (h *Handler) RemoveActivityType(c *gin.Context) {
	h.handleRemove(c, h.svc.RemoveActivityType)
}

func (h *Handler) AddMaintenanceType(c *gin.Context) {
	var form models.MaintenanceTypeForm
	h.handleAdd(c, &form, func(ctx context.Context, _ int64) error {
		return h.svc.AddMaintenanceType(ctx, form)
	})
}

func (h *Handler) RemoveMaintenanceType(c *gin.Context) {
	h.handleRemove(c, h.svc.RemoveMaintenanceType)
}

func (h *Handler) AddExpenseType(c *gin.Context) {
	var form models.ExpenseTypeForm
	h.handleAdd(c, &form, func(ctx context.Context, _ int64) error {
		return h.svc.AddExpenseType(ctx, form)
	})
}

func (h *Handler) RemoveExpenseType(c *gin.Context) {
	h.handleRemove(c, h.svc.RemoveExpenseType)
}

// Bike maintenance log

func (h *Handler) AddMaintenance(c *gin.Context) {
	var form models.MaintenanceForm
	h.handleAdd(c, &form, func(ctx context.Context, userID int64) error {
		return h.svc.AddMaintenance(ctx, userID, form)
	})
}

func (h *Handler) RemoveMaintenance(c *gin.Context) {
	h.handleRemove(c, h.svc.RemoveMaintenance)
}

// Useful numbers

func (h *Handler) AddNumber(c *gin.Context) {
	var form models.UsefulNumberForm
	h.handleAdd(c, &form, func(ctx context.Context, userID int64) error {
		return h.svc.AddUsefulNumber(ctx, userID, form)
	})
}

func (h *Handler) RemoveNumber(c *gin.Context) {
	h.handleRemove(c, h.svc.RemoveUsefulNumber)
}

// Helpers

// handleAdd binds the form, runs the add on behalf of the session user and
// redirects home. Validation failures are logged but not surfaced; the user
// lands back on the main view either way.
func (h *Handler) handleAdd(c *gin.Context, form any, add func(ctx context.Context, userID int64) error) {
	sess := currentSession(c)
	if sess == nil {
		redirectHome(c)
		return
	}

	if err := c.ShouldBind(form); err == nil {
		if err := add(c.Request.Context(), sess.ID); err != nil {
			if errors.Is(err, service.ErrValidation) {
				slog.Warn("add rejected", "path", c.Request.URL.Path, "error", err)
			} else {
				slog.Error("add failed", "path", c.Request.URL.Path, "error", err)
			}
		}
	}

	c.Redirect(http.StatusFound, "/")
}

// handleRemove deletes by path id and redirects home. A malformed or unknown
// id changes nothing and is not an error.
func (h *Handler) handleRemove(c *gin.Context, remove func(ctx context.Context, id int64) error) {
	if id, err := strconv.ParseInt(c.Param("id"), 10, 64); err == nil {
		if err := remove(c.Request.Context(), id); err != nil {
			slog.Error("remove failed", "path", c.Request.URL.Path, "error", err)
		}
	}

	c.Redirect(http.StatusFound, "/")
}

// sessionFromCookie parses the session cookie without requiring it, for the
// routes that render differently for logged-in and anonymous visitors.
func (h *Handler) sessionFromCookie(c *gin.Context) *models.SessionUser {
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return nil
	}
	sess, err := h.svc.ParseSessionToken(token)
	if err != nil {
		return nil
	}
	return sess
}

func (h *Handler) setSessionCookie(c *gin.Context, user *models.SessionUser) error {
	token, err := h.svc.IssueSessionToken(user)
	if err != nil {
		return err
	}
	c.SetCookie(SessionCookie, token, int((24 * time.Hour).Seconds()), "/", "", false, true)
	return nil
}
