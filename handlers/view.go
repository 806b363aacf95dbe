package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"church_admin/api"
	"church_admin/models"
	"church_admin/navigation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// RegisterValidators adds the phone and isodate tags to gin's validator.
// It must run before any request is bound.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(NormalizePhone(fl.Field().String()))
		})
		v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(time.DateOnly, fl.Field().String())
			return err == nil
		})
	})
}

// NormalizePhone drops the spaces, dashes and brackets people type.
func NormalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

// respond writes the view model, unless an API call made while building it
// navigated away.
func respond(c *gin.Context, status int, body any) {
	if to, ok := navigation.FromContext(c.Request.Context()).Redirected(); ok {
		c.Redirect(http.StatusSeeOther, to)
		return
	}
	c.JSON(status, body)
}

func seeOther(c *gin.Context, to string) {
	if redirected, ok := navigation.FromContext(c.Request.Context()).Redirected(); ok {
		to = redirected
	}
	c.Redirect(http.StatusSeeOther, to)
}

// failure reports a rejected operation with the message the store derived
// for it, keeping the API's client-error status.
func failure(c *gin.Context, err error, message string) {
	respond(c, statusFor(err), gin.H{"error": message})
}

func statusFor(err error) int {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

// bindError answers a form that failed validation with one message per field.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Please correct the highlighted fields", "fields": fields})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "phone":
		return "Enter a valid phone number"
	case "isodate":
		return "Use the YYYY-MM-DD format"
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "nefield":
		return "Must differ from the current password"
	}
	return "Invalid value"
}

// intQuery reads a positive integer query parameter.
func intQuery(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

type navItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// navigationFor lists the sidebar entries visible to role.
func navigationFor(role models.Role) []navItem {
	items := []navItem{
		{Label: "Dashboard", Path: navigation.DashboardPath},
		{Label: "Members", Path: "/members"},
		{Label: "Attendance", Path: "/attendance"},
	}
	if role == models.RoleSuperAdmin {
		items = append(items, navItem{Label: "Users", Path: "/users"})
	}
	return append(items, navItem{Label: "Profile", Path: "/profile"})
}
