package model

import (
	"time"

	"github.com/google/uuid"
	vm "github.com/siherrmann/validator/model"
)

type UserRole string

const (
	ROLE_ADMIN     UserRole = "admin"
	ROLE_MODERATOR UserRole = "moderator"
	ROLE_USER      UserRole = "user"
)

type UserStatus string

const (
	USER_STATUS_ACTIVE    UserStatus = "active"
	USER_STATUS_INACTIVE  UserStatus = "inactive"
	USER_STATUS_SUSPENDED UserStatus = "suspended"
)

var UserRoles = []KeyValuePair{
	{Key: string(ROLE_USER), Value: "User"},
	{Key: string(ROLE_MODERATOR), Value: "Moderator"},
	{Key: string(ROLE_ADMIN), Value: "Admin"},
}

var UserStatuses = []KeyValuePair{
	{Key: string(USER_STATUS_ACTIVE), Value: "Active"},
	{Key: string(USER_STATUS_INACTIVE), Value: "Inactive"},
	{Key: string(USER_STATUS_SUSPENDED), Value: "Suspended"},
}

// User represents a managed user account
type User struct {
	ID        int        `json:"id"`
	RID       uuid.UUID  `json:"rid"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      UserRole   `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// UserFormValidations are the form fields required to save a user.
func UserFormValidations() []vm.Validation {
	return []vm.Validation{
		{Key: "username", Type: vm.String, Requirement: "min1"},
		{Key: "email", Type: vm.String, Requirement: "min3"},
	}
}

func (u *User) EntityID() int {
	return u.ID
}

func (u *User) Kind() EntityType {
	return ENTITY_USER
}

func (u *User) Field(key string) any {
	return u.ToDataMap()[key]
}

func (u *User) Fields() map[string]any {
	return u.ToDataMap()
}

// ToDataMap returns the displayed fields keyed by their JSON names.
func (u *User) ToDataMap() DataMap {
	dataMap := DataMap{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"role":       string(u.Role),
		"status":     string(u.Status),
		"created_at": u.CreatedAt,
	}
	if u.LastLogin != nil {
		dataMap["last_login"] = *u.LastLogin
	}
	return dataMap
}

// UserFromDataMap reads the editable user fields of a form draft.
func UserFromDataMap(d DataMap) *User {
	return &User{
		Username: d.GetStringByKey("username"),
		Email:    d.GetStringByKey("email"),
		Role:     UserRole(d.GetStringByKey("role")),
		Status:   UserStatus(d.GetStringByKey("status")),
	}
}

func IsValidUserRole(role UserRole) bool {
	return role == ROLE_ADMIN || role == ROLE_MODERATOR || role == ROLE_USER
}

func IsValidUserStatus(status UserStatus) bool {
	return status == USER_STATUS_ACTIVE || status == USER_STATUS_INACTIVE || status == USER_STATUS_SUSPENDED
}
