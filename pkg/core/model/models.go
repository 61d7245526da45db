package model

import "time"

// ShiftStatus is the authoritative shift state stored by the server.
// The client never invents a status; it only reflects what the server
// returned, combined with wall-clock time at render time.
type ShiftStatus string

const (
	StatusScheduled ShiftStatus = "SCHEDULED"
	StatusCheckedIn ShiftStatus = "CHECKED_IN"
	StatusCompleted ShiftStatus = "COMPLETED"
	StatusCanceled  ShiftStatus = "CANCELED"
)

func (s ShiftStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCheckedIn, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether no further lifecycle action is possible.
func (s ShiftStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// ShiftType classifies a shift for filtering and reporting.
type ShiftType string

const (
	TypeRegular      ShiftType = "Regular"
	TypeOvertime     ShiftType = "Overtime"
	TypeTraining     ShiftType = "Training"
	TypeSpecialEvent ShiftType = "Special Event"
	TypeOnCall       ShiftType = "On-Call"
)

func (t ShiftType) IsValid() bool {
	switch t {
	case TypeRegular, TypeOvertime, TypeTraining, TypeSpecialEvent, TypeOnCall:
		return true
	}
	return false
}

// Priority is the manager-assigned weight of a shift.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Role is a worker's job role within the restaurant.
type Role string

const (
	RoleWaiter   Role = "Waiter"
	RoleChef     Role = "Chef"
	RoleManager  Role = "Manager"
	RoleCashier  Role = "Cashier"
	RoleHost     Role = "Host"
	RoleDelivery Role = "Delivery"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleWaiter, RoleChef, RoleManager, RoleCashier, RoleHost, RoleDelivery:
		return true
	}
	return false
}

// WorkerRef is the denormalized worker snapshot embedded in a shift,
// exactly as the server returns it.
type WorkerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// RestaurantRef identifies the restaurant a shift belongs to.
type RestaurantRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// Shift is a single scheduled shift as returned by the server.
// ID is server-assigned and immutable.
type Shift struct {
	ID             int64         `json:"id"`
	StartTime      time.Time     `json:"startTime"`
	EndTime        time.Time     `json:"endTime"`
	Worker         WorkerRef     `json:"worker"`
	Restaurant     RestaurantRef `json:"restaurant"`
	Status         ShiftStatus   `json:"status"`
	ShiftType      ShiftType     `json:"shiftType,omitempty"`
	Priority       Priority      `json:"priority,omitempty"`
	Location       string        `json:"location,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	CheckedInTime  *time.Time    `json:"checkedInTime,omitempty"`
	CheckedOutTime *time.Time    `json:"checkedOutTime,omitempty"`
}

// Worker is a restaurant staff member. Active gates scheduling
// eligibility; deactivation is a soft delete.
type Worker struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Role   Role   `json:"role"`
	Active bool   `json:"active"`
}

// WorkerSession is the client-side login state for a worker. It is
// produced by a successful login and holds no password material.
type WorkerSession struct {
	WorkerID       int64  `json:"workerId" yaml:"workerID"`
	Name           string `json:"name" yaml:"name"`
	Role           Role   `json:"role" yaml:"role"`
	RestaurantID   int64  `json:"restaurantId" yaml:"restaurantID"`
	RestaurantName string `json:"restaurantName" yaml:"restaurantName"`
}
