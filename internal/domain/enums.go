package domain

// Priority is the Eisenhower quadrant a task belongs to.
type Priority string

const (
	PriorityUrgentImportant       Priority = "urgent-important"
	PriorityNotUrgentImportant    Priority = "not-urgent-important"
	PriorityUrgentNotImportant    Priority = "urgent-not-important"
	PriorityNotUrgentNotImportant Priority = "not-urgent-not-important"
)

// AllPriorities returns the four quadrants in board order.
func AllPriorities() []Priority {
	return []Priority{
		PriorityUrgentImportant,
		PriorityNotUrgentImportant,
		PriorityUrgentNotImportant,
		PriorityNotUrgentNotImportant,
	}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgentImportant, PriorityNotUrgentImportant,
		PriorityUrgentNotImportant, PriorityNotUrgentNotImportant:
		return true
	}
	return false
}

// Label is the human-readable quadrant name.
func (p Priority) Label() string {
	switch p {
	case PriorityUrgentImportant:
		return "Urgent & Important"
	case PriorityNotUrgentImportant:
		return "Not Urgent & Important"
	case PriorityUrgentNotImportant:
		return "Urgent & Not Important"
	case PriorityNotUrgentNotImportant:
		return "Not Urgent & Not Important"
	default:
		return string(p)
	}
}

// ParsePriority converts a raw string into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", &InvalidDataError{Entity: "task", Field: "priority", Value: s}
	}
	return p, nil
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// AllStatuses returns the task statuses in workflow order.
func AllStatuses() []TaskStatus {
	return []TaskStatus{TaskTodo, TaskInProgress, TaskCompleted}
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

func (s TaskStatus) Label() string {
	switch s {
	case TaskTodo:
		return "To Do"
	case TaskInProgress:
		return "In Progress"
	case TaskCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// ParseTaskStatus converts a raw string into a TaskStatus.
func ParseTaskStatus(s string) (TaskStatus, error) {
	st := TaskStatus(s)
	if !st.Valid() {
		return "", &InvalidDataError{Entity: "task", Field: "status", Value: s}
	}
	return st, nil
}

// PurchaseMode distinguishes recurring subscriptions from one-time payments.
type PurchaseMode string

const (
	ModeSubscription PurchaseMode = "subscription"
	ModePayment      PurchaseMode = "payment"
)

func (m PurchaseMode) Valid() bool {
	return m == ModeSubscription || m == ModePayment
}

type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
)

func (r MemberRole) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

type SubscriptionStatus string

const (
	SubscriptionActive     SubscriptionStatus = "active"
	SubscriptionTrialing   SubscriptionStatus = "trialing"
	SubscriptionPastDue    SubscriptionStatus = "past_due"
	SubscriptionCanceled   SubscriptionStatus = "canceled"
	SubscriptionIncomplete SubscriptionStatus = "incomplete"
)

func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionActive, SubscriptionTrialing, SubscriptionPastDue,
		SubscriptionCanceled, SubscriptionIncomplete:
		return true
	}
	return false
}
