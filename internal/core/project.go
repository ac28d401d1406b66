package core

import (
	"math"
	"time"
)

type (
	// ProjectStatus is the lifecycle state of a project.
	ProjectStatus string

	// TaskStatus is the workflow state of a task.
	TaskStatus string

	// TaskPriority orders tasks by urgency.
	TaskPriority string
)

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskReview     TaskStatus = "review"
	TaskCompleted  TaskStatus = "completed"
)

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// Project is a client engagement with a budget and an assigned team.
// TeamMembers holds member IDs, not owned records: deleting a member leaves
// the reference dangling and lookups must tolerate that.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Client      string        `json:"client"`
	Status      ProjectStatus `json:"status"`
	StartDate   Date          `json:"startDate"`
	EndDate     Date          `json:"endDate"`
	Budget      Money         `json:"budget"`
	ActualCost  Money         `json:"actualCost"`
	TeamMembers []string      `json:"teamMembers"`
	Progress    int           `json:"progress"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Task belongs to a project and is assigned to one team member.
type Task struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	ProjectID      string       `json:"projectId"`
	AssignedTo     string       `json:"assignedTo"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	DueDate        Date         `json:"dueDate"`
	EstimatedHours float64      `json:"estimatedHours"`
	ActualHours    float64      `json:"actualHours"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// TimeEntry records hours worked on a task. Rate only matters when the
// entry is billable.
type TimeEntry struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"taskId"`
	ProjectID   string    `json:"projectId"`
	UserID      string    `json:"userId"`
	Date        Date      `json:"date"`
	Hours       float64   `json:"hours"`
	Description string    `json:"description"`
	Billable    bool      `json:"billable"`
	Rate        Money     `json:"rate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TeamMember is a person that projects and tasks reference by ID.
type TeamMember struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// ProjectSummary aggregates projects and time entries.
type ProjectSummary struct {
	TotalProjects      int     `json:"totalProjects"`
	ActiveProjects     int     `json:"activeProjects"`
	CompletedProjects  int     `json:"completedProjects"`
	TotalBudget        Money   `json:"totalBudget"`
	TotalActualCost    Money   `json:"totalActualCost"`
	TotalHours         float64 `json:"totalHours"`
	TotalBillableHours float64 `json:"totalBillableHours"`
	TotalRevenue       Money   `json:"totalRevenue"`
}

// TaskSummary aggregates the task collection.
type TaskSummary struct {
	TotalTasks          int     `json:"totalTasks"`
	CompletedTasks      int     `json:"completedTasks"`
	OverdueTasks        int     `json:"overdueTasks"`
	TotalEstimatedHours float64 `json:"totalEstimatedHours"`
	TotalActualHours    float64 `json:"totalActualHours"`
	CompletionRate      float64 `json:"completionRate"`
}

// Revenue is the billable value of the entry: hours times rate, rounded
// half-up to whole cents. Non-billable entries are worth nothing.
func (e TimeEntry) Revenue() Money {
	if !e.Billable {
		return Money{}
	}
	return Money{Cents: int64(math.Round(e.Hours * float64(e.Rate.Cents)))}
}

// Overdue reports whether the task's due date is strictly before today and
// the task is not completed.
func (t Task) Overdue(today Date) bool {
	if t.Status == TaskCompleted || t.DueDate.IsZero() {
		return false
	}
	return t.DueDate.Before(today.Time)
}
