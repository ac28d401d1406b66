package store

import (
	"time"

	"worktrack/internal/core"
)

// Built-in datasets used until hydration finds a slot to load. The short
// numeric IDs are kept because the seed collections reference each other
// by them; new records get UUIDs.

func seedExpenses() []core.Expense {
	return []core.Expense{
		{
			ID:          "1",
			Amount:      core.Money{Cents: 12550},
			Category:    "Travel",
			Description: "Taxi to client meeting",
			Date:        core.NewDate(2024, 1, 15),
			Employee:    "John Smith",
			Status:      core.StatusApproved,
		},
		{
			ID:          "2",
			Amount:      core.Money{Cents: 4500},
			Category:    "Meals & Entertainment",
			Description: "Team lunch",
			Date:        core.NewDate(2024, 1, 14),
			Employee:    "Sarah Johnson",
			Status:      core.StatusPending,
		},
		{
			ID:          "3",
			Amount:      core.Money{Cents: 8999},
			Category:    "Office Supplies",
			Description: "Printer paper and ink",
			Date:        core.NewDate(2024, 1, 13),
			Employee:    "Mike Davis",
			Status:      core.StatusRejected,
		},
	}
}

func seedTeamMembers() []core.TeamMember {
	return []core.TeamMember{
		{ID: "1", Name: "John Smith", Email: "john@company.com", Role: "Project Manager"},
		{ID: "2", Name: "Sarah Johnson", Email: "sarah@company.com", Role: "Developer"},
		{ID: "3", Name: "Mike Davis", Email: "mike@company.com", Role: "Designer"},
	}
}

func seedProjects() []core.Project {
	return []core.Project{
		{
			ID:          "1",
			Name:        "Website Redesign",
			Description: "Complete redesign of company website",
			Client:      "TechCorp Inc",
			Status:      core.ProjectActive,
			StartDate:   core.NewDate(2024, 1, 1),
			EndDate:     core.NewDate(2024, 3, 31),
			Budget:      core.Money{Cents: 2500000},
			ActualCost:  core.Money{Cents: 1800000},
			TeamMembers: []string{"1", "2", "3"},
			Progress:    65,
			CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Name:        "Mobile App Development",
			Description: "iOS and Android app for client",
			Client:      "StartupXYZ",
			Status:      core.ProjectPlanning,
			StartDate:   core.NewDate(2024, 2, 1),
			EndDate:     core.NewDate(2024, 6, 30),
			Budget:      core.Money{Cents: 5000000},
			ActualCost:  core.Money{},
			TeamMembers: []string{"1", "2"},
			Progress:    0,
			CreatedAt:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedTasks() []core.Task {
	return []core.Task{
		{
			ID:             "1",
			Title:          "Design Homepage",
			Description:    "Create new homepage design mockups",
			ProjectID:      "1",
			AssignedTo:     "3",
			Status:         core.TaskCompleted,
			Priority:       core.PriorityHigh,
			DueDate:        core.NewDate(2024, 1, 10),
			EstimatedHours: 16,
			ActualHours:    14,
			CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "2",
			Title:          "Implement Frontend",
			Description:    "Build homepage using React",
			ProjectID:      "1",
			AssignedTo:     "2",
			Status:         core.TaskInProgress,
			Priority:       core.PriorityHigh,
			DueDate:        core.NewDate(2024, 1, 25),
			EstimatedHours: 40,
			ActualHours:    25,
			CreatedAt:      time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:             "3",
			Title:          "Project Planning",
			Description:    "Create project timeline and requirements",
			ProjectID:      "2",
			AssignedTo:     "1",
			Status:         core.TaskTodo,
			Priority:       core.PriorityMedium,
			DueDate:        core.NewDate(2024, 1, 31),
			EstimatedHours: 8,
			ActualHours:    0,
			CreatedAt:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedTimeEntries() []core.TimeEntry {
	return []core.TimeEntry{
		{
			ID:          "1",
			TaskID:      "1",
			ProjectID:   "1",
			UserID:      "3",
			Date:        core.NewDate(2024, 1, 8),
			Hours:       4,
			Description: "Created initial design concepts",
			Billable:    true,
			Rate:        core.Money{Cents: 7500},
			CreatedAt:   time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			TaskID:      "1",
			ProjectID:   "1",
			UserID:      "3",
			Date:        core.NewDate(2024, 1, 9),
			Hours:       6,
			Description: "Refined designs based on feedback",
			Billable:    true,
			Rate:        core.Money{Cents: 7500},
			CreatedAt:   time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			TaskID:      "2",
			ProjectID:   "1",
			UserID:      "2",
			Date:        core.NewDate(2024, 1, 15),
			Hours:       8,
			Description: "Implemented homepage components",
			Billable:    true,
			Rate:        core.Money{Cents: 6000},
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}
