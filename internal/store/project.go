package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"worktrack/internal/core"
)

// ProjectSlot is the durable slot holding all four project-domain
// collections. Team members are persisted along with the rest; partial
// persistence of this slot is a known source of inconsistency.
const ProjectSlot = "project-storage"

type projectSlotPayload struct {
	Projects    []core.Project    `json:"projects"`
	Tasks       []core.Task       `json:"tasks"`
	TimeEntries []core.TimeEntry  `json:"timeEntries"`
	TeamMembers []core.TeamMember `json:"teamMembers"`
}

// ProjectPatch is a partial update for a project. Nil fields are left
// untouched.
type ProjectPatch struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Client      *string             `json:"client"`
	Status      *core.ProjectStatus `json:"status"`
	StartDate   *core.Date          `json:"startDate"`
	EndDate     *core.Date          `json:"endDate"`
	Budget      *core.Money         `json:"budget"`
	ActualCost  *core.Money         `json:"actualCost"`
	TeamMembers *[]string           `json:"teamMembers"`
	Progress    *int                `json:"progress"`
}

// TaskPatch is a partial update for a task.
type TaskPatch struct {
	Title          *string            `json:"title"`
	Description    *string            `json:"description"`
	ProjectID      *string            `json:"projectId"`
	AssignedTo     *string            `json:"assignedTo"`
	Status         *core.TaskStatus   `json:"status"`
	Priority       *core.TaskPriority `json:"priority"`
	DueDate        *core.Date         `json:"dueDate"`
	EstimatedHours *float64           `json:"estimatedHours"`
	ActualHours    *float64           `json:"actualHours"`
}

// TimeEntryPatch is a partial update for a time entry.
type TimeEntryPatch struct {
	TaskID      *string    `json:"taskId"`
	ProjectID   *string    `json:"projectId"`
	UserID      *string    `json:"userId"`
	Date        *core.Date `json:"date"`
	Hours       *float64   `json:"hours"`
	Description *string    `json:"description"`
	Billable    *bool      `json:"billable"`
	Rate        *core.Money `json:"rate"`
}

// TeamMemberPatch is a partial update for a team member.
type TeamMemberPatch struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Avatar *string `json:"avatar"`
}

// ProjectStore owns the project, task, time-entry and team-member
// collections, each newest first.
type ProjectStore struct {
	mu          sync.Mutex
	projects    []core.Project
	tasks       []core.Task
	timeEntries []core.TimeEntry
	teamMembers []core.TeamMember
	hydrated    bool
	ready       chan struct{}
	slots       Persister
	now         func() time.Time

	// persistMu serializes slot writes so saves land in mutation order.
	persistMu sync.Mutex
}

// NewProjectStore creates a store pre-filled with the seed datasets and not
// yet hydrated. slots may be nil for a purely in-memory store.
func NewProjectStore(slots Persister) *ProjectStore {
	return &ProjectStore{
		projects:    seedProjects(),
		tasks:       seedTasks(),
		timeEntries: seedTimeEntries(),
		teamMembers: seedTeamMembers(),
		ready:       make(chan struct{}),
		slots:       slots,
		now:         time.Now,
	}
}

// Ready is closed once Hydrate has completed.
func (s *ProjectStore) Ready() <-chan struct{} {
	return s.ready
}

// Hydrate loads the project slot and opens the store for use. A missing or
// unreadable slot keeps the seed data. Calling Hydrate again is a no-op.
func (s *ProjectStore) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hydrated {
		return
	}
	s.hydrated = true
	defer close(s.ready)

	if s.slots == nil {
		return
	}
	data, ok, err := s.slots.Load(ctx, ProjectSlot)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load project slot, keeping seed data", "slot", ProjectSlot, "error", err)
		return
	}
	if !ok {
		slog.InfoContext(ctx, "Project slot empty, using seed data", "slot", ProjectSlot)
		return
	}
	var payload projectSlotPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		slog.WarnContext(ctx, "Corrupt project slot, keeping seed data", "slot", ProjectSlot, "error", err)
		return
	}
	s.projects = payload.Projects
	s.tasks = payload.Tasks
	s.timeEntries = payload.TimeEntries
	s.teamMembers = payload.TeamMembers
	slog.InfoContext(ctx, "Project store hydrated",
		"projects", len(s.projects),
		"tasks", len(s.tasks),
		"time_entries", len(s.timeEntries),
		"team_members", len(s.teamMembers))
}

// AddProject assigns an identifier and timestamps, then prepends.
func (s *ProjectStore) AddProject(ctx context.Context, p core.Project) (core.Project, error) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return core.Project{}, ErrNotHydrated
	}
	now := s.now().UTC()
	p.ID = core.NewID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.TeamMembers == nil {
		p.TeamMembers = []string{}
	}
	s.projects = append([]core.Project{p}, s.projects...)
	s.persist(ctx, s.snapshotLocked())
	return p, nil
}

// UpdateProject merges the patch into the matching project and refreshes
// UpdatedAt.
func (s *ProjectStore) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (core.Project, error) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return core.Project{}, ErrNotHydrated
	}
	idx := projectIndex(s.projects, id)
	if idx < 0 {
		s.mu.Unlock()
		return core.Project{}, ErrNotFound
	}
	p := &s.projects[idx]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Client != nil {
		p.Client = *patch.Client
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = *patch.EndDate
	}
	if patch.Budget != nil {
		p.Budget = *patch.Budget
	}
	if patch.ActualCost != nil {
		p.ActualCost = *patch.ActualCost
	}
	if patch.TeamMembers != nil {
		p.TeamMembers = append([]string(nil), (*patch.TeamMembers)...)
	}
	if patch.Progress != nil {
		p.Progress = *patch.Progress
	}
	p.UpdatedAt = s.now().UTC()
	updated := *p
	s.persist(ctx, s.snapshotLocked())
	return updated, nil
}

// DeleteProject removes the project together with its tasks and time
// entries.
func (s *ProjectStore) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return ErrNotHydrated
	}
	if projectIndex(s.projects, id) < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}

	projects := make([]core.Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.ID != id {
			projects = append(projects, p)
		}
	}
	tasks := make([]core.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ProjectID != id {
			tasks = append(tasks, t)
		}
	}
	entries := make([]core.TimeEntry, 0, len(s.timeEntries))
	for _, e := range s.timeEntries {
		if e.ProjectID != id {
			entries = append(entries, e)
		}
	}
	s.projects, s.tasks, s.timeEntries = projects, tasks, entries
	s.persist(ctx, s.snapshotLocked())
	return nil
}

// AddTask assigns an identifier and timestamps, then prepends.
func (s *ProjectStore) AddTask(ctx context.Context, t core.Task) (core.Task, error) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return core.Task{}, ErrNotHydrated
	}
	now := s.now().UTC()
	t.ID = core.NewID()
	t.CreatedAt = now
	t.UpdatedAt = now
	s.tasks = append([]core.Task{t}, s.tasks...)
	s.persist(ctx, s.snapshotLocked())
	return t, nil
}

// UpdateTask merges the patch into the matching task and refreshes
// UpdatedAt.
func (s *ProjectStore) UpdateTask(ctx context.Context, id string, patch TaskPatch) (core.Task, error) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return core.Task{}, ErrNotHydrated
	}
	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return core.Task{}, ErrNotFound
	}
	t := &s.tasks[idx]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.ProjectID != nil {
		t.ProjectID = *patch.ProjectID
	}
	if patch.AssignedTo != nil {
		t.AssignedTo = *patch.AssignedTo
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.EstimatedHours != nil {
		t.EstimatedHours = *patch.EstimatedHours
	}
	if patch.ActualHours != nil {
		t.ActualHours = *patch.ActualHours
	}
	t.UpdatedAt = s.now().UTC()
	updated := *t
	s.persist(ctx, s.snapshotLocked())
	return updated, nil
}

// DeleteTask removes the task together with its time entries.
func (s *ProjectStore) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return ErrNotHydrated
	}
	found := false
	tasks := make([]core.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID == id {
			found = true
			continue
		}
		tasks = append(tasks, t)
	}
	if !found {
		s.mu.Unlock()
		return ErrNotFound
	}
	entries := make([]core.TimeEntry, 0, len(s.timeEntries))
	for _, e := range s.timeEntries {
		if e.TaskID != id {
			entries = append(entries, e)
		}
	}
	s.tasks, s.timeEntries = tasks, entries
	s.persist(ctx, s.snapshotLocked())
	return nil
}

// AddTimeEntry assigns an identifier and CreatedAt, then prepends. The
// given taskId/projectId pair is stored as-is; consistency between the two
// is the caller's business.
func (s *ProjectStore) AddTimeEntry(ctx context.Context, e core.TimeEntry) (core.TimeEntry, error) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return core.TimeEntry{}, ErrNotHydrated
	}
	e.ID = core.NewID()
	e.CreatedAt = s.now().UTC()
	s.timeEntries = append([]core.TimeEntry{e}, s.timeEntries...)
	s.persist(ctx, s.snapshotLocked())
	return e, nil
}

// UpdateTimeEntry merges the patch into the matching entry. Time entries
// carry no UpdatedAt.
func (s *ProjectStore) UpdateTimeEntry(ctx context.Context, id string, patch TimeEntryPatch) (core.TimeEntry, error) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return core.TimeEntry{}, ErrNotHydrated
	}
	idx := -1
	for i := range s.timeEntries {
		if s.timeEntries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return core.TimeEntry{}, ErrNotFound
	}
	e := &s.timeEntries[idx]
	if patch.TaskID != nil {
		e.TaskID = *patch.TaskID
	}
	if patch.ProjectID != nil {
		e.ProjectID = *patch.ProjectID
	}
	if patch.UserID != nil {
		e.UserID = *patch.UserID
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Hours != nil {
		e.Hours = *patch.Hours
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Billable != nil {
		e.Billable = *patch.Billable
	}
	if patch.Rate != nil {
		e.Rate = *patch.Rate
	}
	updated := *e
	s.persist(ctx, s.snapshotLocked())
	return updated, nil
}

// DeleteTimeEntry removes the matching entry.
func (s *ProjectStore) DeleteTimeEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return ErrNotHydrated
	}
	found := false
	entries := make([]core.TimeEntry, 0, len(s.timeEntries))
	for _, e := range s.timeEntries {
		if e.ID == id {
			found = true
			continue
		}
		entries = append(entries, e)
	}
	if !found {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.timeEntries = entries
	s.persist(ctx, s.snapshotLocked())
	return nil
}

// AddTeamMember assigns an identifier, then prepends. Members carry no
// timestamps.
func (s *ProjectStore) AddTeamMember(ctx context.Context, m core.TeamMember) (core.TeamMember, error) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return core.TeamMember{}, ErrNotHydrated
	}
	m.ID = core.NewID()
	s.teamMembers = append([]core.TeamMember{m}, s.teamMembers...)
	s.persist(ctx, s.snapshotLocked())
	return m, nil
}

// UpdateTeamMember merges the patch into the matching member.
func (s *ProjectStore) UpdateTeamMember(ctx context.Context, id string, patch TeamMemberPatch) (core.TeamMember, error) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return core.TeamMember{}, ErrNotHydrated
	}
	idx := -1
	for i := range s.teamMembers {
		if s.teamMembers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return core.TeamMember{}, ErrNotFound
	}
	m := &s.teamMembers[idx]
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Email != nil {
		m.Email = *patch.Email
	}
	if patch.Role != nil {
		m.Role = *patch.Role
	}
	if patch.Avatar != nil {
		m.Avatar = *patch.Avatar
	}
	updated := *m
	s.persist(ctx, s.snapshotLocked())
	return updated, nil
}

// DeleteTeamMember removes the member. Projects and tasks referencing the
// member keep their dangling references; lookups must render them absent.
func (s *ProjectStore) DeleteTeamMember(ctx context.Context, id string) error {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return ErrNotHydrated
	}
	found := false
	members := make([]core.TeamMember, 0, len(s.teamMembers))
	for _, m := range s.teamMembers {
		if m.ID == id {
			found = true
			continue
		}
		members = append(members, m)
	}
	if !found {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.teamMembers = members
	s.persist(ctx, s.snapshotLocked())
	return nil
}

// ProjectSummary aggregates projects and time entries. Before hydration it
// returns the zero summary.
func (s *ProjectStore) ProjectSummary() core.ProjectSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary core.ProjectSummary
	if !s.hydrated {
		return summary
	}
	summary.TotalProjects = len(s.projects)
	for _, p := range s.projects {
		switch p.Status {
		case core.ProjectActive:
			summary.ActiveProjects++
		case core.ProjectCompleted:
			summary.CompletedProjects++
		}
		summary.TotalBudget.Cents += p.Budget.Cents
		summary.TotalActualCost.Cents += p.ActualCost.Cents
	}
	for _, e := range s.timeEntries {
		summary.TotalHours += e.Hours
		if e.Billable {
			summary.TotalBillableHours += e.Hours
			summary.TotalRevenue.Cents += e.Revenue().Cents
		}
	}
	return summary
}

// TaskSummary aggregates the task collection. CompletionRate is 0 for an
// empty collection.
func (s *ProjectStore) TaskSummary() core.TaskSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary core.TaskSummary
	if !s.hydrated {
		return summary
	}
	today := core.Today()
	summary.TotalTasks = len(s.tasks)
	for _, t := range s.tasks {
		if t.Status == core.TaskCompleted {
			summary.CompletedTasks++
		}
		if t.Overdue(today) {
			summary.OverdueTasks++
		}
		summary.TotalEstimatedHours += t.EstimatedHours
		summary.TotalActualHours += t.ActualHours
	}
	if summary.TotalTasks > 0 {
		summary.CompletionRate = float64(summary.CompletedTasks) / float64(summary.TotalTasks) * 100
	}
	return summary
}

// ProjectTasks returns the tasks belonging to the project, in stored order.
func (s *ProjectStore) ProjectTasks(projectID string) []core.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Task, 0)
	if !s.hydrated {
		return out
	}
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// TaskTimeEntries returns the time entries logged against the task.
func (s *ProjectStore) TaskTimeEntries(taskID string) []core.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.TimeEntry, 0)
	if !s.hydrated {
		return out
	}
	for _, e := range s.timeEntries {
		if e.TaskID == taskID {
			out = append(out, e)
		}
	}
	return out
}

// ProjectTimeEntries returns the time entries logged against the project.
func (s *ProjectStore) ProjectTimeEntries(projectID string) []core.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.TimeEntry, 0)
	if !s.hydrated {
		return out
	}
	for _, e := range s.timeEntries {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out
}

// FilteredProjects applies an exact status match and a case-insensitive
// client substring match. Empty filters pass everything.
func (s *ProjectStore) FilteredProjects(status, client string) []core.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Project, 0)
	if !s.hydrated {
		return out
	}
	q := strings.ToLower(client)
	for _, p := range s.projects {
		if status != "" && string(p.Status) != status {
			continue
		}
		if client != "" && !strings.Contains(strings.ToLower(p.Client), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilteredTasks ANDs exact matches on status, priority and assignee.
// Empty filters pass everything.
func (s *ProjectStore) FilteredTasks(status, priority, assignedTo string) []core.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Task, 0)
	if !s.hydrated {
		return out
	}
	for _, t := range s.tasks {
		if status != "" && string(t.Status) != status {
			continue
		}
		if priority != "" && string(t.Priority) != priority {
			continue
		}
		if assignedTo != "" && t.AssignedTo != assignedTo {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TeamMembers returns the member collection in stored order.
func (s *ProjectStore) TeamMembers() []core.TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.TeamMember, 0)
	if !s.hydrated {
		return out
	}
	return append(out, s.teamMembers...)
}

func projectIndex(projects []core.Project, id string) int {
	for i := range projects {
		if projects[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *ProjectStore) snapshotLocked() projectSlotPayload {
	return projectSlotPayload{
		Projects:    append([]core.Project(nil), s.projects...),
		Tasks:       append([]core.Task(nil), s.tasks...),
		TimeEntries: append([]core.TimeEntry(nil), s.timeEntries...),
		TeamMembers: append([]core.TeamMember(nil), s.teamMembers...),
	}
}

// persist writes the snapshot to the project slot. The caller must hold
// mu; persist acquires persistMu before releasing it, so a later
// mutation's save can never overtake an earlier one and leave the slot
// holding a stale snapshot. The write itself runs outside the state lock.
func (s *ProjectStore) persist(ctx context.Context, snapshot projectSlotPayload) {
	s.persistMu.Lock()
	s.mu.Unlock()
	defer s.persistMu.Unlock()
	persistSlot(ctx, s.slots, ProjectSlot, snapshot)
}
