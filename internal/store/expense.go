package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"worktrack/internal/core"
)

// ExpenseSlot is the durable slot holding the expense collection.
const ExpenseSlot = "expense-storage"

// FilterAll is the sentinel that disables a category or status filter.
const FilterAll = "all"

// expenseSlotPayload is the persisted shape: only the expense collection
// crosses sessions.
type expenseSlotPayload struct {
	Expenses []core.Expense `json:"expenses"`
}

// ExpenseStore owns the expense collection, newest first.
type ExpenseStore struct {
	mu       sync.Mutex
	expenses []core.Expense
	hydrated bool
	ready    chan struct{}
	slots    Persister

	// persistMu serializes slot writes so saves land in mutation order.
	persistMu sync.Mutex
}

// NewExpenseStore creates a store pre-filled with the seed dataset and not
// yet hydrated. slots may be nil for a purely in-memory store.
func NewExpenseStore(slots Persister) *ExpenseStore {
	return &ExpenseStore{
		expenses: seedExpenses(),
		ready:    make(chan struct{}),
		slots:    slots,
	}
}

// Ready is closed once Hydrate has completed.
func (s *ExpenseStore) Ready() <-chan struct{} {
	return s.ready
}

// Hydrate loads the expense slot and opens the store for use. A missing or
// unreadable slot keeps the seed data; either way the store becomes ready
// exactly once. Calling Hydrate again is a no-op.
func (s *ExpenseStore) Hydrate(ctx context.Context) {
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
	data, ok, err := s.slots.Load(ctx, ExpenseSlot)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load expense slot, keeping seed data", "slot", ExpenseSlot, "error", err)
		return
	}
	if !ok {
		slog.InfoContext(ctx, "Expense slot empty, using seed data", "slot", ExpenseSlot)
		return
	}
	var payload expenseSlotPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		slog.WarnContext(ctx, "Corrupt expense slot, keeping seed data", "slot", ExpenseSlot, "error", err)
		return
	}
	s.expenses = payload.Expenses
	slog.InfoContext(ctx, "Expense store hydrated", "count", len(s.expenses))
}

// AddExpense assigns a fresh identifier and prepends the record. The
// declared status is kept as given; callers normally pass pending.
func (s *ExpenseStore) AddExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return core.Expense{}, ErrNotHydrated
	}
	e.ID = core.NewID()
	s.expenses = append([]core.Expense{e}, s.expenses...)
	s.persist(ctx, s.snapshotLocked())
	return e, nil
}

// UpdateExpenseStatus replaces the status of the matching record.
func (s *ExpenseStore) UpdateExpenseStatus(ctx context.Context, id string, status core.ExpenseStatus) (core.Expense, error) {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return core.Expense{}, ErrNotHydrated
	}
	idx := -1
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return core.Expense{}, ErrNotFound
	}
	s.expenses[idx].Status = status
	updated := s.expenses[idx]
	s.persist(ctx, s.snapshotLocked())
	return updated, nil
}

// DeleteExpense removes the matching record permanently.
func (s *ExpenseStore) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	if !s.hydrated {
		s.mu.Unlock()
		return ErrNotHydrated
	}
	kept := make([]core.Expense, 0, len(s.expenses))
	found := false
	for _, e := range s.expenses {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.expenses = kept
	s.persist(ctx, s.snapshotLocked())
	return nil
}

// Summary totals the collection overall, by status and by category. Before
// hydration it returns the zero summary.
func (s *ExpenseStore) Summary() core.ExpenseSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := core.ExpenseSummary{ByCategory: make(map[string]core.Money)}
	if !s.hydrated {
		return summary
	}
	for _, e := range s.expenses {
		summary.Total.Cents += e.Amount.Cents
		switch e.Status {
		case core.StatusPending:
			summary.Pending.Cents += e.Amount.Cents
		case core.StatusApproved:
			summary.Approved.Cents += e.Amount.Cents
		case core.StatusRejected:
			summary.Rejected.Cents += e.Amount.Cents
		}
		cat := summary.ByCategory[e.Category]
		cat.Cents += e.Amount.Cents
		summary.ByCategory[e.Category] = cat
	}
	return summary
}

// Filtered returns the expenses matching all three predicates, in stored
// order: search is a case-insensitive substring match against employee,
// description and category; category and status must match exactly unless
// they are the "all" sentinel (or empty).
func (s *ExpenseStore) Filtered(search, category, status string) []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Expense, 0)
	if !s.hydrated {
		return out
	}
	q := strings.ToLower(search)
	for _, e := range s.expenses {
		matchesSearch := strings.Contains(strings.ToLower(e.Employee), q) ||
			strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.Category), q)
		matchesCategory := category == "" || category == FilterAll || e.Category == category
		matchesStatus := status == "" || status == FilterAll || string(e.Status) == status
		if matchesSearch && matchesCategory && matchesStatus {
			out = append(out, e)
		}
	}
	return out
}

func (s *ExpenseStore) snapshotLocked() expenseSlotPayload {
	return expenseSlotPayload{Expenses: append([]core.Expense(nil), s.expenses...)}
}

// persist writes the snapshot to the expense slot. The caller must hold
// mu; persist acquires persistMu before releasing it, so a later
// mutation's save can never overtake an earlier one and leave the slot
// holding a stale snapshot. The write itself runs outside the state lock.
func (s *ExpenseStore) persist(ctx context.Context, snapshot expenseSlotPayload) {
	s.persistMu.Lock()
	s.mu.Unlock()
	defer s.persistMu.Unlock()
	persistSlot(ctx, s.slots, ExpenseSlot, snapshot)
}
