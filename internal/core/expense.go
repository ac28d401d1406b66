package core

// ExpenseStatus is the approval state of an expense.
type ExpenseStatus string

const (
	StatusPending  ExpenseStatus = "pending"
	StatusApproved ExpenseStatus = "approved"
	StatusRejected ExpenseStatus = "rejected"
)

// ValidExpenseStatus reports whether s is one of the three known states.
func ValidExpenseStatus(s ExpenseStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ExpenseCategories is the fixed category set offered by the expense form.
var ExpenseCategories = []string{
	"Travel",
	"Meals & Entertainment",
	"Office Supplies",
	"Software & Subscriptions",
	"Marketing",
	"Training & Development",
	"Equipment",
	"Utilities",
	"Other",
}

// Expense is a single reimbursement request logged by an employee.
type Expense struct {
	ID          string        `json:"id"`
	Amount      Money         `json:"amount"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Date        Date          `json:"date"`
	Employee    string        `json:"employee"`
	Status      ExpenseStatus `json:"status"`
}

// ExpenseSummary aggregates amounts over the whole expense collection.
// Total always equals Pending+Approved+Rejected, and also the sum over
// ByCategory: both are partitions of the same records.
type ExpenseSummary struct {
	Total      Money            `json:"total"`
	Pending    Money            `json:"pending"`
	Approved   Money            `json:"approved"`
	Rejected   Money            `json:"rejected"`
	ByCategory map[string]Money `json:"byCategory"`
}
