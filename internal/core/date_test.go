package core

import (
	"encoding/json"
	"testing"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, 1, 15)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-01-15"` {
		t.Fatalf("marshal = %s, want \"2024-01-15\"", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Fatalf("round trip = %v, want %v", back, d)
	}
}

func TestDateJSONZero(t *testing.T) {
	b, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("marshal zero = %s, want empty string", b)
	}

	var d Date
	if err := json.Unmarshal([]byte(`""`), &d); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("unmarshal empty should yield zero date, got %v", d)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("15/01/2024"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}

func TestTaskOverdue(t *testing.T) {
	today := NewDate(2024, 6, 15)
	cases := []struct {
		name string
		task Task
		want bool
	}{
		{"due yesterday, open", Task{DueDate: NewDate(2024, 6, 14), Status: TaskTodo}, true},
		{"due today", Task{DueDate: NewDate(2024, 6, 15), Status: TaskTodo}, false},
		{"due tomorrow", Task{DueDate: NewDate(2024, 6, 16), Status: TaskInProgress}, false},
		{"past due but completed", Task{DueDate: NewDate(2024, 1, 1), Status: TaskCompleted}, false},
		{"no due date", Task{Status: TaskTodo}, false},
	}
	for _, tc := range cases {
		if got := tc.task.Overdue(today); got != tc.want {
			t.Errorf("%s: Overdue = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestTimeEntryRevenue(t *testing.T) {
	e := TimeEntry{Hours: 4, Billable: true, Rate: Money{Cents: 7500}}
	if got := e.Revenue().Cents; got != 30000 {
		t.Fatalf("Revenue = %d cents, want 30000", got)
	}

	e = TimeEntry{Hours: 1.5, Billable: true, Rate: Money{Cents: 7500}}
	if got := e.Revenue().Cents; got != 11250 {
		t.Fatalf("fractional hours Revenue = %d cents, want 11250", got)
	}

	e = TimeEntry{Hours: 8, Billable: false, Rate: Money{Cents: 6000}}
	if got := e.Revenue().Cents; got != 0 {
		t.Fatalf("non-billable Revenue = %d cents, want 0", got)
	}
}
