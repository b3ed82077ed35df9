package derived_test

import (
	"strings"
	"testing"

	"github.com/go-drift/universe/pkg/derived"
	"github.com/go-drift/universe/pkg/universe"
)

type todoMsg struct {
	add         string
	renameFirst string
	finish      int
}

type todoList struct {
	items []string
	done  int
}

func (l *todoList) HandleMessage(msg todoMsg) {
	if msg.add != "" {
		l.items = append(l.items, msg.add)
	}
	if msg.renameFirst != "" && len(l.items) > 0 {
		l.items[0] = msg.renameFirst
	}
	l.done += msg.finish
}

func newTodos() *universe.Universe[*todoList, todoMsg] {
	return universe.New[*todoList, todoMsg](&todoList{})
}

func TestFrom_SelectsInitialValue(t *testing.T) {
	u := universe.New[*todoList, todoMsg](&todoList{items: []string{"a", "b"}})

	open := derived.From(u, func(l *todoList) int { return len(l.items) })
	defer open.Dispose()

	if got := open.Get(); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}
}

func TestValue_UpdatesOnDispatch(t *testing.T) {
	u := newTodos()
	open := derived.From(u, func(l *todoList) int { return len(l.items) })
	defer open.Dispose()

	var seen []int
	open.AddListener(func(n int) { seen = append(seen, n) })

	u.Dispatch(todoMsg{add: "write tests"})
	u.Dispatch(todoMsg{add: "ship"})

	if got := open.Get(); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("listener saw %v, want [1 2]", seen)
	}
}

func TestValue_UnchangedSelectionDoesNotNotify(t *testing.T) {
	u := newTodos()
	itemCount := derived.From(u, func(l *todoList) int { return len(l.items) })
	defer itemCount.Dispose()

	calls := 0
	itemCount.AddListener(func(int) { calls++ })

	// Finishing an item changes state but not the selected value.
	u.Dispatch(todoMsg{finish: 1})
	if calls != 0 {
		t.Errorf("listener ran %d times for an unchanged selection, want 0", calls)
	}

	u.Dispatch(todoMsg{add: "new"})
	if calls != 1 {
		t.Errorf("listener ran %d times after a real change, want 1", calls)
	}
}

func TestWithEquality_CustomComparison(t *testing.T) {
	u := newTodos()

	// Compare case-insensitively so a pure case change is suppressed.
	first := derived.From(u,
		func(l *todoList) string {
			if len(l.items) == 0 {
				return ""
			}
			return l.items[0]
		},
		derived.WithEquality(strings.EqualFold),
	)
	defer first.Dispose()

	calls := 0
	first.AddListener(func(string) { calls++ })

	u.Dispatch(todoMsg{add: "Backlog"})
	if calls != 1 {
		t.Fatalf("listener ran %d times, want 1", calls)
	}

	// A pure case change is equal under EqualFold.
	u.Dispatch(todoMsg{renameFirst: "BACKLOG"})
	if calls != 1 {
		t.Errorf("listener ran %d times after case-only change, want 1", calls)
	}

	u.Dispatch(todoMsg{renameFirst: "Inbox"})
	if calls != 2 {
		t.Errorf("listener ran %d times after real rename, want 2", calls)
	}
}

func TestAddListener_CancelStopsDelivery(t *testing.T) {
	u := newTodos()
	open := derived.From(u, func(l *todoList) int { return len(l.items) })
	defer open.Dispose()

	calls := 0
	cancel := open.AddListener(func(int) { calls++ })

	u.Dispatch(todoMsg{add: "one"})
	cancel()
	u.Dispatch(todoMsg{add: "two"})

	if calls != 1 {
		t.Errorf("listener ran %d times, want 1", calls)
	}
	if got := open.ListenerCount(); got != 0 {
		t.Errorf("ListenerCount() = %d, want 0", got)
	}
}

func TestValue_ListenerOrder(t *testing.T) {
	u := newTodos()
	open := derived.From(u, func(l *todoList) int { return len(l.items) })
	defer open.Dispose()

	var order []string
	open.AddListener(func(int) { order = append(order, "first") })
	open.AddListener(func(int) { order = append(order, "second") })

	u.Dispatch(todoMsg{add: "x"})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
}

func TestDispose_DetachesFromUniverse(t *testing.T) {
	u := newTodos()
	open := derived.From(u, func(l *todoList) int { return len(l.items) })

	if got := u.SubscriberCount(); got != 1 {
		t.Fatalf("SubscriberCount() = %d, want 1", got)
	}

	open.Dispose()
	open.Dispose() // idempotent

	if got := u.SubscriberCount(); got != 0 {
		t.Errorf("SubscriberCount() after Dispose = %d, want 0", got)
	}

	u.Dispatch(todoMsg{add: "late"})
	if got := open.Get(); got != 0 {
		t.Errorf("Get() after Dispose = %d, want the last value 0", got)
	}
}
