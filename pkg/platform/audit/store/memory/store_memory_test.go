package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "doccheck/pkg/platform/audit"
)

func TestInMemoryStore_AppendOrder(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	actions := []audit.AuditEvent{audit.EventChecklistGenerated, audit.EventChecklistExplained, audit.EventChecklistFailed}
	for _, a := range actions {
		require.NoError(t, store.Append(ctx, audit.Event{SubjectID: "app-1", Action: string(a)}))
	}
	require.NoError(t, store.Append(ctx, audit.Event{SubjectID: "app-2", Action: string(audit.EventChecklistGenerated)}))

	events, err := store.ListBySubject(ctx, "app-1")
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, a := range actions {
		assert.Equal(t, string(a), events[i].Action)
	}

	none, err := store.ListBySubject(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInMemoryStore_EvictsOldestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(WithCapacity(3))

	for i, subject := range []string{"app-a", "app-b", "app-a", "app-c", "app-a"} {
		require.NoError(t, store.Append(ctx, audit.Event{SubjectID: subject, Reason: fmt.Sprintf("event-%d", i)}))
	}

	a, err := store.ListBySubject(ctx, "app-a")
	require.NoError(t, err)
	require.Len(t, a, 2)
	assert.Equal(t, "event-2", a[0].Reason)
	assert.Equal(t, "event-4", a[1].Reason)

	b, err := store.ListBySubject(ctx, "app-b")
	require.NoError(t, err)
	assert.Empty(t, b)

	c, err := store.ListBySubject(ctx, "app-c")
	require.NoError(t, err)
	assert.Len(t, c, 1)
}

func TestInMemoryStore_BoundedUnderUniqueSubjects(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(WithCapacity(10))

	for i := range 1000 {
		require.NoError(t, store.Append(ctx, audit.Event{SubjectID: fmt.Sprintf("app-%d", i)}))
	}

	assert.Len(t, store.bySubject, 10)
	assert.Equal(t, 10, store.size)

	evicted, err := store.ListBySubject(ctx, "app-989")
	require.NoError(t, err)
	assert.Empty(t, evicted)
	kept, err := store.ListBySubject(ctx, "app-999")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestInMemoryStore_ListIsACopy(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	require.NoError(t, store.Append(ctx, audit.Event{SubjectID: "app-1", Reason: "original"}))

	events, err := store.ListBySubject(ctx, "app-1")
	require.NoError(t, err)
	events[0].Reason = "mutated"

	again, err := store.ListBySubject(ctx, "app-1")
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Reason)
}
