package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcrtodo/tcrtodo/internal/domain"
)

func TestStore_Add(t *testing.T) {
	s := New()

	id, err := s.Add("write failing test")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	task, ok := s.Get(id)
	require.True(t, ok)
	assert.Equal(t, "write failing test", task.Description)
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Dirty())
}

func TestStore_Add_TrimsWhitespace(t *testing.T) {
	s := New()

	id, err := s.Add("  make it pass  ")
	require.NoError(t, err)

	task, _ := s.Get(id)
	assert.Equal(t, "make it pass", task.Description)
}

func TestStore_Add_EmptyDescription(t *testing.T) {
	s := New()

	for _, desc := range []string{"", "   ", "\t\n"} {
		_, err := s.Add(desc)
		assert.ErrorIs(t, err, domain.ErrEmptyDescription)
	}
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Dirty(), "rejected add must not dirty the store")
}

func TestStore_Add_PreservesInsertionOrder(t *testing.T) {
	s := New()
	descs := []string{"first", "second", "third"}
	for _, d := range descs {
		_, err := s.Add(d)
		require.NoError(t, err)
	}

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 3)
	for i, d := range descs {
		assert.Equal(t, d, snapshot[i].Description)
	}
}

func TestStore_IDsNeverReused(t *testing.T) {
	s := New()
	id1, _ := s.Add("first")
	id2, _ := s.Add("second")
	require.NoError(t, s.Remove(id2))

	id3, _ := s.Add("third")
	assert.Greater(t, id3, id2, "a deleted id must not be reassigned")
	assert.NotEqual(t, id1, id3)
}

func TestStore_ToggleStatus(t *testing.T) {
	s := New()
	id, _ := s.Add("cycle me")

	status, err := s.ToggleStatus(id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWorking, status)

	status, err = s.ToggleStatus(id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, status)

	status, err = s.ToggleStatus(id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, status)
}

func TestStore_ToggleStatus_NotFound(t *testing.T) {
	s := New()
	_, err := s.ToggleStatus(42)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestStore_UpdateStatus(t *testing.T) {
	s := New()
	id, _ := s.Add("task")

	require.NoError(t, s.UpdateStatus(id, domain.StatusDone))
	task, _ := s.Get(id)
	assert.Equal(t, domain.StatusDone, task.Status)

	assert.ErrorIs(t, s.UpdateStatus(id, domain.Status("bogus")), domain.ErrInvalidStatus)
	assert.ErrorIs(t, s.UpdateStatus(99, domain.StatusDone), domain.ErrTaskNotFound)
}

func TestStore_UpdateDescription(t *testing.T) {
	s := New()
	id, _ := s.Add("old text")

	require.NoError(t, s.UpdateDescription(id, "  new text  "))
	task, _ := s.Get(id)
	assert.Equal(t, "new text", task.Description)

	assert.ErrorIs(t, s.UpdateDescription(id, "   "), domain.ErrEmptyDescription)
	assert.ErrorIs(t, s.UpdateDescription(99, "text"), domain.ErrTaskNotFound)
}

func TestStore_Remove_PreservesOrder(t *testing.T) {
	s := New()
	id1, _ := s.Add("first")
	id2, _ := s.Add("second")
	id3, _ := s.Add("third")

	require.NoError(t, s.Remove(id2))

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, id1, snapshot[0].ID)
	assert.Equal(t, id3, snapshot[1].ID)

	assert.ErrorIs(t, s.Remove(id2), domain.ErrTaskNotFound)
}

func TestStore_Snapshot_IsACopy(t *testing.T) {
	s := New()
	_, err := s.Add("immutable")
	require.NoError(t, err)

	snapshot := s.Snapshot()
	snapshot[0].Description = "mutated"
	snapshot[0].Status = domain.StatusDone

	task, _ := s.TaskAt(0)
	assert.Equal(t, "immutable", task.Description)
	assert.Equal(t, domain.StatusPending, task.Status)
}

func TestStore_DirtyTracking(t *testing.T) {
	s := New()
	assert.False(t, s.Dirty())

	id, _ := s.Add("task")
	assert.True(t, s.Dirty())

	s.MarkClean()
	assert.False(t, s.Dirty())

	_, err := s.ToggleStatus(id)
	require.NoError(t, err)
	assert.True(t, s.Dirty())
}

func TestFromTasks_AssignsSequentialIDs(t *testing.T) {
	s := FromTasks([]domain.Task{
		{Description: "one", Status: domain.StatusPending},
		{Description: "two", Status: domain.StatusDone},
	})

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, 1, snapshot[0].ID)
	assert.Equal(t, 2, snapshot[1].ID)
	assert.False(t, s.Dirty(), "a freshly loaded store is clean")

	// The counter continues past the seeded tasks.
	id, err := s.Add("three")
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestFromTasks_NormalizesInvalidStatus(t *testing.T) {
	s := FromTasks([]domain.Task{{Description: "odd", Status: domain.Status("bogus")}})

	task, ok := s.TaskAt(0)
	require.True(t, ok)
	assert.Equal(t, domain.StatusPending, task.Status)
}

func TestStore_TaskAt_OutOfRange(t *testing.T) {
	s := New()
	_, ok := s.TaskAt(0)
	assert.False(t, ok)
	_, ok = s.TaskAt(-1)
	assert.False(t, ok)
}

func TestStore_VersionAdvancesOnMutation(t *testing.T) {
	s := New()
	v0 := s.Version()

	id, err := s.Add("task")
	require.NoError(t, err)
	v1 := s.Version()
	assert.Greater(t, v1, v0)

	// Reads leave the version alone.
	_ = s.Snapshot()
	_, _ = s.Get(id)
	_ = s.Dirty()
	assert.Equal(t, v1, s.Version())

	// Every mutating operation advances it.
	_, err = s.ToggleStatus(id)
	require.NoError(t, err)
	require.NoError(t, s.UpdateDescription(id, "renamed"))
	require.NoError(t, s.UpdateStatus(id, domain.StatusDone))
	require.NoError(t, s.Remove(id))
	assert.Equal(t, v1+4, s.Version())

	// MarkClean is bookkeeping, not a mutation.
	v := s.Version()
	s.MarkClean()
	assert.Equal(t, v, s.Version())
}

func TestStore_IndexOf(t *testing.T) {
	s := New()
	id, _ := s.Add("find me")

	assert.Equal(t, 0, s.IndexOf(id))
	assert.Equal(t, -1, s.IndexOf(999))
}
