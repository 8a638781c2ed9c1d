package store

import (
	"testing"

	"github.com/gatherhq/gather/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvent(t *testing.T, s *Store) int64 {
	t.Helper()
	_, err := s.InsertEvents([]model.Event{{Name: "Jazz Night", Date: "2026-03-15"}})
	require.NoError(t, err)
	events, err := s.ListEvents()
	require.NoError(t, err)
	return events[0].ID
}

func TestCreateGroupAddsCreatorAsMember(t *testing.T) {
	s := OpenTest(t)
	eventID := seedEvent(t, s)

	id, err := s.CreateGroup(eventID, "Front row crew", "meet by the stage", "ada", "ada@example.com", "", 4, "black hoodie", []string{"chill"})
	require.NoError(t, err)

	g, err := s.GetGroup(id)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "Front row crew", g.Name)
	assert.Equal(t, []string{"chill"}, g.VibeTags)
	assert.NotEmpty(t, g.ShareCode)

	members, err := s.ListMembers(id)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "ada", members[0].Name)
}

func TestAddMemberIdempotent(t *testing.T) {
	s := OpenTest(t)
	eventID := seedEvent(t, s)
	id, err := s.CreateGroup(eventID, "Crew", "", "ada", "a@example.com", "", 0, "", nil)
	require.NoError(t, err)

	require.NoError(t, s.AddMember(id, "grace", "g@example.com", ""))
	require.NoError(t, s.AddMember(id, "grace", "g@example.com", ""))

	members, err := s.ListMembers(id)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestRemoveMember(t *testing.T) {
	s := OpenTest(t)
	eventID := seedEvent(t, s)
	id, err := s.CreateGroup(eventID, "Crew", "", "ada", "a@example.com", "", 0, "", nil)
	require.NoError(t, err)
	require.NoError(t, s.AddMember(id, "grace", "", "555-0100"))

	require.NoError(t, s.RemoveMember(id, "grace"))

	ok, err := s.IsMember(id, "grace")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.IsMember(id, "ada")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteGroupCascades(t *testing.T) {
	s := OpenTest(t)
	eventID := seedEvent(t, s)
	id, err := s.CreateGroup(eventID, "Crew", "", "ada", "a@example.com", "", 0, "", nil)
	require.NoError(t, err)
	require.NoError(t, s.AddMessage(id, "ada", "hello"))

	require.NoError(t, s.DeleteGroup(id))

	g, err := s.GetGroup(id)
	require.NoError(t, err)
	assert.Nil(t, g)

	members, err := s.ListMembers(id)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestListGroupsByEvent(t *testing.T) {
	s := OpenTest(t)
	eventID := seedEvent(t, s)
	_, err := s.InsertEvents([]model.Event{{Name: "Other", Date: "2026-03-16"}})
	require.NoError(t, err)
	events, err := s.ListEvents()
	require.NoError(t, err)
	otherID := events[1].ID

	_, err = s.CreateGroup(eventID, "A", "", "ada", "a@example.com", "", 0, "", nil)
	require.NoError(t, err)
	_, err = s.CreateGroup(otherID, "B", "", "bob", "b@example.com", "", 0, "", nil)
	require.NoError(t, err)

	groups, err := s.ListGroups(eventID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "A", groups[0].Name)

	all, err := s.ListGroups(0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMessages(t *testing.T) {
	s := OpenTest(t)
	eventID := seedEvent(t, s)
	id, err := s.CreateGroup(eventID, "Crew", "", "ada", "a@example.com", "", 0, "", nil)
	require.NoError(t, err)

	require.NoError(t, s.AddMessage(id, "ada", "first"))
	require.NoError(t, s.AddMessage(id, "grace", "second"))

	messages, err := s.ListMessages(id)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Body)
	assert.Equal(t, "second", messages[1].Body)
}
