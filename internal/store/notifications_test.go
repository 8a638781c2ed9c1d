package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyGroupMembersExcludesActor(t *testing.T) {
	s := OpenTest(t)
	eventID := seedEvent(t, s)
	id, err := s.CreateGroup(eventID, "Crew", "", "ada", "a@example.com", "", 0, "", nil)
	require.NoError(t, err)
	require.NoError(t, s.AddMember(id, "grace", "", ""))
	require.NoError(t, s.AddMember(id, "linus", "", ""))

	require.NoError(t, s.NotifyGroupMembers(id, "grace", "member_joined", "grace", "Crew", ""))

	_, unread, err := s.ListNotifications("grace")
	require.NoError(t, err)
	assert.Equal(t, 0, unread)

	notifications, unread, err := s.ListNotifications("ada")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
	require.Len(t, notifications, 1)
	assert.Equal(t, "member_joined", notifications[0].Type)
	assert.Equal(t, "grace", notifications[0].ActorName)
	assert.Equal(t, eventID, notifications[0].EventID)
}

func TestMarkReadSingleAndAll(t *testing.T) {
	s := OpenTest(t)
	eventID := seedEvent(t, s)
	id, err := s.CreateGroup(eventID, "Crew", "", "ada", "a@example.com", "", 0, "", nil)
	require.NoError(t, err)
	require.NoError(t, s.AddMember(id, "grace", "", ""))

	require.NoError(t, s.NotifyGroupMembers(id, "", "message_posted", "ada", "Crew", "hello"))
	require.NoError(t, s.NotifyGroupMembers(id, "", "message_posted", "ada", "Crew", "again"))

	notifications, unread, err := s.ListNotifications("grace")
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	require.NoError(t, s.MarkRead("grace", notifications[0].ID))
	_, unread, err = s.ListNotifications("grace")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	require.NoError(t, s.MarkRead("grace", 0))
	_, unread, err = s.ListNotifications("grace")
	require.NoError(t, err)
	assert.Equal(t, 0, unread)
}
