package store

import (
	"database/sql"
	"fmt"

	"github.com/gatherhq/gather/internal/model"
)

// NotifyGroupMembers fans one notification out to every member of a group
// except the actor who caused it.
func (s *Store) NotifyGroupMembers(groupID int64, exclude, typ, actorName, groupName, body string) error {
	members, err := s.ListMembers(groupID)
	if err != nil {
		return err
	}
	for _, m := range members {
		if m.Name == exclude {
			continue
		}
		if _, err := s.db.Exec(`
			INSERT INTO notifications (user, type, group_id, actor_name, group_name, body)
			VALUES (?, ?, ?, ?, ?, ?)`,
			m.Name, typ, groupID, actorName, groupName, body); err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
	}
	return nil
}

// ListNotifications returns the latest 50 notifications for a user plus the
// unread count.
func (s *Store) ListNotifications(user string) ([]model.Notification, int, error) {
	rows, err := s.db.Query(`
		SELECT n.id, n.type, n.group_id, COALESCE(g.event_id, 0), n.actor_name, n.group_name, n.body, n.read, n.created_at
		FROM notifications n
		LEFT JOIN groups g ON n.group_id = g.id
		WHERE n.user = ?
		ORDER BY n.created_at DESC, n.id DESC
		LIMIT 50`, user)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []model.Notification{}
	for rows.Next() {
		var n model.Notification
		var read int
		var groupID sql.NullInt64
		if err := rows.Scan(&n.ID, &n.Type, &groupID, &n.EventID, &n.ActorName, &n.GroupName, &n.Body, &read, &n.CreatedAt); err != nil {
			return nil, 0, err
		}
		n.GroupID = groupID.Int64
		n.Read = read != 0
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var unread int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM notifications WHERE user = ? AND read = 0`, user).Scan(&unread); err != nil {
		return nil, 0, fmt.Errorf("failed to count unread: %w", err)
	}
	return notifications, unread, nil
}

// MarkRead marks one notification read, or all of the user's when id is 0.
func (s *Store) MarkRead(user string, id int64) error {
	var err error
	if id > 0 {
		_, err = s.db.Exec(`UPDATE notifications SET read = 1 WHERE id = ? AND user = ?`, id, user)
	} else {
		_, err = s.db.Exec(`UPDATE notifications SET read = 1 WHERE user = ? AND read = 0`, user)
	}
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
