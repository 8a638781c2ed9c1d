package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gatherhq/gather/internal/model"
	"github.com/google/uuid"
)

// GroupRecord is a groups row before member attachment and contact-info
// redaction, which the HTTP layer handles per viewer.
type GroupRecord struct {
	ID            int64
	EventID       int64
	Name          string
	Description   string
	Creator       string
	CreatorEmail  string
	CreatorPhone  string
	Capacity      int
	MeetupDetails string
	VibeTags      []string
	ShareCode     string
	CreatedAt     string
}

type MemberRecord struct {
	Name     string
	Email    string
	Phone    string
	JoinedAt string
}

const groupColumns = `id, event_id, name, description, creator, creator_email, creator_phone,
	capacity, meetup_details, vibe_tags, share_code, created_at`

// CreateGroup inserts a group, adds the creator as its first member, and
// returns the new id. The share code is a fresh UUID used for invite links.
func (s *Store) CreateGroup(eventID int64, name, description, creator, email, phone string, capacity int, meetupDetails string, vibeTags []string) (int64, error) {
	tags, err := json.Marshal(vibeTags)
	if err != nil {
		return 0, fmt.Errorf("failed to encode vibe tags: %w", err)
	}

	res, err := s.db.Exec(`
		INSERT INTO groups (event_id, name, description, creator, creator_email, creator_phone, capacity, meetup_details, vibe_tags, share_code)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		eventID, name, description, creator, email, phone, capacity, meetupDetails, string(tags), uuid.New().String())
	if err != nil {
		return 0, fmt.Errorf("failed to create group: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := s.AddMember(id, creator, email, phone); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) GetGroup(id int64) (*GroupRecord, error) {
	row := s.db.QueryRow(`SELECT `+groupColumns+` FROM groups WHERE id = ?`, id)
	g, err := scanGroup(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// ListGroups returns all groups, newest first, optionally scoped to an event.
func (s *Store) ListGroups(eventID int64) ([]GroupRecord, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if eventID > 0 {
		rows, err = s.db.Query(`SELECT `+groupColumns+` FROM groups WHERE event_id = ? ORDER BY created_at DESC`, eventID)
	} else {
		rows, err = s.db.Query(`SELECT ` + groupColumns + ` FROM groups ORDER BY created_at DESC`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []GroupRecord
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, *g)
	}
	return groups, rows.Err()
}

func (s *Store) DeleteGroup(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM groups WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

// AddMember is idempotent: re-joining under the same name is a no-op thanks
// to the UNIQUE(group_id, member_name) constraint.
func (s *Store) AddMember(groupID int64, name, email, phone string) error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO group_members (group_id, member_name, email, phone) VALUES (?, ?, ?, ?)`,
		groupID, name, email, phone)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

func (s *Store) RemoveMember(groupID int64, name string) error {
	if _, err := s.db.Exec(`DELETE FROM group_members WHERE group_id = ? AND member_name = ?`, groupID, name); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (s *Store) ListMembers(groupID int64) ([]MemberRecord, error) {
	rows, err := s.db.Query(`SELECT member_name, email, phone, joined_at FROM group_members WHERE group_id = ? ORDER BY joined_at`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []MemberRecord
	for rows.Next() {
		var m MemberRecord
		if err := rows.Scan(&m.Name, &m.Email, &m.Phone, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (s *Store) IsMember(groupID int64, name string) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM group_members WHERE group_id = ? AND member_name = ?`, groupID, name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return n > 0, nil
}

func (s *Store) ListMessages(groupID int64) ([]model.Message, error) {
	rows, err := s.db.Query(`SELECT id, author, body, created_at FROM group_messages WHERE group_id = ? ORDER BY created_at ASC, id ASC`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []model.Message{}
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Author, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (s *Store) AddMessage(groupID int64, author, body string) error {
	if _, err := s.db.Exec(`INSERT INTO group_messages (group_id, author, body) VALUES (?, ?, ?)`, groupID, author, body); err != nil {
		return fmt.Errorf("failed to add message: %w", err)
	}
	return nil
}

func scanGroup(r rowScanner) (*GroupRecord, error) {
	var g GroupRecord
	var desc, email, phone, details, tags, share, created sql.NullString
	if err := r.Scan(&g.ID, &g.EventID, &g.Name, &desc, &g.Creator, &email, &phone,
		&g.Capacity, &details, &tags, &share, &created); err != nil {
		return nil, err
	}
	g.Description = desc.String
	g.CreatorEmail = email.String
	g.CreatorPhone = phone.String
	g.MeetupDetails = details.String
	g.VibeTags = parseTags(tags.String)
	g.ShareCode = share.String
	g.CreatedAt = created.String
	return &g, nil
}
