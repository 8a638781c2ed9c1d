package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gatherhq/gather/internal/model"
	"github.com/gatherhq/gather/internal/store"
)

type CreateGroupRequest struct {
	EventID       int64    `json:"eventId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Creator       string   `json:"creator"`
	CreatorEmail  string   `json:"creatorEmail"`
	CreatorPhone  string   `json:"creatorPhone"`
	Capacity      int      `json:"capacity"`
	MeetupDetails string   `json:"meetupDetails"`
	VibeTags      []string `json:"vibeTags"`
}

func (s *Server) CreateGroup(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Creator = strings.TrimSpace(req.Creator)
	switch {
	case req.EventID <= 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "eventId is required"})
		return
	case req.Name == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	case req.Creator == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "creator is required"})
		return
	case strings.TrimSpace(req.CreatorEmail) == "" && strings.TrimSpace(req.CreatorPhone) == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "A contact method (email or phone) is required"})
		return
	case req.Capacity < 0:
		c.JSON(http.StatusBadRequest, gin.H{"error": "capacity must not be negative"})
		return
	}

	ev, err := s.Store.GetEvent(req.EventID)
	if err != nil {
		log.Printf("Failed to load event %d: %v", req.EventID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
		return
	}
	if ev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	id, err := s.Store.CreateGroup(req.EventID, req.Name, req.Description, req.Creator,
		req.CreatorEmail, req.CreatorPhone, req.Capacity, req.MeetupDetails, req.VibeTags)
	if err != nil {
		log.Printf("Failed to create group: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
		return
	}

	group, err := s.loadGroup(id, req.Creator)
	if err != nil {
		log.Printf("Failed to load created group %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
		return
	}
	c.JSON(http.StatusCreated, group)
}

func (s *Server) ListGroups(c *gin.Context) {
	var eventID int64
	if v := c.Query("eventId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid eventId"})
			return
		}
		eventID = id
	}
	viewer := c.Query("viewer")

	records, err := s.Store.ListGroups(eventID)
	if err != nil {
		log.Printf("Failed to list groups: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load groups"})
		return
	}

	groups := make([]model.Group, 0, len(records))
	for i := range records {
		g, err := s.assembleGroup(&records[i], viewer)
		if err != nil {
			log.Printf("Failed to assemble group %d: %v", records[i].ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load groups"})
			return
		}
		groups = append(groups, *g)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(groups), "groups": groups})
}

func (s *Server) GetGroup(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group id"})
		return
	}

	group, err := s.loadGroup(id, c.Query("viewer"))
	if err != nil {
		log.Printf("Failed to load group %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load group"})
		return
	}
	if group == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}
	c.JSON(http.StatusOK, group)
}

func (s *Server) GetGroupByShareCode(c *gin.Context) {
	code := c.Param("code")
	records, err := s.Store.ListGroups(0)
	if err != nil {
		log.Printf("Failed to resolve share code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load group"})
		return
	}
	for i := range records {
		if records[i].ShareCode == code {
			group, err := s.assembleGroup(&records[i], c.Query("viewer"))
			if err != nil {
				log.Printf("Failed to assemble group %d: %v", records[i].ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load group"})
				return
			}
			c.JSON(http.StatusOK, group)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
}

type MembershipRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (s *Server) JoinGroup(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group id"})
		return
	}

	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if strings.TrimSpace(req.Email) == "" && strings.TrimSpace(req.Phone) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A contact method (email or phone) is required"})
		return
	}

	record, err := s.Store.GetGroup(id)
	if err != nil {
		log.Printf("Failed to load group %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join group"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	already, err := s.Store.IsMember(id, req.Name)
	if err != nil {
		log.Printf("Failed to check membership: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join group"})
		return
	}
	if !already {
		members, err := s.Store.ListMembers(id)
		if err != nil {
			log.Printf("Failed to list members: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join group"})
			return
		}
		if record.Capacity > 0 && len(members) >= record.Capacity {
			c.JSON(http.StatusConflict, gin.H{"error": "Group is full"})
			return
		}
		if err := s.Store.AddMember(id, req.Name, req.Email, req.Phone); err != nil {
			log.Printf("Failed to add member: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join group"})
			return
		}
		s.notify(id, req.Name, "member_joined", record.Name,
			fmt.Sprintf("%s joined %s", req.Name, record.Name))
	}

	group, err := s.loadGroup(id, req.Name)
	if err != nil {
		log.Printf("Failed to load group %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join group"})
		return
	}
	c.JSON(http.StatusOK, group)
}

func (s *Server) LeaveGroup(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group id"})
		return
	}

	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)

	record, err := s.Store.GetGroup(id)
	if err != nil {
		log.Printf("Failed to load group %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave group"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	// A departing creator disbands the whole group.
	if req.Name == record.Creator {
		s.notify(id, req.Name, "group_disbanded", record.Name,
			fmt.Sprintf("%s was disbanded by its creator", record.Name))
		if err := s.Store.DeleteGroup(id); err != nil {
			log.Printf("Failed to delete group %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave group"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "disbanded"})
		return
	}

	if err := s.Store.RemoveMember(id, req.Name); err != nil {
		log.Printf("Failed to remove member: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave group"})
		return
	}
	s.notify(id, req.Name, "member_left", record.Name,
		fmt.Sprintf("%s left %s", req.Name, record.Name))
	c.JSON(http.StatusOK, gin.H{"status": "left"})
}

func (s *Server) ListMessages(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group id"})
		return
	}

	record, err := s.Store.GetGroup(id)
	if err != nil {
		log.Printf("Failed to load group %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	messages, err := s.Store.ListMessages(id)
	if err != nil {
		log.Printf("Failed to list messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(messages), "messages": messages})
}

type PostMessageRequest struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

func (s *Server) PostMessage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group id"})
		return
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	req.Author = strings.TrimSpace(req.Author)
	req.Body = strings.TrimSpace(req.Body)
	if req.Author == "" || req.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "author and body are required"})
		return
	}

	record, err := s.Store.GetGroup(id)
	if err != nil {
		log.Printf("Failed to load group %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post message"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	member, err := s.Store.IsMember(id, req.Author)
	if err != nil {
		log.Printf("Failed to check membership: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post message"})
		return
	}
	if !member {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only members can post messages"})
		return
	}

	if err := s.Store.AddMessage(id, req.Author, req.Body); err != nil {
		log.Printf("Failed to add message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post message"})
		return
	}
	s.notify(id, req.Author, "new_message", record.Name,
		fmt.Sprintf("%s posted in %s", req.Author, record.Name))

	messages, err := s.Store.ListMessages(id)
	if err != nil {
		log.Printf("Failed to list messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"count": len(messages), "messages": messages})
}

// notify fans a notification out to everyone in the group but the actor.
// Notification failures are logged, never surfaced to the caller.
func (s *Server) notify(groupID int64, actor, typ, groupName, body string) {
	if err := s.Store.NotifyGroupMembers(groupID, actor, typ, actor, groupName, body); err != nil {
		log.Printf("Failed to notify group %d: %v", groupID, err)
	}
}

// loadGroup fetches a group record plus members and applies contact-info
// redaction for the viewer. Returns nil when the group does not exist.
func (s *Server) loadGroup(id int64, viewer string) (*model.Group, error) {
	record, err := s.Store.GetGroup(id)
	if err != nil || record == nil {
		return nil, err
	}
	return s.assembleGroup(record, viewer)
}

func (s *Server) assembleGroup(record *store.GroupRecord, viewer string) (*model.Group, error) {
	members, err := s.Store.ListMembers(record.ID)
	if err != nil {
		return nil, err
	}

	isInsider := viewer != "" && viewer == record.Creator
	if !isInsider && viewer != "" {
		for _, m := range members {
			if m.Name == viewer {
				isInsider = true
				break
			}
		}
	}

	g := &model.Group{
		ID:            record.ID,
		EventID:       record.EventID,
		Name:          record.Name,
		Description:   record.Description,
		Creator:       record.Creator,
		Capacity:      record.Capacity,
		MemberCount:   len(members),
		MeetupDetails: record.MeetupDetails,
		VibeTags:      record.VibeTags,
		ShareCode:     record.ShareCode,
		CreatedAt:     record.CreatedAt,
	}
	g.IsFull = record.Capacity > 0 && len(members) >= record.Capacity
	if g.IsFull {
		g.Status = "full"
	} else {
		g.Status = "open"
	}

	g.Members = make([]model.Member, 0, len(members))
	for _, m := range members {
		member := model.Member{Name: m.Name}
		if isInsider {
			member.Email = m.Email
			member.Phone = m.Phone
		}
		g.Members = append(g.Members, member)
	}
	if isInsider {
		g.CreatorEmail = record.CreatorEmail
		g.CreatorPhone = record.CreatorPhone
	}
	return g, nil
}
