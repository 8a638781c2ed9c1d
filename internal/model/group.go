package model

// Group is a meetup group attached to an event. Contact fields are only
// populated when the viewer is the creator or a member.
type Group struct {
	ID            int64    `json:"id"`
	EventID       int64    `json:"eventId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Creator       string   `json:"creator"`
	CreatorEmail  string   `json:"creatorEmail"`
	CreatorPhone  string   `json:"creatorPhone"`
	Capacity      int      `json:"capacity"`
	MemberCount   int      `json:"memberCount"`
	IsFull        bool     `json:"isFull"`
	Status        string   `json:"status"`
	MeetupDetails string   `json:"meetupDetails"`
	VibeTags      []string `json:"vibeTags"`
	ShareCode     string   `json:"shareCode"`
	Members       []Member `json:"members"`
	CreatedAt     string   `json:"createdAt"`
}

type Member struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Message struct {
	ID        int64  `json:"id"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

// Notification is one fan-out row produced when group membership or the
// message board changes.
type Notification struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	GroupID   int64  `json:"groupId"`
	EventID   int64  `json:"eventId"`
	ActorName string `json:"actorName"`
	GroupName string `json:"groupName"`
	Body      string `json:"body"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}
