package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gatherhq/gather/internal/search"
	"github.com/gatherhq/gather/internal/store"
)

type Server struct {
	Store     *store.Store
	Extractor *search.Extractor

	// NoLLM is the deployment default for skipping LLM expansion. A request's
	// no_llm query param overrides it.
	NoLLM bool
}

func NewServer(st *store.Store, extractor *search.Extractor, noLLM bool) *Server {
	return &Server{
		Store:     st,
		Extractor: extractor,
		NoLLM:     noLLM,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)

	api := r.Group("/api")
	{
		api.GET("/events", s.ListEvents)
		api.GET("/events/search", s.SearchEvents)
		api.GET("/events/:id", s.GetEvent)
		api.GET("/events/:id/calendar", s.EventCalendar)

		api.GET("/groups", s.ListGroups)
		api.POST("/groups", s.CreateGroup)
		api.GET("/groups/share/:code", s.GetGroupByShareCode)
		api.GET("/groups/:id", s.GetGroup)
		api.POST("/groups/:id/join", s.JoinGroup)
		api.POST("/groups/:id/leave", s.LeaveGroup)
		api.GET("/groups/:id/messages", s.ListMessages)
		api.POST("/groups/:id/messages", s.PostMessage)

		api.GET("/notifications", s.ListNotifications)
		api.POST("/notifications/read", s.MarkNotificationsRead)
	}

	return r
}

func (s *Server) Health(c *gin.Context) {
	n, err := s.Store.CountEvents()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "events": n})
}
