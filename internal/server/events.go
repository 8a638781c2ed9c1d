package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gatherhq/gather/internal/model"
	"github.com/gatherhq/gather/internal/search"
)

func (s *Server) ListEvents(c *gin.Context) {
	events, err := s.Store.ListEvents()
	if err != nil {
		log.Printf("Failed to list events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(events), "events": events})
}

func (s *Server) SearchEvents(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusOK, search.Response{
			Terms:   []string{},
			Results: []model.ScoredEvent{},
		})
		return
	}
	noLLM := s.NoLLM
	if v := c.Query("no_llm"); v != "" {
		noLLM = v == "true" || v == "1"
	}

	ext := s.Extractor.Extract(c.Request.Context(), q, noLLM)
	resp, err := search.Assemble(ext, s.Store)
	if err != nil {
		log.Printf("Failed to search events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search events"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetEvent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	ev, err := s.Store.GetEvent(id)
	if err != nil {
		log.Printf("Failed to load event %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load event"})
		return
	}
	if ev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (s *Server) EventCalendar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event id"})
		return
	}

	ev, err := s.Store.GetEvent(id)
	if err != nil {
		log.Printf("Failed to load event %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load event"})
		return
	}
	if ev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	ics := BuildICS(ev)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"event-%d.ics\"", ev.ID))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}
