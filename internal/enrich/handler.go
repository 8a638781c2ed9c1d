package enrich

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultTop = 50

// SetupRouter wires the HTTP surface of the enrichment service.
func (s *Service) SetupRouter() *gin.Engine {
	router := gin.Default()

	router.GET("/health", s.handleHealth)
	router.GET("/search", s.handleSearch)
	router.GET("/events", s.handleEvents)
	router.POST("/reload", s.handleReload)

	return router
}

func (s *Service) handleHealth(c *gin.Context) {
	pool := s.Events()
	status := http.StatusOK
	state := "ok"
	if len(pool) == 0 {
		status = http.StatusServiceUnavailable
		state = "loading"
	}
	c.JSON(status, gin.H{
		"status":      state,
		"events":      len(pool),
		"llm":         s.llm != nil,
		"last_loaded": s.LastLoaded(),
	})
}

func (s *Service) handleSearch(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}

	top := defaultTop
	if v := c.Query("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "top must be a positive integer"})
			return
		}
		top = n
	}
	noLLM := c.Query("no_llm") == "true" || c.Query("no_llm") == "1"

	resp := s.Search(c.Request.Context(), q, top, noLLM)
	if len(resp.Terms) == 0 && resp.DateRange == nil && resp.TimeRange == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query has no searchable terms"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Service) handleEvents(c *gin.Context) {
	pool := s.Events()
	c.JSON(http.StatusOK, gin.H{
		"count":  len(pool),
		"events": pool,
	})
}

func (s *Service) handleReload(c *gin.Context) {
	if err := s.Reload(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "reload already in progress"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "reloading"})
}
