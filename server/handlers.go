package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/lexit/core"
	"github.com/poiesic/lexit/storage"
)

type createStringRequest struct {
	Value string `json:"value"`
}

type stringsResponse struct {
	Data           []*core.StringRecord `json:"data"`
	Count          int                  `json:"count"`
	FiltersApplied core.FilterCriteria  `json:"filters_applied"`
}

type interpretedQuery struct {
	Original      string              `json:"original"`
	ParsedFilters core.FilterCriteria `json:"parsed_filters"`
}

type naturalLanguageResponse struct {
	Data             []*core.StringRecord `json:"data"`
	Count            int                  `json:"count"`
	InterpretedQuery interpretedQuery     `json:"interpreted_query"`
}

func (s *Server) root(c *gin.Context) {
	c.String(http.StatusOK, "Hello, World!")
}

func (s *Server) health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (s *Server) createString(c *gin.Context) {
	var req createStringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record, err := s.service.Create(c.Request.Context(), req.Value)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "string already exists"})
			return
		}
		s.logger.Error("failed to create string", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create string"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (s *Server) getString(c *gin.Context) {
	record, err := s.service.GetByValue(c.Request.Context(), c.Param("value"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "string not found"})
			return
		}
		s.logger.Error("failed to get string", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get string"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (s *Server) listStrings(c *gin.Context) {
	var criteria core.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters"})
		return
	}

	records, err := s.service.ListAll(c.Request.Context(), &criteria)
	if err != nil {
		if errors.Is(err, core.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("failed to list strings", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list strings"})
		return
	}

	c.JSON(http.StatusOK, stringsResponse{
		Data:           records,
		Count:          len(records),
		FiltersApplied: criteria,
	})
}

func (s *Server) listByPhrase(c *gin.Context) {
	phrase, ok := c.GetQuery("query")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter"})
		return
	}

	criteria, records, err := s.service.ListByPhrase(c.Request.Context(), phrase)
	if err != nil {
		s.logger.Error("failed to filter by phrase", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to filter strings"})
		return
	}

	c.JSON(http.StatusOK, naturalLanguageResponse{
		Data:  records,
		Count: len(records),
		InterpretedQuery: interpretedQuery{
			Original:      phrase,
			ParsedFilters: criteria,
		},
	})
}

func (s *Server) deleteString(c *gin.Context) {
	err := s.service.DeleteByValue(c.Request.Context(), c.Param("value"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "string not found"})
			return
		}
		s.logger.Error("failed to delete string", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete string"})
		return
	}

	c.Status(http.StatusNoContent)
}
