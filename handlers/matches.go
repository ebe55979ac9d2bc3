package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/isaacwassouf/cricket-betting-service/models"
	"github.com/isaacwassouf/cricket-betting-service/modules"
)

type MatchHandler struct {
	svc *modules.BettingService
}

func NewMatchHandler(svc *modules.BettingService) *MatchHandler {
	return &MatchHandler{svc: svc}
}

func (h *MatchHandler) Create(c *gin.Context) {
	var in models.CricketMatch
	if !bindJSON(c, &in) {
		return
	}

	match, err := h.svc.Matches.Create(c.Request.Context(), in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *MatchHandler) List(c *gin.Context) {
	matches, err := h.svc.Matches.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

func (h *MatchHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	match, err := h.svc.Matches.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

// pathID parses the :id segment. Ids that are not integers cannot name a
// record, so they are answered with 404.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: %q is not a record id", models.ErrNotFound, c.Param("id")))
		return 0, false
	}
	return id, true
}
