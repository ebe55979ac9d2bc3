package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isaacwassouf/cricket-betting-service/consts"
	"github.com/isaacwassouf/cricket-betting-service/models"
	"github.com/isaacwassouf/cricket-betting-service/modules"
)

type AuthHandler struct {
	svc *modules.BettingService
}

func NewAuthHandler(svc *modules.BettingService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register returns the sign-up handler for principals of kind.
func (h *AuthHandler) Register(kind consts.PrincipalKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.Registration
		if !bindJSON(c, &in) {
			return
		}

		id, err := h.svc.Credentials.Register(c.Request.Context(), kind, in)
		if err != nil {
			abortWithError(c, err)
			return
		}

		if kind == consts.ADMIN {
			c.JSON(http.StatusOK, gin.H{"message": "Admin created successfully", "admin_id": id})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User created successfully", "user_id": id})
	}
}

// UserLogin authenticates a user and lists the fixtures open for betting.
func (h *AuthHandler) UserLogin(c *gin.Context) {
	if !h.login(c, consts.USER) {
		return
	}

	fixtures, err := h.svc.Matches.Fixtures(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": fixtures})
}

// AdminLogin authenticates an admin and returns the full match records.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	if !h.login(c, consts.ADMIN) {
		return
	}

	matches, err := h.svc.Matches.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

func (h *AuthHandler) login(c *gin.Context, kind consts.PrincipalKind) bool {
	var in loginBody
	if !bindJSON(c, &in) {
		return false
	}

	if _, err := h.svc.Credentials.Authenticate(c.Request.Context(), kind, in.Email, in.Password); err != nil {
		abortWithError(c, err)
		return false
	}
	return true
}
