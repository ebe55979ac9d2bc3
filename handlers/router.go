package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isaacwassouf/cricket-betting-service/consts"
	"github.com/isaacwassouf/cricket-betting-service/modules"
	"github.com/isaacwassouf/cricket-betting-service/utils"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's when it is a
// short id made of safe characters.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.RequestID(c.GetHeader(requestIDHeader))
		if err != nil {
			log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal", "detail": "internal error"})
			return
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDHeader)
}

// NewRouter wires every HTTP route onto the betting service.
func NewRouter(svc *modules.BettingService) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), gin.LoggerWithFormatter(logFormatter), gin.Recovery())

	r.GET("/healthz", NewHealthHandler(svc).Check)

	auth := NewAuthHandler(svc)
	users := r.Group("/users")
	{
		users.POST("/user_register/", auth.Register(consts.USER))
		users.POST("/user_login/", auth.UserLogin)
	}
	admins := r.Group("/admins")
	{
		admins.POST("/admin_register/", auth.Register(consts.ADMIN))
		admins.POST("/admin_login/", auth.AdminLogin)
	}

	mh := NewMatchHandler(svc)
	users.GET("/matches/:id", mh.Get)
	cricket := r.Group("/cricket")
	{
		cricket.POST("/cricket_event/", mh.Create)
		cricket.GET("/matches/", mh.List)
		cricket.GET("/matches/:id", mh.Get)
	}

	ph := NewPaymentHandler(svc)
	payments := r.Group("/payment/payments")
	{
		payments.POST("/", ph.Create)
		payments.GET("/", ph.List)
		payments.GET("/qr_code", ph.QRCode)
		payments.GET("/:id", ph.Get)
	}

	return r
}

func logFormatter(p gin.LogFormatterParams) string {
	id, _ := p.Keys[requestIDHeader].(string)
	return fmt.Sprintf("[GIN] %s | %s | %3d | %13v | %-7s %s\n",
		p.TimeStamp.Format("2006/01/02 - 15:04:05"),
		id,
		p.StatusCode,
		p.Latency,
		p.Method,
		p.Path,
	)
}
