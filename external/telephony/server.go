package telephony

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/config"
	"github.com/fixlifyapp/fixlyfy-ai-automate-sub009/internal/telephony"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Server terminates the telephony provider's HTTP surface: the inbound-call
// webhook and the media-stream WebSocket that every answered call opens.
type Server struct {
	listenAddr string
	publicHost string
	handler    telephony.StreamHandler
	engine     *gin.Engine
	upgrader   websocket.Upgrader
}

func NewServer(cfg *config.Config, handler telephony.StreamHandler) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		listenAddr: cfg.HTTPListenAddr,
		publicHost: cfg.PublicHost,
		handler:    handler,
		upgrader: websocket.Upgrader{
			// The provider connects server-to-server; there is no browser
			// origin to check.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	engine.POST("/twilio/voice", s.handleVoiceWebhook)
	engine.GET(mediaStreamPath, s.handleMediaStream)
	s.engine = engine
	return s
}

func (s *Server) Run() error {
	slog.Info("telephony server listening", "addr", s.listenAddr, "public_host", s.publicHost)
	return s.engine.Run(s.listenAddr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleVoiceWebhook(c *gin.Context) {
	callSID := c.PostForm("CallSid")
	slog.Info("inbound call webhook",
		"call_sid", callSID, "from", c.PostForm("From"), "to", c.PostForm("To"))

	body, err := RenderStreamTwiML(s.publicHost)
	if err != nil {
		slog.Error("failed to render stream twiml", "error", err, "call_sid", callSID)
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/xml", []byte(body))
}

func (s *Server) handleMediaStream(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("media stream upgrade failed", "error", err)
		return
	}
	s.handler.HandleStream(newWSConnection(conn))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-Id", requestID)

		c.Next()

		slog.Info("http request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
