package analysis

import (
	"net/http"

	"airaware_backend/platform/httpkit"
	"airaware_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
	log *logger.Logger
}

func NewHandler(svc *Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Analyze handles POST /analyze. Binding failures reject the request before
// any outbound call is made.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "location and a positive budget are required", nil)
		return
	}

	resp, err := h.svc.Analyze(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		h.log.HTTPError(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), err, c.ClientIP())
		return
	}

	resp.RequestID = httpkit.GetRequestID(c)
	httpkit.OK(c, resp)
}
