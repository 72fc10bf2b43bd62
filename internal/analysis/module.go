package analysis

import (
	apphttp "airaware_backend/internal/http"
	"airaware_backend/platform/logger"
)

// Module wires the analysis pipeline into the HTTP layer.
type Module struct {
	handler *Handler
}

func NewModule(svc *Service, log *logger.Logger) *Module {
	return &Module{handler: NewHandler(svc, log)}
}

func (m *Module) Name() string { return "analysis" }

// RegisterRoutes mounts the analyze endpoint at the root and under the
// versioned API prefix.
func (m *Module) RegisterRoutes(rc *apphttp.RouterContext) {
	rc.Engine.POST("/analyze", m.handler.Analyze)
	rc.V1.POST("/analyze", m.handler.Analyze)
}
