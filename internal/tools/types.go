package tools

import (
	"errors"

	"github.com/quantfold/fmp-mcp/internal/analytics"
	"github.com/quantfold/fmp-mcp/internal/fmp"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	FMPService       fmp.Service
	AnalyticsService analytics.Service
}

// Validate checks that every required service is wired before a handler uses
// the dependencies.
func (d *ToolDependencies) Validate() error {
	if d.AnalyticsService == nil {
		return errors.New("analytics service is not initialized")
	}
	if d.FMPService == nil {
		return errors.New("FMP service is not initialized")
	}
	return nil
}

// EmitToolEvent records one tool invocation.
func (d *ToolDependencies) EmitToolEvent(tool string) {
	d.AnalyticsService.EmitEvent(d.AnalyticsService.NewToolsEvent(tool))
}
