package service

import "qrstudio/internal/domain/entity"

// LogoComposer renders short labels into circular overlays
type LogoComposer interface {
	RenderLabel(text string) *entity.LogoOverlay
}
