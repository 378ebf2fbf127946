package render

// SystemRenderer draws one layer of the scene
type SystemRenderer interface {
	Render(ctx RenderContext, s Surface)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
