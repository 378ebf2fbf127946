package parameter

// Metrics panel, anchored to the top-right corner
const (
	PanelWidthDesktop  = 176.0
	PanelHeightDesktop = 72.0
	PanelWidthMobile   = 136.0
	PanelHeightMobile  = 60.0

	// PanelMargin is the distance from the surface edges
	PanelMargin = 16.0

	PanelCornerRadius = 8.0
	PanelPadding      = 12.0

	// PanelLineHeight separates the three text lines
	PanelLineHeightDesktop = 18.0
	PanelLineHeightMobile  = 15.0

	TextSizeDesktop = 12.0
	TextSizeMobile  = 10.0
)

// Legend, anchored to the bottom-right corner
const (
	LegendDotRadius = 4.0
	LegendRowHeight = 18.0
	LegendTextGap   = 10.0
)

// Labels
const (
	LegendDataLabel     = "Data"
	LegendGradientLabel = "Gradients"
)

// Node link dash pattern
var NodeLinkDash = []float64{4, 6}

// Debug overlay, anchored to the top-left corner
const (
	DebugLineHeight = 16.0
	DebugTextSize   = 12.0
	DebugPanelAlpha = 0.75
)

// PanelBackgroundAlpha keeps the network visible behind the panel
const PanelBackgroundAlpha = 0.85
