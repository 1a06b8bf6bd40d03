// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	WindowTitle  = "Hex Settlers"

	HoverStrokeWidth     = 3.0
	IndicatorRadiusRatio = 0.25 // доля от размера гекса
	PieceRadiusRatio     = 0.5
	LabelOffsetY         = 4
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	TileStrokeColor    = color.RGBA{40, 40, 50, 255}
	HoverColor         = color.RGBA{255, 0, 0, 255}
	IndicatorColor     = color.RGBA{80, 200, 255, 200}
	PieceColor         = color.RGBA{240, 240, 240, 255}
	SelectedPieceColor = color.RGBA{255, 140, 0, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	TextDarkColor      = color.RGBA{20, 20, 30, 255}
	PauseOverlayColor  = color.RGBA{0, 0, 0, 140}
	StrokeWidth        = 1.5
)
