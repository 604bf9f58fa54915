package timeline

// ZoomLevel selects the visual density of the rendered timeline.
type ZoomLevel string

const (
	ZoomCompact  ZoomLevel = "compact"
	ZoomNormal   ZoomLevel = "normal"
	ZoomDetailed ZoomLevel = "detailed"
	ZoomExpanded ZoomLevel = "expanded"
	ZoomByDays   ZoomLevel = "by-days"
)

// ZoomConfig controls density and item appearance for one zoom level.
type ZoomConfig struct {
	PixelsPerDay    float64 `json:"pixelsPerDay"`
	MinDurationDays float64 `json:"minDurationDays"`
	PaddingDays     float64 `json:"paddingDays"`
	MinWidthPx      float64 `json:"minWidthPx"`
	HeightPx        float64 `json:"heightPx"`
	RowHeightPx     float64 `json:"rowHeightPx"`
}

// minTimelineWidthPx keeps a sparse timeline from collapsing.
const minTimelineWidthPx = 1000

var zoomConfigs = map[ZoomLevel]ZoomConfig{
	ZoomCompact: {
		PixelsPerDay:    2,
		MinDurationDays: 5,
		PaddingDays:     10,
		MinWidthPx:      100,
		HeightPx:        56,
		RowHeightPx:     68,
	},
	ZoomNormal: {
		PixelsPerDay:    6,
		MinDurationDays: 15,
		PaddingDays:     8,
		MinWidthPx:      130,
		HeightPx:        56,
		RowHeightPx:     68,
	},
	ZoomDetailed: {
		PixelsPerDay:    16,
		MinDurationDays: 6,
		PaddingDays:     5,
		MinWidthPx:      160,
		HeightPx:        56,
		RowHeightPx:     68,
	},
	ZoomExpanded: {
		PixelsPerDay:    32,
		MinDurationDays: 4,
		PaddingDays:     3,
		MinWidthPx:      200,
		HeightPx:        56,
		RowHeightPx:     68,
	},
	ZoomByDays: {
		PixelsPerDay:    200,
		MinDurationDays: 1,
		PaddingDays:     0,
		MinWidthPx:      200,
		HeightPx:        56,
		RowHeightPx:     68,
	},
}

// ConfigFor resolves a zoom level, falling back to normal for anything
// it does not recognize.
func ConfigFor(level ZoomLevel) ZoomConfig {
	if conf, ok := zoomConfigs[level]; ok {
		return conf
	}
	return zoomConfigs[ZoomNormal]
}
