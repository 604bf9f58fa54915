package timeline

import "time"

// Label is one rendered axis tick.
type Label struct {
	Date time.Time `json:"date"`
	Text string    `json:"text"`
}

// Bar is one positioned timeline entry, ready to draw.
type Bar struct {
	Entry   Entry   `json:"entry"`
	Row     int     `json:"row"`
	XPx     float64 `json:"xPx"`
	WidthPx float64 `json:"widthPx"`
}

// View is the fully computed timeline for one zoom level.
type View struct {
	Range     *Range     `json:"range"`
	Zoom      ZoomLevel  `json:"zoom"`
	Config    ZoomConfig `json:"config"`
	WidthPx   float64    `json:"widthPx"`
	TotalRows int        `json:"totalRows"`
	Labels    []Label    `json:"labels"`
	Bars      []Bar      `json:"bars"`
}

// BuildView runs the full layout pipeline over normalized entries:
// range, packing, positions and labels.
func BuildView(entries []Entry, level ZoomLevel, now time.Time) (*View, error) {
	conf := ConfigFor(level)
	rng := ComputeRange(entries, now)

	assignment, err := AssignRows(entries, rng, level, now)
	if err != nil {
		return nil, err
	}

	view := &View{
		Range:     rng,
		Zoom:      level,
		Config:    conf,
		WidthPx:   TimelineWidth(rng, conf.PixelsPerDay),
		TotalRows: assignment.TotalRows,
	}

	for _, tick := range Labels(rng, level) {
		view.Labels = append(view.Labels, Label{Date: tick, Text: FormatLabel(tick, level)})
	}

	for _, e := range entries {
		view.Bars = append(view.Bars, Bar{
			Entry:   e,
			Row:     assignment.Rows[e.ID],
			XPx:     PositionPx(e.StartDate, rng, conf.PixelsPerDay),
			WidthPx: EntryWidthPx(e.StartDate, e.EndDate, rng, level, now),
		})
	}

	return view, nil
}
