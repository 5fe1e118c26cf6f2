package models

// Margin is the space reserved around the plot area, in pixels.
type Margin struct {
	Top    int `json:"top" yaml:"top"`
	Right  int `json:"right" yaml:"right"`
	Bottom int `json:"bottom" yaml:"bottom"`
	Left   int `json:"left" yaml:"left"`
}

// Tick is one labelled mark on an axis.
type Tick struct {
	// Value is the tick position in data units.
	Value float64 `json:"value"`
	// Pos is the tick position in pixels along the axis.
	Pos float64 `json:"pos"`
	// Label is the formatted tick text.
	Label string `json:"label"`
}

// Axis describes a rendered axis line and its ticks.
type Axis struct {
	// Orient is "bottom" or "left".
	Orient string `json:"orient"`
	// Length is the axis length in pixels.
	Length float64 `json:"length"`
	// OffsetY translates a bottom axis to the foot of the plot area.
	OffsetY float64 `json:"offset_y"`
	// Ticks are the labelled marks.
	Ticks []Tick `json:"ticks"`
}

// Point holds the target attributes of one record's circle and label.
type Point struct {
	// ID is unique within a scene and stable across field switches.
	ID string `json:"id"`
	// CX and CY are the circle centre in plot coordinates.
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	// R is the circle radius.
	R float64 `json:"r"`
	// LabelX and LabelY position the state-code text.
	LabelX float64 `json:"label_x"`
	LabelY float64 `json:"label_y"`
	// Label is the two-letter state code.
	Label string `json:"label"`
	// Tooltip is the hover text.
	Tooltip string `json:"tooltip"`
}

// Caption is a clickable x axis title bound to a field.
type Caption struct {
	Field  Field   `json:"field"`
	Text   string  `json:"text"`
	Y      float64 `json:"y"`
	Active bool    `json:"active"`
}

// Class returns the caption's CSS class.
func (c Caption) Class() string {
	if c.Active {
		return "active"
	}
	return "inactive"
}

// Scene is the full set of target attributes for one chart paint.
type Scene struct {
	// Width and Height are the outer SVG dimensions.
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Margin Margin `json:"margin"`
	// PlotWidth and PlotHeight are the inner plot dimensions.
	PlotWidth  float64 `json:"plot_width"`
	PlotHeight float64 `json:"plot_height"`
	Field      Field   `json:"field"`
	XAxis      Axis    `json:"x_axis"`
	YAxis      Axis    `json:"y_axis"`
	Points     []Point `json:"points"`
	// Captions hold the two x axis captions in field order.
	Captions []Caption `json:"captions"`
	// YCaption is the rotated y axis title.
	YCaption string `json:"y_caption"`
}

// ActiveCaption returns the caption flagged active, if any.
func (s Scene) ActiveCaption() (Caption, bool) {
	for _, c := range s.Captions {
		if c.Active {
			return c, true
		}
	}
	return Caption{}, false
}

// Move is an old/new pixel pair for one animated attribute.
type Move struct {
	ID   string  `json:"id"`
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// TickMove animates one x axis tick between the old and new scales.
type TickMove struct {
	Tick Tick    `json:"tick"`
	From float64 `json:"from"`
	// Exit marks ticks of the old scale that fade out.
	Exit bool `json:"exit,omitempty"`
}

// Transition lists the animations of an update paint.
type Transition struct {
	// Duration is the animation length in seconds.
	Duration float64    `json:"duration"`
	Circles  []Move     `json:"circles"`
	Labels   []Move     `json:"labels"`
	Ticks    []TickMove `json:"ticks"`
}
