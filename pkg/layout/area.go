package layout

import (
	"fmt"
	"strings"
)

// Area selects a region of a container: where a laid-out block is anchored,
// or which corners of a widget's rectangle are rounded.
type Area int

// Areas. AreaNone and AreaAll both anchor a block at the center.
const (
	AreaNone Area = iota
	AreaAll
	AreaCenter
	AreaLeft
	AreaRight
	AreaTop
	AreaBottom
	AreaTopLeft
	AreaTopRight
	AreaBottomLeft
	AreaBottomRight
)

var areaNames = [...]string{
	AreaNone:        "none",
	AreaAll:         "all",
	AreaCenter:      "center",
	AreaLeft:        "left",
	AreaRight:       "right",
	AreaTop:         "top",
	AreaBottom:      "bottom",
	AreaTopLeft:     "top-left",
	AreaTopRight:    "top-right",
	AreaBottomLeft:  "bottom-left",
	AreaBottomRight: "bottom-right",
}

// String returns the lower-case name of the area.
func (a Area) String() string {
	if a < 0 || int(a) >= len(areaNames) {
		return fmt.Sprintf("Area(%d)", int(a))
	}
	return areaNames[a]
}

// ParseArea converts a name such as "top-left" into an Area.
// Matching ignores case, and underscores are accepted in place of dashes.
func ParseArea(s string) (Area, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if name == "" {
		return AreaNone, nil
	}
	for i, n := range areaNames {
		if n == name {
			return Area(i), nil
		}
	}
	return AreaNone, fmt.Errorf("unknown area %q", s)
}

// Areas returns the names of all areas in declaration order.
func Areas() []string {
	return append([]string(nil), areaNames[:]...)
}

// MarshalText implements encoding.TextMarshaler.
func (a Area) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Area) UnmarshalText(text []byte) error {
	v, err := ParseArea(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Area) touchesLeft() bool {
	return a == AreaLeft || a == AreaTopLeft || a == AreaBottomLeft
}

func (a Area) touchesRight() bool {
	return a == AreaRight || a == AreaTopRight || a == AreaBottomRight
}

func (a Area) touchesTop() bool {
	return a == AreaTop || a == AreaTopLeft || a == AreaTopRight
}

func (a Area) touchesBottom() bool {
	return a == AreaBottom || a == AreaBottomLeft || a == AreaBottomRight
}
