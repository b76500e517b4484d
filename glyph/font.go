package glyph

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ErrFontUnavailable is returned when no face can be built for a FontSpec
var ErrFontUnavailable = errors.New("font unavailable")

// Weight selects the face weight
type Weight int

const (
	WeightRegular Weight = iota
	WeightBold
)

// FontSpec describes the face used to rasterize text
type FontSpec struct {
	// Family is a CSS-style comma separated family list, e.g. "Inter, sans-serif"
	Family string
	Weight Weight
}

// faceKind identifies one embedded font file
type faceKind int

const (
	faceSans faceKind = iota
	faceSansBold
	faceMono
	faceMonoBold
)

var embedded = map[faceKind][]byte{
	faceSans:     goregular.TTF,
	faceSansBold: gobold.TTF,
	faceMono:     gomono.TTF,
	faceMonoBold: gomonobold.TTF,
}

var (
	parsedMu sync.Mutex
	parsed   = make(map[faceKind]*opentype.Font)
)

// resolve maps the first recognized family to an embedded face
// Unknown families fall back to the sans face
func (s FontSpec) resolve() faceKind {
	mono := false
families:
	for _, fam := range strings.Split(s.Family, ",") {
		fam = strings.ToLower(strings.Trim(strings.TrimSpace(fam), `"'`))
		switch fam {
		case "monospace", "go mono", "mono", "ui-monospace":
			mono = true
			break families
		case "sans-serif", "sans", "go", "system-ui", "inter", "ui-sans-serif":
			break families
		}
	}

	switch {
	case mono && s.Weight == WeightBold:
		return faceMonoBold
	case mono:
		return faceMono
	case s.Weight == WeightBold:
		return faceSansBold
	default:
		return faceSans
	}
}

func loadFont(kind faceKind) (*opentype.Font, error) {
	parsedMu.Lock()
	defer parsedMu.Unlock()

	if f, ok := parsed[kind]; ok {
		return f, nil
	}
	data, ok := embedded[kind]
	if !ok {
		return nil, fmt.Errorf("%w: no embedded face %d", ErrFontUnavailable, kind)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontUnavailable, err)
	}
	parsed[kind] = f
	return f, nil
}

// NewFace builds a face for spec at size pixels (72 DPI so points equal pixels)
func NewFace(spec FontSpec, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %.2f", ErrFontUnavailable, size)
	}
	f, err := loadFont(spec.resolve())
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontUnavailable, err)
	}
	return face, nil
}
