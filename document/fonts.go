package document

import (
	"strings"

	"go.uber.org/zap"

	"rcss/css"
	"rcss/style"
)

// FontEngine resolves font faces for the computed font properties.
type FontEngine interface {
	FontFaceHandle(family string, fs style.FontStyle, weight style.FontWeight, size int) style.FontFaceHandle
}

type faceKey struct {
	family string
	style  style.FontStyle
	weight style.FontWeight
	size   int
}

// MemoryFontEngine hands out stable handles per family, style, weight and
// size without loading any font data.
type MemoryFontEngine struct {
	handles  map[faceKey]style.FontFaceHandle
	faces    map[string][]css.FontFace
	log      *zap.Logger
	requests int
}

func NewMemoryFontEngine(log *zap.Logger) *MemoryFontEngine {
	if log == nil {
		log = zap.NewNop()
	}
	return &MemoryFontEngine{
		handles: make(map[faceKey]style.FontFaceHandle),
		faces:   make(map[string][]css.FontFace),
		log:     log.Named("fonts"),
	}
}

// Register records an @font-face declaration.
func (f *MemoryFontEngine) Register(face css.FontFace) {
	family := strings.ToLower(face.Family)
	f.faces[family] = append(f.faces[family], face)
	f.log.Debug("Font face registered", zap.String("family", face.Family), zap.String("src", face.Src))
}

// Known reports whether a face was registered for family.
func (f *MemoryFontEngine) Known(family string) bool {
	_, ok := f.faces[strings.ToLower(family)]
	return ok
}

func (f *MemoryFontEngine) FontFaceHandle(family string, fs style.FontStyle, weight style.FontWeight, size int) style.FontFaceHandle {
	f.requests++
	if family == "" {
		return 0
	}
	key := faceKey{family: strings.ToLower(family), style: fs, weight: weight, size: size}
	if h, ok := f.handles[key]; ok {
		return h
	}
	if len(f.faces) > 0 && !f.Known(family) {
		f.log.Debug("No font face registered for family", zap.String("family", family))
	}
	h := style.FontFaceHandle(len(f.handles) + 1)
	f.handles[key] = h
	return h
}

// Len returns the number of distinct handles given out.
func (f *MemoryFontEngine) Len() int {
	return len(f.handles)
}

// Requests counts handle lookups, cached or not.
func (f *MemoryFontEngine) Requests() int {
	return f.requests
}
