package style

import (
	"slices"
	"strings"
)

func (s *ElementStyle) SetClass(name string, activate bool) bool {
	i := slices.Index(s.classes, name)
	switch {
	case activate && i < 0:
		s.classes = append(s.classes, name)
		return true
	case !activate && i >= 0:
		s.classes = slices.Delete(s.classes, i, i+1)
		return true
	}
	return false
}

func (s *ElementStyle) IsClassSet(name string) bool {
	return slices.Contains(s.classes, name)
}

// SetClassNames replaces all classes with the space separated names.
func (s *ElementStyle) SetClassNames(names string) {
	s.classes = s.classes[:0]
	for _, name := range strings.Fields(names) {
		if !slices.Contains(s.classes, name) {
			s.classes = append(s.classes, name)
		}
	}
}

func (s *ElementStyle) ClassNames() string {
	return strings.Join(s.classes, " ")
}

// ClassNameList returns classes in insertion order. Callers must not modify it.
func (s *ElementStyle) ClassNameList() []string {
	return s.classes
}
