// Package sheet turns parsed stylesheets into the immutable element
// definitions consumed by the style engine.
package sheet

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"rcss/css"
	"rcss/property"
)

// ImportantSpecificity is added to the specificity of !important declarations
// so they win over every normal declaration.
const ImportantSpecificity = 1 << 30

// Rule is a stylesheet rule with its declarations parsed into dictionaries.
type Rule struct {
	Selector    css.Selector
	Media       *css.MediaQuery // nil outside of @media blocks
	Specificity int
	Order       int
	Line        int

	Normal    *property.Dictionary
	Important *property.Dictionary
}

// Sheet holds compiled rules in source order.
type Sheet struct {
	rules     []*Rule
	fontFaces []css.FontFace
	warnings  []string
	log       *zap.Logger
}

// Compile parses the declarations of every rule of ss with reg. Declarations
// that fail to parse are skipped and reported in the returned error, the sheet
// is usable either way.
func Compile(ss *css.Stylesheet, reg *property.Registry, log *zap.Logger) (*Sheet, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if reg == nil {
		reg = property.Default()
	}
	s := &Sheet{log: log.Named("sheet")}
	if ss == nil {
		return s, nil
	}
	s.fontFaces = ss.FontFaces()
	s.warnings = append(s.warnings, ss.Warnings...)

	var errs error
	add := func(r *css.Rule, media *css.MediaQuery) {
		cr := &Rule{
			Selector:    r.Selector,
			Media:       media,
			Specificity: r.Selector.Specificity(),
			Order:       r.Order,
			Line:        r.SourceLine,
			Normal:      property.NewDictionary(),
			Important:   property.NewDictionary(),
		}
		for _, d := range r.Declarations {
			dict := cr.Normal
			if d.Important {
				dict = cr.Important
			}
			if err := reg.ParseDeclaration(dict, d.Name, d.Value); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("line %d, %s { %s }: %w", r.SourceLine, r.Selector.Raw, d, err))
			}
		}
		s.rules = append(s.rules, cr)
	}

	for _, item := range ss.Items {
		switch {
		case item.Rule != nil:
			add(item.Rule, nil)
		case item.MediaBlock != nil:
			for i := range item.MediaBlock.Rules {
				add(&item.MediaBlock.Rules[i], &item.MediaBlock.Query)
			}
		}
	}

	s.log.Debug("Stylesheet compiled",
		zap.Int("rules", len(s.rules)),
		zap.Int("font_faces", len(s.fontFaces)),
		zap.Int("errors", len(multierr.Errors(errs))))
	return s, errs
}

// Rules returns compiled rules in source order.
func (s *Sheet) Rules() []*Rule {
	return s.rules
}

func (s *Sheet) FontFaces() []css.FontFace {
	return s.fontFaces
}

// Warnings lists constructs the parser skipped.
func (s *Sheet) Warnings() []string {
	return s.warnings
}

// Definition merges the dictionaries of rules into a new dictionary. Rules
// must be sorted by ascending specificity and source order, later rules win
// ties.
func Definition(rules []*Rule) *property.Dictionary {
	dict := property.NewDictionary()
	for _, r := range rules {
		dict.Import(r.Normal, r.Specificity)
	}
	for _, r := range rules {
		dict.Import(r.Important, r.Specificity+ImportantSpecificity)
	}
	return dict
}
