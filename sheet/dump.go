package sheet

import (
	"rcss/property"
	"rcss/utils/debug"
)

// Listing renders compiled rules in source order with their parsed values,
// for the debug report.
func (s *Sheet) Listing() string {
	tw := debug.NewTreeWriter()
	if s == nil {
		return tw.String()
	}
	for _, r := range s.rules {
		if r.Media != nil {
			tw.Line(0, "@media %s", r.Media.Raw)
		}
		tw.Line(0, "%s  [specificity %d, order %d, line %d]", r.Selector.Raw, r.Specificity, r.Order, r.Line)
		writeDictionary(tw, r.Normal, "")
		writeDictionary(tw, r.Important, " !important")
	}
	for _, f := range s.fontFaces {
		tw.Line(0, "@font-face")
		tw.Value(1, "font-family", f.Family)
		tw.Value(1, "src", f.Src)
	}
	for _, w := range s.warnings {
		tw.Value(0, "warning", w)
	}
	return tw.String()
}

func writeDictionary(tw *debug.TreeWriter, d *property.Dictionary, suffix string) {
	for id, p := range d.Properties {
		tw.Value(1, id.String()+suffix, p.String())
	}
	for name, p := range d.Variables {
		tw.Value(1, name+suffix, p.String())
	}
	for id := range d.ShorthandIDs().All() {
		if t, ok := d.DependentShorthand(id); ok {
			tw.Value(1, id.String()+suffix, t.String())
		}
	}
}
