package field

import "github.com/wirebound/wirebound/debug"

var (
	_ debug.Formatter = (*Bytes)(nil)
	_ debug.Formatter = (*Text)(nil)
)

// FormatDebug renders the field as a JSON-style array of byte values:
//
//	"payload": [
//	  104,
//	  105
//	]
func (b *Bytes) FormatDebug(w *debug.Window, indent int, name string, first bool) {
	if !first {
		w.Printf(",\n")
	}
	if name != "" {
		w.Printf("%*s%q: [", indent, " ", name)
	} else {
		w.Printf("%*s[", indent, " ")
	}
	for i := 0; i < b.length; i++ {
		if i > 0 {
			w.Printf(",")
		}
		w.Printf("\n%*s%d", indent+2, " ", b.data[i])
	}
	w.Printf("\n%*s]", indent, " ")
}

// FormatDebug renders the field as a JSON-style string member:
//
//	"name": "telemetry-unit-7"
func (t *Text) FormatDebug(w *debug.Window, indent int, name string, first bool) {
	if !first {
		w.Printf(",\n")
	}
	if name != "" {
		w.Printf("%*s%q: %q", indent, " ", name, t.data[:t.length])
	} else {
		w.Printf("%*s%q", indent, " ", t.data[:t.length])
	}
}
