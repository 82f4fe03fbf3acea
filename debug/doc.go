// Package debug provides bounded, allocation-tolerant rendering of fields
// into JSON-style text for inspection and logging.
//
// A Window wraps a caller-owned byte slice; every write keeps what fits
// and silently drops the rest, so rendering can never fail and never grows
// memory. Field types implement the Formatter interface to append their
// fragment:
//
//	var out [256]byte
//	w := debug.NewWindow(out[:])
//	w.Printf("{\n")
//	name.FormatDebug(w, 2, "name", true)
//	payload.FormatDebug(w, 2, "payload", false)
//	w.Printf("\n}")
//	fmt.Println(w.String())
//
// Fragments joined this way, wrapped in braces, form parseable JSON as long
// as the window did not truncate.
package debug
