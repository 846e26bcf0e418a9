// Package resetmon watches device consoles for reset reason reports and
// turns them into named events.
package resetmon

import (
	"errors"
	"fmt"
	"io"
	"time"

	"nrfreset/src/lib/eventlog"
	"nrfreset/src/lib/report"
	"nrfreset/src/lib/trust"
	"nrfreset/src/tools/chipdecl"
)

// Decoder turns report lines into events with the causes named for the
// reporting target. Resolved catalogs are cached per target.
type Decoder struct {
	def   *chipdecl.CatalogDef
	cache map[string]*chipdecl.Catalog
	now   func() time.Time
}

func NewDecoder(def *chipdecl.CatalogDef) *Decoder {
	return &Decoder{
		def:   def,
		cache: map[string]*chipdecl.Catalog{},
		now:   time.Now,
	}
}

// Catalog resolves (once) the catalog for a target tag.
func (d *Decoder) Catalog(tag string) (*chipdecl.Catalog, error) {
	if c, ok := d.cache[tag]; ok {
		return c, nil
	}
	c, err := d.def.Resolve(tag)
	if err != nil {
		return nil, err
	}
	d.cache[tag] = c
	return c, nil
}

// Event decodes one report line seen on source.
func (d *Decoder) Event(l report.Line, source string) (eventlog.Event, error) {
	c, err := d.Catalog(l.Target)
	if err != nil {
		return eventlog.Event{}, err
	}
	decoded := c.Decode(l.Raw)
	return eventlog.Event{
		Time:    d.now(),
		Source:  source,
		Target:  l.Target,
		Raw:     l.Raw,
		Causes:  decoded.Causes,
		Unknown: decoded.Unknown,
	}, nil
}

// Describe is the one line summary printed for an event.
func Describe(e eventlog.Event) string {
	d := chipdecl.Decoded{Raw: e.Raw, Causes: e.Causes, Unknown: e.Unknown}
	what := d.String()
	if d.PowerOn() {
		what += " (power-on or brown-out reset)"
	}
	return fmt.Sprintf("%s %s %s", e.Time.Format(time.RFC3339), e.Target, what)
}

// Watch reads lines from r until it ends and hands every reset report to
// sink. Other console output is ignored; reports that cannot be decoded
// are logged and skipped. An error from sink stops the watch.
func Watch(r io.Reader, source string, d *Decoder, sink func(eventlog.Event) error) error {
	buf := make([]byte, 256)
	for {
		line, err := ReadLine(r, buf)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", source, err)
		}
		l, err := report.Parse(line)
		if errors.Is(err, report.ErrNotReport) {
			continue
		}
		if err != nil {
			trust.Warnf("%s: %v", source, err)
			continue
		}
		e, err := d.Event(l, source)
		if err != nil {
			trust.Warnf("%s: %v", source, err)
			continue
		}
		if err := sink(e); err != nil {
			return err
		}
	}
}
