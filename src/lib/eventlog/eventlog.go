// Package eventlog stores observed resets as a stream of CBOR records, one
// Event per reset report seen on a device console.
package eventlog

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Event is one reset as the host saw it. Integer keys keep the records
// small; the names are decoded from Raw with the target's catalog when
// the event is recorded.
type Event struct {
	Time    time.Time `cbor:"1,keyasint"`
	Source  string    `cbor:"2,keyasint,omitempty"` //device path
	Target  string    `cbor:"3,keyasint"`
	Raw     uint32    `cbor:"4,keyasint"`
	Causes  []string  `cbor:"5,keyasint,omitempty"`
	Unknown uint32    `cbor:"6,keyasint,omitempty"`
}

// PowerOn reports an event with no cause bits.
func (e Event) PowerOn() bool {
	return e.Raw == 0
}

var encMode cbor.EncMode
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("eventlog: cbor encoder mode: %v", err))
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("eventlog: cbor decoder mode: %v", err))
	}
}

func Encode(e Event) ([]byte, error) {
	return encMode.Marshal(e)
}

func Decode(data []byte) (Event, error) {
	var e Event
	if err := decMode.Unmarshal(data, &e); err != nil {
		return Event{}, err
	}
	return e, nil
}

// NewEncoder appends events to w, e.g. a log file opened for append.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// ReadAll decodes every event in r until EOF.
func ReadAll(r io.Reader) ([]Event, error) {
	dec := NewDecoder(r)
	var result []Event
	for {
		var e Event
		err := dec.Decode(&e)
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return result, fmt.Errorf("event %d: %w", len(result), err)
		}
		result = append(result, e)
	}
}
