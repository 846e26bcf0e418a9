package resetmon

import (
	"io"

	"nrfreset/src/lib/trust"
)

// ReadLine reads one newline terminated line from a device console into
// buf. Control characters are dropped, and characters past the end of buf
// are discarded rather than split into a second line.
func ReadLine(r io.Reader, buf []byte) (string, error) {
	count := 0
	dropped := 0
	for {
		n, err := r.Read(buf[count : count+1])
		if n == 0 {
			if err != nil {
				if err == io.EOF && count > 0 {
					return string(buf[:count]), nil
				}
				return "", err
			}
			continue
		}
		switch {
		case buf[count] == '\n':
			if dropped != 0 {
				trust.Debugf("dropped %d characters from line", dropped)
			}
			return string(buf[:count]), nil
		case buf[count] < ' ':
			continue
		case count == len(buf)-1:
			dropped++
		default:
			count++
		}
	}
}
