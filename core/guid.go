package core

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the canonical "{xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}"
// text form used by the C ABI's vendor-property functions.
func (g GUID) String() string {
	return fmt.Sprintf("{%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x}",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1],
		g.Data4[2], g.Data4[3], g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// ParseGUID parses the canonical text form (braces optional) into a GUID.
// Malformed text yields InvalidArgument, matching the C surface's
// contract for "malformed GUID text".
func ParseGUID(s string) (GUID, *Error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	parts := strings.Split(s, "-")
	if len(parts) != 5 || len(parts[0]) != 8 || len(parts[1]) != 4 ||
		len(parts[2]) != 4 || len(parts[3]) != 4 || len(parts[4]) != 12 {
		return GUID{}, NewError(InvalidArgument, "malformed GUID text: "+s)
	}

	d1, err := strconv.ParseUint(parts[0], 16, 32)
	if err != nil {
		return GUID{}, NewError(InvalidArgument, "malformed GUID Data1: "+err.Error())
	}
	d2, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return GUID{}, NewError(InvalidArgument, "malformed GUID Data2: "+err.Error())
	}
	d3, err := strconv.ParseUint(parts[2], 16, 16)
	if err != nil {
		return GUID{}, NewError(InvalidArgument, "malformed GUID Data3: "+err.Error())
	}

	var d4 [8]byte
	tail := parts[3] + parts[4]
	for i := 0; i < 8; i++ {
		b, err := strconv.ParseUint(tail[i*2:i*2+2], 16, 8)
		if err != nil {
			return GUID{}, NewError(InvalidArgument, "malformed GUID tail: "+err.Error())
		}
		d4[i] = byte(b)
	}

	return GUID{
		Data1: uint32(d1),
		Data2: uint16(d2),
		Data3: uint16(d3),
		Data4: d4,
	}, nil
}
