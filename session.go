// Package sdpgen contains a builder of SDP (RFC 4566) stream announcements.
package sdpgen

import (
	"fmt"
	"net/netip"
	"os"
	"time"

	"github.com/bluenviron/sdpgen/pkg/connection"
	"github.com/bluenviron/sdpgen/pkg/liberrors"
	"github.com/bluenviron/sdpgen/pkg/ntp"
)

// value of the tool attribute.
const toolName = "sdpgen"

func defaultHostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "localhost"
	}
	return name
}

// Session contains the parameters of a stream announcement.
type Session struct {
	// name of the session. It defaults to "Unnamed".
	Name string

	// description of the session. It defaults to "N/A".
	Description string

	// URL with additional information about the session (optional).
	URL string

	// contact email (optional).
	Email string

	// contact phone number (optional).
	Phone string

	// address of the stream source, announced with a source-filter
	// attribute (optional).
	// Specification: RFC 4570
	Source netip.Addr

	// destination address of the stream.
	Destination netip.Addr

	// maximum size of the document. It defaults to DefaultMaxSize.
	MaxSize int

	// function used to obtain the current time.
	// It defaults to time.Now.
	Now func() time.Time

	// function used to obtain the local host name.
	// It defaults to os.Hostname.
	Hostname func() string
}

// Marshal validates the session parameters and encodes the session-level
// part of the announcement. Media sections and additional attributes can
// be appended to the returned document afterwards.
func (s *Session) Marshal() (*Document, error) {
	if s.MaxSize == 0 {
		s.MaxSize = DefaultMaxSize
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	if s.Hostname == nil {
		s.Hostname = defaultHostname
	}

	name := s.Name
	if name == "" {
		name = "Unnamed"
	}

	info := s.Description
	if info == "" {
		info = "N/A"
	}

	for _, fi := range []struct {
		field string
		value string
	}{
		{"name", name},
		{"description", info},
		{"url", s.URL},
		{"email", s.Email},
		{"phone", s.Phone},
	} {
		if !isText(fi.value) {
			return nil, liberrors.ErrInvalidText{Field: fi.field}
		}
	}

	conn, err := connection.FieldFromAddr(s.Destination)
	if err != nil {
		return nil, err
	}

	// both the session id and the session version only need to be
	// unique enough per session; a single timestamp serves both.
	now := ntp.Encode(s.Now())

	ret := fmt.Sprintf("v=0\r\n"+
		"o=- %d %d IN IP%d %s\r\n"+
		"s=%s\r\n"+
		"i=%s\r\n",
		now, now, conn.Version, s.Hostname(),
		name,
		info)

	if s.URL != "" {
		ret += "u=" + s.URL + "\r\n"
	}
	if s.Email != "" {
		ret += "e=" + s.Email + "\r\n"
	}
	if s.Phone != "" {
		ret += "p=" + s.Phone + "\r\n"
	}

	ret += "c=" + conn.Marshal() + "\r\n" +
		"t=0 0\r\n" +
		"a=tool:" + toolName + "\r\n" +
		"a=recvonly\r\n" +
		"a=type:broadcast\r\n" +
		"a=charset:UTF-8\r\n"

	// best-effort: a source that cannot be encoded skips the line
	// instead of failing the whole document.
	if s.Source.IsValid() {
		var src *connection.Field
		src, err = connection.FieldFromAddr(s.Source)
		if err == nil {
			ret += fmt.Sprintf("a=source-filter: incl IN IP%d * %s\r\n",
				src.Version, src.Address)
		}
	}

	d := &Document{maxSize: s.MaxSize}
	err = d.append(ret)
	if err != nil {
		return nil, err
	}

	return d, nil
}
