package sdpgen

import (
	"fmt"

	"github.com/bluenviron/sdpgen/pkg/liberrors"
)

// Media contains the parameters of a media section.
type Media struct {
	// media type. It defaults to "video".
	Type string

	// transport protocol. It defaults to "RTP/AVP".
	Protocol string

	// destination port of the stream.
	Port int

	// RTP payload type. Must be lower than 128.
	PayloadType uint8

	// bandwidth in kilobits per second (optional).
	Bandwidth uint

	// whether Bandwidth is codec-independent. In that case it is
	// encoded as a TIAS value instead of a AS value.
	// Specification: RFC 3890
	BandwidthIndependent bool

	// rtpmap encoding descriptor, e.g. "PCMU/8000" (optional).
	RTPMap string

	// fmtp format parameters (optional).
	FMTP string
}

// AddMedia appends a media section to the document.
// Once the media line is committed, a failure while appending the rtpmap
// or fmtp attribute leaves the media line in place; the error is
// returned anyway and the caller decides whether a partial section is
// acceptable.
func (d *Document) AddMedia(m Media) error {
	if m.Type == "" {
		m.Type = "video"
	}
	if m.Protocol == "" {
		m.Protocol = "RTP/AVP"
	}

	// RTP payload types are 7 bits wide
	if m.PayloadType >= 128 {
		panic("payload type must be lower than 128")
	}

	for _, fi := range []struct {
		field string
		value string
	}{
		{"media type", m.Type},
		{"media protocol", m.Protocol},
	} {
		if !isText(fi.value) {
			return liberrors.ErrInvalidText{Field: fi.field}
		}
	}

	block := fmt.Sprintf("m=%s %d %s %d\r\n", m.Type, m.Port, m.Protocol, m.PayloadType)

	if m.Bandwidth > 0 {
		if m.BandwidthIndependent {
			block += fmt.Sprintf("b=TIAS:%d\r\n", m.Bandwidth)
		} else {
			block += fmt.Sprintf("b=AS:%d\r\n", m.Bandwidth)
		}
	}

	// suppress RTCP receiver reports
	block += "b=RR:0\r\n"

	err := d.append(block)
	if err != nil {
		return err
	}

	if m.RTPMap != "" {
		err = d.AddAttribute("rtpmap", fmt.Sprintf("%d %s", m.PayloadType, m.RTPMap))
		if err != nil {
			return err
		}
	}

	if m.FMTP != "" {
		err = d.AddAttribute("fmtp", fmt.Sprintf("%d %s", m.PayloadType, m.FMTP))
		if err != nil {
			return err
		}
	}

	return nil
}
