package sdpgen

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddMedia(t *testing.T) {
	for _, ca := range []struct {
		name  string
		media Media
		enc   string
	}{
		{
			"audio",
			Media{
				Type:   "audio",
				Port:   5004,
				RTPMap: "PCMU/8000",
			},
			"m=audio 5004 RTP/AVP 0\r\n" +
				"b=RR:0\r\n" +
				"a=rtpmap:0 PCMU/8000\r\n",
		},
		{
			"defaults",
			Media{
				Port:        9000,
				PayloadType: 96,
				RTPMap:      "H264/90000",
				FMTP:        "packetization-mode=1",
			},
			"m=video 9000 RTP/AVP 96\r\n" +
				"b=RR:0\r\n" +
				"a=rtpmap:96 H264/90000\r\n" +
				"a=fmtp:96 packetization-mode=1\r\n",
		},
		{
			"bandwidth",
			Media{
				Type:        "audio",
				Port:        5004,
				PayloadType: 14,
				Bandwidth:   128,
			},
			"m=audio 5004 RTP/AVP 14\r\n" +
				"b=AS:128\r\n" +
				"b=RR:0\r\n",
		},
		{
			"bandwidth independent",
			Media{
				Type:                 "audio",
				Port:                 5004,
				PayloadType:          14,
				Bandwidth:            128,
				BandwidthIndependent: true,
			},
			"m=audio 5004 RTP/AVP 14\r\n" +
				"b=TIAS:128\r\n" +
				"b=RR:0\r\n",
		},
		{
			"no descriptors",
			Media{
				Type:        "audio",
				Protocol:    "udp",
				Port:        1234,
				PayloadType: 33,
			},
			"m=audio 1234 udp 33\r\n" +
				"b=RR:0\r\n",
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			doc := testDocument(t)
			prev := doc.String()

			err := doc.AddMedia(ca.media)
			require.NoError(t, err)
			require.Equal(t, prev+ca.enc, doc.String())
		})
	}
}

func TestAddMediaEndToEnd(t *testing.T) {
	s := Session{
		Name:        "Test",
		Destination: netip.MustParseAddr("192.0.2.1"),
		Now:         testClock,
		Hostname:    testHostname,
	}
	doc, err := s.Marshal()
	require.NoError(t, err)

	err = doc.AddMedia(Media{
		Type:     "audio",
		Protocol: "RTP/AVP",
		Port:     5004,
		RTPMap:   "PCMU/8000",
	})
	require.NoError(t, err)

	require.Equal(t, "v=0\r\n"+
		"o=- 15026185557434695680 15026185557434695680 IN IP4 mars\r\n"+
		"s=Test\r\n"+
		"i=N/A\r\n"+
		"c=IN IP4 192.0.2.1\r\n"+
		"t=0 0\r\n"+
		"a=tool:sdpgen\r\n"+
		"a=recvonly\r\n"+
		"a=type:broadcast\r\n"+
		"a=charset:UTF-8\r\n"+
		"m=audio 5004 RTP/AVP 0\r\n"+
		"b=RR:0\r\n"+
		"a=rtpmap:0 PCMU/8000\r\n",
		doc.String())
}

func TestAddMediaPayloadTypeTooHigh(t *testing.T) {
	doc := testDocument(t)

	require.Panics(t, func() {
		doc.AddMedia(Media{ //nolint:errcheck
			Type:        "audio",
			Port:        5004,
			PayloadType: 200,
		})
	})
}

func TestAddMediaPartialCommit(t *testing.T) {
	s := Session{
		Name:        "Test",
		Destination: netip.MustParseAddr("192.0.2.1"),
		MaxSize:     200,
		Now:         testClock,
		Hostname:    testHostname,
	}
	doc, err := s.Marshal()
	require.NoError(t, err)

	// the media line fits, the rtpmap attribute does not
	err = doc.AddMedia(Media{
		Type:   "audio",
		Port:   5004,
		RTPMap: "PCMU/8000",
	})
	require.Error(t, err)
	require.Contains(t, doc.String(), "m=audio 5004 RTP/AVP 0\r\nb=RR:0\r\n")
	require.NotContains(t, doc.String(), "rtpmap")
}
