// Package connection contains the encoder of the SDP connection field.
package connection

import (
	"net"
	"net/netip"
	"strconv"

	"github.com/bluenviron/sdpgen/pkg/liberrors"
)

// MaxFieldSize is the maximum size of an encoded connection field:
// "IN IP6 " plus the longest textual IPv6 address.
const MaxFieldSize = 47

// Field is the value of a SDP connection field ("c=" line).
// Specification: RFC 4566, section 5.7
type Field struct {
	// IP version, 4 or 6.
	Version int

	// numeric address, without any zone.
	Address string

	// whether the address is a multicast group.
	Multicast bool
}

// FieldFromAddr encodes an IP address into a connection field.
// Mapped IPv4-in-IPv6 addresses are encoded as IPv4.
func FieldFromAddr(addr netip.Addr) (*Field, error) {
	if !addr.IsValid() {
		return nil, liberrors.ErrInvalidAddress{}
	}

	if addr.Is4() || addr.Is4In6() {
		addr = addr.Unmap()
		return &Field{
			Version:   4,
			Address:   addr.String(),
			Multicast: addr.IsMulticast(),
		}, nil
	}

	// SDP has no concept of interface scope
	addr = addr.WithZone("")

	return &Field{
		Version:   6,
		Address:   addr.String(),
		Multicast: addr.IsMulticast(),
	}, nil
}

// Marshal encodes the field.
func (f Field) Marshal() string {
	ret := "IN IP" + strconv.Itoa(f.Version) + " " + f.Address

	// legacy TTL marker, obsolete in RFC 4566, dummy value
	if f.Version == 4 && f.Multicast {
		ret += "/255"
	}

	return ret
}

// AddrFromNet returns the IP address inside a net.Addr.
func AddrFromNet(addr net.Addr) (netip.Addr, error) {
	var ip net.IP
	var zone string

	switch tad := addr.(type) {
	case *net.UDPAddr:
		ip, zone = tad.IP, tad.Zone

	case *net.TCPAddr:
		ip, zone = tad.IP, tad.Zone

	case *net.IPAddr:
		ip, zone = tad.IP, tad.Zone

	default:
		return netip.Addr{}, liberrors.ErrUnsupportedAddressFamily{Network: addr.Network()}
	}

	ret, ok := netip.AddrFromSlice(ip)
	if !ok {
		return netip.Addr{}, liberrors.ErrInvalidAddress{}
	}

	return ret.WithZone(zone), nil
}
