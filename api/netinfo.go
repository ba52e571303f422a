package api

import (
	"errors"
	"net"
)

var errNoServerIpNet = errors.New("no non-loopback ipv4 interface found")

// ServerIpNet returns the first IPv4 network of an interface that is
// up and not a loopback. Analytics rows are keyed by it.
func ServerIpNet() (net.IPNet, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPNet{}, err
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return net.IPNet{}, err
		}

		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}

			if ipnet.IP.To4() != nil && !ipnet.IP.IsLoopback() {
				return *ipnet, nil
			}
		}
	}

	return net.IPNet{}, errNoServerIpNet
}

// LoopbackIpNet is used when the host has no routable interface.
func LoopbackIpNet() net.IPNet {
	return net.IPNet{IP: net.IPv4(127, 0, 0, 1), Mask: net.CIDRMask(8, 32)}
}
