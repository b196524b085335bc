package llm

import (
	"context"
	"net"
	"net/http"
	"time"
)

// NewHTTPClient builds the http.Client handed to each provider. With
// preferIPv4 set, name resolution results are reordered so IPv4 addresses
// are dialed first, falling back to the unfiltered set when no IPv4
// address is present. This is a deployment-environment workaround for
// hosts with broken IPv6 egress, not a protocol requirement, which is why
// it is an explicit client option rather than a process-wide override.
func NewHTTPClient(preferIPv4 bool) *http.Client {
	if !preferIPv4 {
		return &http.Client{}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialPreferIPv4

	return &http.Client{Transport: transport}
}

func dialPreferIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: 30 * time.Second, KeepAlive: 30 * time.Second}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return dialer.DialContext(ctx, network, addr)
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil || len(addrs) == 0 {
		return dialer.DialContext(ctx, network, addr)
	}

	var lastErr error
	for _, ip := range orderIPv4First(addrs) {
		conn, err := dialer.DialContext(ctx, network, net.JoinHostPort(ip.IP.String(), port))
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// orderIPv4First moves IPv4 addresses to the front, keeping relative order
// within each family. A result set without any IPv4 address is returned
// unchanged.
func orderIPv4First(addrs []net.IPAddr) []net.IPAddr {
	var v4, v6 []net.IPAddr
	for _, a := range addrs {
		if a.IP.To4() != nil {
			v4 = append(v4, a)
		} else {
			v6 = append(v6, a)
		}
	}
	if len(v4) == 0 {
		return addrs
	}
	return append(v4, v6...)
}
