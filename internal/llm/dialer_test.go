package llm

import (
	"net"
	"testing"
)

func TestOrderIPv4First(t *testing.T) {
	v4a := net.IPAddr{IP: net.ParseIP("192.0.2.1")}
	v4b := net.IPAddr{IP: net.ParseIP("192.0.2.2")}
	v6a := net.IPAddr{IP: net.ParseIP("2001:db8::1")}
	v6b := net.IPAddr{IP: net.ParseIP("2001:db8::2")}

	tests := []struct {
		name string
		in   []net.IPAddr
		want []net.IPAddr
	}{
		{"both families", []net.IPAddr{v6a, v4a, v6b, v4b}, []net.IPAddr{v4a, v4b, v6a, v6b}},
		{"ipv4 only", []net.IPAddr{v4a, v4b}, []net.IPAddr{v4a, v4b}},
		{"ipv6 only falls back unfiltered", []net.IPAddr{v6a, v6b}, []net.IPAddr{v6a, v6b}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orderIPv4First(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if !got[i].IP.Equal(tt.want[i].IP) {
					t.Errorf("addr[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewHTTPClientInstallsDialerOnlyWhenPreferred(t *testing.T) {
	if c := NewHTTPClient(false); c.Transport != nil {
		t.Errorf("PreferIPv4 disabled should use the default transport")
	}
	if c := NewHTTPClient(true); c.Transport == nil {
		t.Errorf("PreferIPv4 enabled should install a custom transport")
	}
}
