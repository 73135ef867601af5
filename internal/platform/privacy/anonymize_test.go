package privacy

import (
	"testing"
)

func TestAnonymizeIP(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ipv4 masks last octet",
			input:    "192.168.1.47",
			expected: "192.168.1.0",
		},
		{
			name:     "ipv4 localhost",
			input:    "127.0.0.1",
			expected: "127.0.0.0",
		},
		{
			name:     "ipv6 keeps /48 prefix",
			input:    "2001:db8:85a3::8a2e:370:7334",
			expected: "2001:0db8:85a3::",
		},
		{
			name:     "ipv6 loopback",
			input:    "::1",
			expected: "0000:0000:0000::",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "unknown",
		},
		{
			name:     "unknown value",
			input:    "unknown",
			expected: "unknown",
		},
		{
			name:     "garbage",
			input:    "not-an-ip",
			expected: "invalid",
		},
		{
			name:     "ip with port",
			input:    "192.168.1.1:8080",
			expected: "invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnonymizeIP(tt.input)
			if result != tt.expected {
				t.Errorf("AnonymizeIP(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestAnonymizeIP_SameNetworkCollapses(t *testing.T) {
	// Every host in the same /24 must anonymize to the same value.
	for _, ip := range []string{"10.1.2.1", "10.1.2.100", "10.1.2.255"} {
		if got := AnonymizeIP(ip); got != "10.1.2.0" {
			t.Errorf("AnonymizeIP(%q) = %q, want %q", ip, got, "10.1.2.0")
		}
	}
}
