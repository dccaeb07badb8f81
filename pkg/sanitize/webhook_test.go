package sanitize_test

import (
	"testing"

	"github.com/AgentPulse/TriggerDeck/pkg/sanitize"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookValidator(production bool) *sanitize.WebhookValidator {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return sanitize.NewWebhookValidator(logger, production)
}

func TestWebhookValidator_Sanitize_Accepts(t *testing.T) {
	v := newWebhookValidator(true)

	urls := []string{
		"https://api.example.com/webhook",
		"https://api.example.com/webhook/",
		"https://Api.Example.COM/Hook?token=abc&x=1",
		"https://172.32.0.1/hook",
		"https://[2001:db8::1]/hook",
	}

	for _, raw := range urls {
		out, ok := v.Sanitize(raw)
		require.True(t, ok, "url %q", raw)
		// Accepted URLs pass through verbatim, no normalization.
		assert.Equal(t, raw, out)
	}
}

func TestWebhookValidator_Sanitize_Rejects(t *testing.T) {
	v := newWebhookValidator(false)

	tests := []struct {
		name string
		url  string
	}{
		{name: "blank", url: ""},
		{name: "whitespace", url: "  "},
		{name: "no scheme", url: "api.example.com/webhook"},
		{name: "localhost", url: "http://localhost:3000/hook"},
		{name: "loopback ipv4", url: "http://127.0.0.1/x"},
		{name: "loopback prefix", url: "http://127.9.8.7/x"},
		{name: "all zeroes", url: "http://0.0.0.0/x"},
		{name: "ipv6 loopback", url: "http://[::1]/x"},
		{name: "rfc1918 ten", url: "http://10.0.0.5/x"},
		{name: "rfc1918 one seventy two", url: "http://172.20.0.1/x"},
		{name: "rfc1918 one ninety two", url: "http://192.168.1.1/x"},
		{name: "cloud metadata", url: "http://169.254.169.254/latest/meta-data"},
		{name: "ipv6 unique local", url: "http://[fd12:3456::1]/x"},
		{name: "ipv6 metadata", url: "http://[fd00:ec2::254]/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok := v.Sanitize(tt.url)
			assert.False(t, ok)
			assert.Empty(t, out)
		})
	}
}

func TestWebhookValidator_Sanitize_ProductionScheme(t *testing.T) {
	raw := "http://api.example.com/webhook"

	// Development permits plain http for local testing.
	out, ok := newWebhookValidator(false).Sanitize(raw)
	require.True(t, ok)
	assert.Equal(t, raw, out)

	// Production enforces https.
	_, ok = newWebhookValidator(true).Sanitize(raw)
	assert.False(t, ok)
}

func TestClassifyHost(t *testing.T) {
	tests := []struct {
		host      string
		kind      sanitize.HostKind
		addrRange string
	}{
		{host: "", kind: sanitize.HostUnparseable},
		{host: "api.example.com", kind: sanitize.HostPublic},
		{host: "localhost", kind: sanitize.HostLoopback},
		{host: "LOCALHOST", kind: sanitize.HostLoopback},
		{host: "127.0.0.1", kind: sanitize.HostLoopback},
		{host: "127.255.0.1", kind: sanitize.HostLoopback, addrRange: "127.0.0.0/8"},
		{host: "0.0.0.0", kind: sanitize.HostLoopback},
		{host: "::1", kind: sanitize.HostLoopback},
		{host: "10.1.2.3", kind: sanitize.HostPrivateIPv4, addrRange: "10.0.0.0/8"},
		{host: "172.16.0.1", kind: sanitize.HostPrivateIPv4, addrRange: "172.16.0.0/12"},
		{host: "172.31.255.255", kind: sanitize.HostPrivateIPv4, addrRange: "172.16.0.0/12"},
		{host: "172.15.0.1", kind: sanitize.HostPublic},
		{host: "172.32.0.1", kind: sanitize.HostPublic},
		{host: "192.168.0.1", kind: sanitize.HostPrivateIPv4, addrRange: "192.168.0.0/16"},
		{host: "192.169.0.1", kind: sanitize.HostPublic},
		{host: "169.254.169.254", kind: sanitize.HostLinkLocalMetadata, addrRange: "169.254.169.254/32"},
		{host: "169.254.169.253", kind: sanitize.HostPublic},
		{host: "fc00::1", kind: sanitize.HostPrivateIPv6, addrRange: "fc00::/7"},
		{host: "fd12:3456::1", kind: sanitize.HostPrivateIPv6, addrRange: "fc00::/7"},
		{host: "FD12:3456::1", kind: sanitize.HostPrivateIPv6, addrRange: "fc00::/7"},
		{host: "fd00:ec2::254", kind: sanitize.HostLinkLocalMetadata, addrRange: "fd00:ec2::/32"},
		{host: "fe80::1", kind: sanitize.HostPublic},
		{host: "2001:db8::1", kind: sanitize.HostPublic},
		{host: "10.0.0.999", kind: sanitize.HostPublic},
		{host: "10.0.0", kind: sanitize.HostPublic},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			class := sanitize.ClassifyHost(tt.host)
			assert.Equal(t, tt.kind, class.Kind)
			if tt.addrRange != "" {
				assert.Equal(t, tt.addrRange, class.Range)
			}
		})
	}
}
