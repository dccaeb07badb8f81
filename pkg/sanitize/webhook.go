package sanitize

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// HostKind classifies a webhook hostname for SSRF screening.
type HostKind int

const (
	HostPublic HostKind = iota
	HostLoopback
	HostPrivateIPv4
	HostPrivateIPv6
	HostLinkLocalMetadata
	HostUnparseable
)

func (k HostKind) String() string {
	switch k {
	case HostPublic:
		return "public"
	case HostLoopback:
		return "loopback"
	case HostPrivateIPv4:
		return "private_ipv4"
	case HostPrivateIPv6:
		return "private_ipv6"
	case HostLinkLocalMetadata:
		return "link_local_metadata"
	case HostUnparseable:
		return "unparseable"
	}
	return "unknown"
}

// HostClass is the outcome of classifying a URL hostname. Range names the
// matched address block when a private or metadata range applies.
type HostClass struct {
	Kind  HostKind
	Range string
}

// WebhookValidator screens user-supplied webhook endpoints before they are
// stored. It is a lexical classifier only: no DNS resolution, no outbound
// connection, and no caching, so every call re-classifies from scratch.
// DNS-rebinding at dereference time is the egress path's problem, not
// this validator's.
type WebhookValidator struct {
	logger     *logrus.Logger
	production bool
}

// NewWebhookValidator builds a validator. production enforces the
// HTTPS-only rule; it is injected from deployment config rather than read
// from ambient process state so the policy branch stays testable and
// cannot be forged by a request.
func NewWebhookValidator(logger *logrus.Logger, production bool) *WebhookValidator {
	return &WebhookValidator{
		logger:     logger,
		production: production,
	}
}

// Sanitize returns raw unchanged when it is acceptable as a webhook
// target; case, trailing slashes and query strings pass through verbatim.
// Rejections return ok == false and log the reason; validation itself
// never fails with an error.
func (v *WebhookValidator) Sanitize(raw string) (string, bool) {
	if strings.TrimSpace(raw) == "" {
		v.logger.WithField("reason", ReasonSyntaxInvalid).Warn("rejected blank webhook url")
		return "", false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Hostname() == "" {
		v.logger.WithFields(logrus.Fields{
			"url":    raw,
			"reason": ReasonSyntaxInvalid,
		}).Warn("rejected unparseable webhook url")
		return "", false
	}

	if v.production && u.Scheme != "https" {
		v.logger.WithFields(logrus.Fields{
			"url":    raw,
			"scheme": u.Scheme,
			"reason": ReasonPolicyRejected,
		}).Warn("rejected non-https webhook url")
		return "", false
	}

	class := ClassifyHost(u.Hostname())
	if class.Kind != HostPublic {
		v.logger.WithFields(logrus.Fields{
			"host":   strings.ToLower(u.Hostname()),
			"class":  class.Kind.String(),
			"range":  class.Range,
			"reason": ReasonPolicyRejected,
		}).Warn("rejected webhook url host")
		return "", false
	}

	return raw, true
}

// ClassifyHost classifies a hostname already extracted from a URL.
// Brackets around IPv6 literals are assumed stripped, which is what
// url.URL.Hostname produces.
func ClassifyHost(host string) HostClass {
	host = strings.ToLower(host)
	if host == "" {
		return HostClass{Kind: HostUnparseable}
	}

	switch host {
	case "localhost", "127.0.0.1", "0.0.0.0", "::1":
		return HostClass{Kind: HostLoopback}
	}
	if strings.HasPrefix(host, "127.") {
		return HostClass{Kind: HostLoopback, Range: "127.0.0.0/8"}
	}

	// The EC2 IPv6 metadata address, checked before the generic unique
	// local match so the classification names the real target.
	if strings.Contains(host, "fd00:ec2") {
		return HostClass{Kind: HostLinkLocalMetadata, Range: "fd00:ec2::/32"}
	}
	if strings.Contains(host, ":") {
		if strings.HasPrefix(host, "fc") || strings.HasPrefix(host, "fd") {
			return HostClass{Kind: HostPrivateIPv6, Range: "fc00::/7"}
		}
		return HostClass{Kind: HostPublic}
	}

	if octets, ok := parseDottedQuad(host); ok {
		return classifyIPv4(octets)
	}
	return HostClass{Kind: HostPublic}
}

func classifyIPv4(o [4]int) HostClass {
	switch {
	case o == [4]int{169, 254, 169, 254}:
		return HostClass{Kind: HostLinkLocalMetadata, Range: "169.254.169.254/32"}
	case o[0] == 10:
		return HostClass{Kind: HostPrivateIPv4, Range: "10.0.0.0/8"}
	case o[0] == 172 && o[1] >= 16 && o[1] <= 31:
		return HostClass{Kind: HostPrivateIPv4, Range: "172.16.0.0/12"}
	case o[0] == 192 && o[1] == 168:
		return HostClass{Kind: HostPrivateIPv4, Range: "192.168.0.0/16"}
	}
	return HostClass{Kind: HostPublic}
}

// parseDottedQuad decomposes a strict dotted-quad IPv4 literal into
// octets. Anything that is not four plain decimal components in 0-255
// is not treated as an address.
func parseDottedQuad(host string) ([4]int, bool) {
	parts := strings.Split(host, ".")
	if len(parts) != 4 {
		return [4]int{}, false
	}
	var octets [4]int
	for i, part := range parts {
		if part == "" || len(part) > 3 {
			return [4]int{}, false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return [4]int{}, false
			}
		}
		n, err := strconv.Atoi(part)
		if err != nil || n > 255 {
			return [4]int{}, false
		}
		octets[i] = n
	}
	return octets, true
}
