package dashgate

import "strings"

// DomainMode identifies which of the two audiences a serving origin presents to.
type DomainMode string

const (
	// ModePublic is the unauthenticated deposit-only surface.
	ModePublic DomainMode = "public"

	// ModePrivate is the authenticated full-control surface.
	ModePrivate DomainMode = "private"
)

const (
	defaultPublicDomain  = "stripe-autobot.fr"
	defaultPrivateDomain = "app.autobot.fr"
	loopbackHost         = "localhost"
)

// Classifier maps a serving origin to its deployment mode. Classification is
// a pure function of the origin string; it runs on every navigation and must
// stay deterministic and side-effect free.
type Classifier struct {
	publicDomain  string
	privateDomain string
}

// NewClassifier creates a Classifier for the given domain identifiers. Empty
// identifiers fall back to the deployed defaults.
func NewClassifier(publicDomain, privateDomain string) *Classifier {
	if publicDomain == "" {
		publicDomain = defaultPublicDomain
	}
	if privateDomain == "" {
		privateDomain = defaultPrivateDomain
	}

	return &Classifier{
		publicDomain:  publicDomain,
		privateDomain: privateDomain,
	}
}

// Classify returns the deployment mode for a serving origin. Unknown origins
// get the private surface: it is the conservative default because private
// additionally requires a session to proceed.
func (c *Classifier) Classify(origin string) DomainMode {
	switch {
	case strings.Contains(origin, c.publicDomain):
		return ModePublic
	case strings.Contains(origin, c.privateDomain), strings.Contains(origin, loopbackHost):
		return ModePrivate
	default:
		return ModePrivate
	}
}
