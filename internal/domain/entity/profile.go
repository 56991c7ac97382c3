package entity

import (
	"fmt"
	"strings"
)

// Capability is an engine feature gated by a performance profile.
type Capability string

const (
	CapabilityWebGL      Capability = "webgl"
	CapabilityJavaScript Capability = "javascript"
	CapabilityImages     Capability = "images"
	CapabilityAnimations Capability = "animations"
)

// AllCapabilities returns the four profile flags in a stable order.
func AllCapabilities() []Capability {
	return []Capability{
		CapabilityWebGL,
		CapabilityJavaScript,
		CapabilityImages,
		CapabilityAnimations,
	}
}

// ParseCapability resolves a capability name (case-insensitive).
func ParseCapability(name string) (Capability, error) {
	c := Capability(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllCapabilities() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown capability %q", name)
}

// Built-in profile names.
const (
	ProfileBalanced    = "balanced"
	ProfilePerformance = "performance"
	ProfileMinimal     = "minimal"
)

// PerformanceProfile is a named, immutable bundle of the four capability flags.
// Fields are unexported so a profile can only be built with every flag given.
type PerformanceProfile struct {
	name       string
	webgl      bool
	javascript bool
	images     bool
	animations bool
}

// NewPerformanceProfile builds a profile. All four flags are required.
func NewPerformanceProfile(name string, webgl, javascript, images, animations bool) (PerformanceProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return PerformanceProfile{}, fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	return PerformanceProfile{
		name:       name,
		webgl:      webgl,
		javascript: javascript,
		images:     images,
		animations: animations,
	}, nil
}

func mustProfile(name string, webgl, javascript, images, animations bool) PerformanceProfile {
	p, err := NewPerformanceProfile(name, webgl, javascript, images, animations)
	if err != nil {
		panic(err)
	}
	return p
}

func (p PerformanceProfile) Name() string     { return p.name }
func (p PerformanceProfile) WebGL() bool      { return p.webgl }
func (p PerformanceProfile) JavaScript() bool { return p.javascript }
func (p PerformanceProfile) Images() bool     { return p.images }
func (p PerformanceProfile) Animations() bool { return p.animations }

// Flag returns the value of a single capability.
func (p PerformanceProfile) Flag(c Capability) bool {
	switch c {
	case CapabilityWebGL:
		return p.webgl
	case CapabilityJavaScript:
		return p.javascript
	case CapabilityImages:
		return p.images
	case CapabilityAnimations:
		return p.animations
	default:
		return false
	}
}

// Flags returns every capability with its value.
func (p PerformanceProfile) Flags() map[Capability]bool {
	flags := make(map[Capability]bool, 4)
	for _, c := range AllCapabilities() {
		flags[c] = p.Flag(c)
	}
	return flags
}

// BuiltinProfiles returns the predefined profiles.
func BuiltinProfiles() []PerformanceProfile {
	return []PerformanceProfile{
		mustProfile(ProfileBalanced, true, true, true, true),
		mustProfile(ProfilePerformance, false, true, true, false),
		mustProfile(ProfileMinimal, false, false, false, false),
	}
}
