package cdp

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/bnema/dozer/internal/application/port"
	"github.com/bnema/dozer/internal/domain/entity"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// imagePatterns are blocked while the images capability is off.
var imagePatterns = []string{
	"*.png", "*.jpg", "*.jpeg", "*.gif", "*.webp", "*.avif", "*.bmp", "*.ico", "*.svg",
}

// webglDisableScript runs before any page script and hides WebGL contexts.
const webglDisableScript = `(() => {
  const blocked = new Set(["webgl", "webgl2", "experimental-webgl"]);
  const wrap = (proto) => {
    if (!proto) return;
    const original = proto.getContext;
    proto.getContext = function (type, ...rest) {
      if (blocked.has(String(type).toLowerCase())) return null;
      return original.call(this, type, ...rest);
    };
  };
  wrap(window.HTMLCanvasElement && HTMLCanvasElement.prototype);
  wrap(window.OffscreenCanvas && OffscreenCanvas.prototype);
})();`

// Settings is the browser-wide capability set. Writes only change memory;
// sessions push the current snapshot to their page before each load.
type Settings struct {
	mu    sync.RWMutex
	flags map[entity.Capability]bool
}

var _ port.EngineSettings = (*Settings)(nil)

// NewSettings returns settings with every capability enabled.
func NewSettings() *Settings {
	flags := make(map[entity.Capability]bool, len(entity.AllCapabilities()))
	for _, c := range entity.AllCapabilities() {
		flags[c] = true
	}
	return &Settings{flags: flags}
}

func (s *Settings) SetFlag(name entity.Capability, enabled bool) {
	s.mu.Lock()
	s.flags[name] = enabled
	s.mu.Unlock()
}

func (s *Settings) Flag(name entity.Capability) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[name]
}

// Snapshot returns a copy of the current flags.
func (s *Settings) Snapshot() map[entity.Capability]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.flags)
}

// blockedURLs returns the request patterns to block for flags.
func blockedURLs(flags map[entity.Capability]bool) []string {
	if flags[entity.CapabilityImages] {
		return []string{}
	}
	return imagePatterns
}

func reducedMotion(flags map[entity.Capability]bool) string {
	if flags[entity.CapabilityAnimations] {
		return "no-preference"
	}
	return "reduce"
}

// pageSettings tracks what has been installed on one page.
type pageSettings struct {
	webglScript page.ScriptIdentifier
}

// apply returns an action that brings the page in line with flags. It must
// run on the session worker, which owns ps.
func (ps *pageSettings) apply(flags map[entity.Capability]bool) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if err := emulation.SetScriptExecutionDisabled(!flags[entity.CapabilityJavaScript]).Do(ctx); err != nil {
			return fmt.Errorf("set javascript: %w", err)
		}
		if err := network.Enable().Do(ctx); err != nil {
			return fmt.Errorf("enable network: %w", err)
		}
		if err := network.SetBlockedURLS(blockedURLs(flags)).Do(ctx); err != nil {
			return fmt.Errorf("set images: %w", err)
		}
		features := []*emulation.MediaFeature{{Name: "prefers-reduced-motion", Value: reducedMotion(flags)}}
		if err := emulation.SetEmulatedMedia().WithFeatures(features).Do(ctx); err != nil {
			return fmt.Errorf("set animations: %w", err)
		}
		return ps.applyWebGL(ctx, flags[entity.CapabilityWebGL])
	})
}

func (ps *pageSettings) applyWebGL(ctx context.Context, enabled bool) error {
	switch {
	case !enabled && ps.webglScript == "":
		id, err := page.AddScriptToEvaluateOnNewDocument(webglDisableScript).Do(ctx)
		if err != nil {
			return fmt.Errorf("disable webgl: %w", err)
		}
		ps.webglScript = id
	case enabled && ps.webglScript != "":
		if err := page.RemoveScriptToEvaluateOnNewDocument(ps.webglScript).Do(ctx); err != nil {
			return fmt.Errorf("enable webgl: %w", err)
		}
		ps.webglScript = ""
	}
	return nil
}
