package config

import (
	"sort"
	"strings"

	"github.com/bnema/dozer/internal/domain/entity"
)

// PerformanceProfiles converts the declared profiles into domain profiles,
// sorted by name. Declared names are lowercased like the selected profile.
func (c *PerformanceConfig) PerformanceProfiles() ([]entity.PerformanceProfile, error) {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	profiles := make([]entity.PerformanceProfile, 0, len(names))
	for _, name := range names {
		pc := c.Profiles[name]
		p, err := entity.NewPerformanceProfile(strings.ToLower(name), pc.WebGL, pc.JavaScript, pc.Images, pc.Animations)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
