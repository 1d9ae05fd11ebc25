package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// BusinessProfile is the static business configuration used to fill templated
// replies and ground the AI fallback. Loaded once at startup, never mutated.
type BusinessProfile struct {
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Address     string            `json:"address"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	Website     string            `json:"website"`
	Hours       string            `json:"hours"`
	Meals       string            `json:"meals"`
	Fees        map[string]string `json:"fees"`
	Programs    []string          `json:"programs"`
	TourLink    string            `json:"tour_link"`
	About       string            `json:"about"`
	Safety      string            `json:"safety"`
	OwnerNumber string            `json:"owner_number"`
}

// LoadBusinessProfiles reads the profile JSON file (an array of profiles).
func LoadBusinessProfiles(path string) ([]BusinessProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	var profiles []BusinessProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse profile file: %w", err)
	}
	return profiles, nil
}

// LoadBusinessProfile returns the first profile in the file, or a minimal
// default when the file is missing or empty.
func LoadBusinessProfile(path string) *BusinessProfile {
	profiles, err := LoadBusinessProfiles(path)
	if err != nil || len(profiles) == 0 {
		return &BusinessProfile{Name: "Our Daycare", Fees: map[string]string{}}
	}
	p := profiles[0]
	if p.Name == "" {
		p.Name = "Our Daycare"
	}
	if p.Fees == nil {
		p.Fees = map[string]string{}
	}
	return &p
}

// FeesLine renders the fee mapping as "Program: price" pairs, sorted by
// program name so the output is stable.
func (p *BusinessProfile) FeesLine() string {
	if len(p.Fees) == 0 {
		return ""
	}
	keys := make([]string, 0, len(p.Fees))
	for k := range p.Fees {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s: %s", k, p.Fees[k]))
	}
	return strings.Join(pairs, ", ")
}

// ProgramsLine renders the ordered program names as a comma-separated list.
func (p *BusinessProfile) ProgramsLine() string {
	return strings.Join(p.Programs, ", ")
}
