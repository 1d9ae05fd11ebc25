package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "daycares.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBusinessProfile(t *testing.T) {
	path := writeProfileFile(t, `[{
		"name": "Sunny Side Daycare",
		"slug": "sunny-side",
		"hours": "7 AM to 6 PM",
		"fees": {"Toddler": "$1,000/month"}
	}]`)

	p := LoadBusinessProfile(path)
	require.Equal(t, "Sunny Side Daycare", p.Name)
	require.Equal(t, "sunny-side", p.Slug)
	require.Equal(t, "$1,000/month", p.Fees["Toddler"])
}

func TestLoadBusinessProfileMissingFileUsesDefault(t *testing.T) {
	p := LoadBusinessProfile(filepath.Join(t.TempDir(), "nope.json"))
	require.Equal(t, "Our Daycare", p.Name)
	require.NotNil(t, p.Fees)
}

func TestLoadBusinessProfilesRejectsBadJSON(t *testing.T) {
	path := writeProfileFile(t, `{"not": "an array"}`)
	_, err := LoadBusinessProfiles(path)
	require.Error(t, err)
}

func TestFeesLineIsSortedAndStable(t *testing.T) {
	p := &BusinessProfile{Fees: map[string]string{
		"Toddler":   "$1,000/month",
		"Infant":    "$1,200/month",
		"Preschool": "$900/month",
	}}
	require.Equal(t, "Infant: $1,200/month, Preschool: $900/month, Toddler: $1,000/month", p.FeesLine())
}

func TestFeesLineEmpty(t *testing.T) {
	p := &BusinessProfile{}
	require.Equal(t, "", p.FeesLine())
}

func TestProgramsLine(t *testing.T) {
	p := &BusinessProfile{Programs: []string{"Infants", "Toddlers"}}
	require.Equal(t, "Infants, Toddlers", p.ProgramsLine())
}
