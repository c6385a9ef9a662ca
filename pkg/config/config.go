// Package config round-trips the planning state through the human-editable
// YAML interchange document: team members, weekly shift configuration and
// per-member constraints.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/toolsched/rota-api-go/pkg/models"
)

// Document is the interchange format. The examples block documents the
// constraint schema for people editing the file by hand.
type Document struct {
	TeamMembers        []string             `yaml:"team_members"`
	ShiftConfiguration models.ShiftCatalog  `yaml:"shift_configuration"`
	Constraints        models.ConstraintSet `yaml:"constraints"`
	ExportDate         string               `yaml:"export_date"`
	Examples           DocBlock             `yaml:"examples,omitempty"`
}

// DocBlock is the embedded schema documentation.
type DocBlock struct {
	Description     string            `yaml:"description,omitempty"`
	ConstraintTypes map[string]string `yaml:"constraint_types,omitempty"`
}

// ImportResult carries the parts a document actually provided. Nil/empty
// fields were absent and must not clobber existing state.
type ImportResult struct {
	TeamMembers        []string
	ShiftConfiguration models.ShiftCatalog
	Constraints        models.ConstraintSet
	Summary            []string
}

// Export serializes the planning state. When no constraints exist but a
// roster does, up to three illustrative example entries are synthesized so
// the exported file documents the schema; they are placeholders, not real
// commitments.
func Export(roster []string, catalog models.ShiftCatalog, constraints models.ConstraintSet, now time.Time) ([]byte, error) {
	cs := constraints
	if len(cs) == 0 && len(roster) > 0 {
		cs = exampleConstraints(roster, now)
	}

	doc := Document{
		TeamMembers:        roster,
		ShiftConfiguration: catalog,
		Constraints:        cs,
		ExportDate:         now.Format(time.RFC3339),
		Examples: DocBlock{
			Description: "Simplified configuration with day-of-week fixed shifts",
			ConstraintTypes: map[string]string{
				"fixed_shifts": `Day of week assignments (e.g., Monday: "7a-7p") - portable across months`,
				"days_off":     "Specific dates when unavailable (month-specific under YYYY-MM key)",
				"notes":        "Additional information about the team member",
			},
		},
	}
	return yaml.Marshal(doc)
}

// exampleConstraints builds the three documentation entries: a member with a
// set weekly day-shift pattern, one with day-off requests only, and a night
// shift specialist.
func exampleConstraints(roster []string, now time.Time) models.ConstraintSet {
	monthKey := models.MonthKey(now.Year(), int(now.Month()))
	prefix := monthKey + "-"
	cs := make(models.ConstraintSet)

	cs[roster[0]] = models.MemberConstraints{
		FixedShifts: map[string]string{
			"Monday":    "7a-7p",
			"Wednesday": "7a-7p",
			"Friday":    "7a-7p",
		},
		DaysOff: map[string][]string{monthKey: {prefix + "05", prefix + "12"}},
		Notes:   "Works Monday/Wednesday/Friday day shifts, prefers day shifts",
	}
	if len(roster) > 1 {
		cs[roster[1]] = models.MemberConstraints{
			FixedShifts: map[string]string{},
			DaysOff:     map[string][]string{monthKey: {prefix + "10", prefix + "11", prefix + "25"}},
			Notes:       "Prefers weekend shifts, vacation mid-month",
		}
	}
	if len(roster) > 2 {
		cs[roster[2]] = models.MemberConstraints{
			FixedShifts: map[string]string{
				"Tuesday":  "7p-7a",
				"Thursday": "7p-7a",
				"Saturday": "7p-7a",
			},
			DaysOff: map[string][]string{monthKey: {}},
			Notes:   "Night shift specialist, works Tuesday/Thursday/Saturday nights",
		}
	}
	return cs
}

// Import parses an interchange document. A document that does not parse
// yields ErrMalformedDocument; one that parses but carries none of the three
// recognized sections yields ErrEmptyDocument. A shift configuration with
// unparseable times is rejected before it can reach the planning state.
func Import(data []byte) (*ImportResult, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedDocument, err)
	}

	res := &ImportResult{}
	if len(doc.TeamMembers) > 0 {
		res.TeamMembers = doc.TeamMembers
		res.Summary = append(res.Summary, fmt.Sprintf("Team members: %d members", len(doc.TeamMembers)))
	}
	if doc.ShiftConfiguration.TotalShiftTypes() > 0 {
		if err := doc.ShiftConfiguration.Validate(); err != nil {
			return nil, err
		}
		res.ShiftConfiguration = doc.ShiftConfiguration
		res.Summary = append(res.Summary, "Shift configuration")
	}
	if len(doc.Constraints) > 0 {
		res.Constraints = doc.Constraints
		res.Summary = append(res.Summary, constraintSummary(doc.Constraints))
	}

	if len(res.Summary) == 0 {
		return nil, models.ErrEmptyDocument
	}
	return res, nil
}

func constraintSummary(cs models.ConstraintSet) string {
	fixed := 0
	daysOff := 0
	for _, mc := range cs {
		if len(mc.FixedShifts) > 0 {
			fixed++
		}
		for _, dates := range mc.DaysOff {
			daysOff += len(dates)
		}
	}
	summary := "Constraints:"
	switch {
	case fixed > 0 && daysOff > 0:
		summary += fmt.Sprintf(" %d weekly schedules, %d days off", fixed, daysOff)
	case fixed > 0:
		summary += fmt.Sprintf(" %d weekly schedules", fixed)
	case daysOff > 0:
		summary += fmt.Sprintf(" %d days off", daysOff)
	default:
		summary += fmt.Sprintf(" %d members", len(cs))
	}
	return summary
}
