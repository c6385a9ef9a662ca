package models

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// MemberConstraints holds one member's standing weekly commitments and
// month-scoped day-off requests. FixedShifts is keyed by weekday name and is
// portable across months; DaysOff is keyed by "YYYY-MM".
type MemberConstraints struct {
	FixedShifts map[string]string   `json:"fixed_shifts,omitempty"`
	DaysOff     map[string][]string `json:"days_off,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// ConstraintSet maps member name to their constraints.
type ConstraintSet map[string]MemberConstraints

// MonthKey formats the "YYYY-MM" key used for day-off scoping.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// DaysOffFor returns the member's day-off set for one month. Missing members
// or months yield nil.
func (cs ConstraintSet) DaysOffFor(member, monthKey string) []string {
	return cs[member].DaysOff[monthKey]
}

// FixedShiftFor returns the shift type name the member is committed to on the
// given weekday, or "" when none.
func (cs ConstraintSet) FixedShiftFor(member, weekday string) string {
	return cs[member].FixedShifts[weekday]
}

// Validate checks every fixed rule against the catalog: a rule naming a shift
// type that does not exist for its weekday is rejected at save time rather
// than silently ignored during assignment.
func (cs ConstraintSet) Validate(catalog ShiftCatalog) error {
	members := make([]string, 0, len(cs))
	for m := range cs {
		members = append(members, m)
	}
	sort.Strings(members)
	for _, member := range members {
		for _, day := range WeekdayNames {
			shift, ok := cs[member].FixedShifts[day]
			if !ok {
				continue
			}
			if _, exists := catalog[day][shift]; !exists {
				return &ConfigError{
					Field:  fmt.Sprintf("constraints.%s.fixed_shifts.%s", member, day),
					Detail: fmt.Sprintf("shift type %q is not configured for %s", shift, day),
				}
			}
		}
	}
	return nil
}

// isMonthKey reports whether a constraint document key is a "YYYY-MM" month
// scope rather than a named field.
func isMonthKey(key string) bool {
	if len(key) != 7 || key[4] != '-' {
		return false
	}
	for i, r := range key {
		if i == 4 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type monthSection struct {
	DaysOff []string `yaml:"days_off"`
}

// UnmarshalYAML lifts the interchange document's member block, where month
// scopes sit inline next to fixed_shifts and notes, into the explicit shape.
func (m *MemberConstraints) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("constraint block: expected a mapping, got %v", value.Kind)
	}
	*m = MemberConstraints{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		switch {
		case keyNode.Value == "fixed_shifts":
			if err := valNode.Decode(&m.FixedShifts); err != nil {
				return fmt.Errorf("fixed_shifts: %w", err)
			}
		case keyNode.Value == "notes":
			if err := valNode.Decode(&m.Notes); err != nil {
				return fmt.Errorf("notes: %w", err)
			}
		case isMonthKey(keyNode.Value):
			var sec monthSection
			if err := valNode.Decode(&sec); err != nil {
				return fmt.Errorf("%s: %w", keyNode.Value, err)
			}
			if m.DaysOff == nil {
				m.DaysOff = make(map[string][]string)
			}
			m.DaysOff[keyNode.Value] = sec.DaysOff
		}
	}
	return nil
}

// MarshalYAML writes the member block back in the interchange layout:
// fixed_shifts first, then month scopes in order, then notes.
func (m MemberConstraints) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	appendEntry := func(key string, val interface{}) error {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(val); err != nil {
			return err
		}
		node.Content = append(node.Content, keyNode, valNode)
		return nil
	}
	if err := appendEntry("fixed_shifts", m.FixedShifts); err != nil {
		return nil, err
	}
	months := make([]string, 0, len(m.DaysOff))
	for k := range m.DaysOff {
		months = append(months, k)
	}
	sort.Strings(months)
	for _, k := range months {
		if err := appendEntry(k, monthSection{DaysOff: m.DaysOff[k]}); err != nil {
			return nil, err
		}
	}
	if err := appendEntry("notes", m.Notes); err != nil {
		return nil, err
	}
	return node, nil
}
