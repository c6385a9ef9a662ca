package models

// DefaultTeamMembers seeds a planning session before any roster is imported.
var DefaultTeamMembers = []string{"Chen", "Patel", "Johnson", "Okafor", "Valdez"}

// DefaultShiftConfig is the stock weekly coverage pattern: day and evening
// shifts all week, with night cover three weeknights and a heavier four-shift
// pattern Friday through Sunday.
var DefaultShiftConfig = ShiftCatalog{
	"Monday": {
		"7a-7p":   {Start: "07:00", End: "19:00", Hours: 12},
		"12p-12a": {Start: "12:00", End: "00:00", Hours: 12},
		"7p-7a":   {Start: "19:00", End: "07:00", Hours: 12},
	},
	"Tuesday": {
		"7a-7p":   {Start: "07:00", End: "19:00", Hours: 12},
		"12p-12a": {Start: "12:00", End: "00:00", Hours: 12},
	},
	"Wednesday": {
		"7a-7p":   {Start: "07:00", End: "19:00", Hours: 12},
		"12p-12a": {Start: "12:00", End: "00:00", Hours: 12},
		"7p-7a":   {Start: "19:00", End: "07:00", Hours: 12},
	},
	"Thursday": {
		"7a-7p":   {Start: "07:00", End: "19:00", Hours: 12},
		"12p-12a": {Start: "12:00", End: "00:00", Hours: 12},
		"7p-7a":   {Start: "19:00", End: "07:00", Hours: 12},
	},
	"Friday": {
		"7a-7p":   {Start: "07:00", End: "19:00", Hours: 12},
		"10a-10p": {Start: "10:00", End: "22:00", Hours: 12},
		"2p-2a":   {Start: "14:00", End: "02:00", Hours: 12},
		"7p-7a":   {Start: "19:00", End: "07:00", Hours: 12},
	},
	"Saturday": {
		"7a-7p":   {Start: "07:00", End: "19:00", Hours: 12},
		"10a-10p": {Start: "10:00", End: "22:00", Hours: 12},
		"2p-2a":   {Start: "14:00", End: "02:00", Hours: 12},
		"7p-7a":   {Start: "19:00", End: "07:00", Hours: 12},
	},
	"Sunday": {
		"7a-7p":   {Start: "07:00", End: "19:00", Hours: 12},
		"10a-10p": {Start: "10:00", End: "22:00", Hours: 12},
		"2p-2a":   {Start: "14:00", End: "02:00", Hours: 12},
		"7p-7a":   {Start: "19:00", End: "07:00", Hours: 12},
	},
}
