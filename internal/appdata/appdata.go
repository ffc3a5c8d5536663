// Package appdata holds the static data tables bundled with the
// application: the subject/curriculum catalogue, the exam schedule and
// the study-timer presets. The tables are read-only; mutable state lives
// in the slot store.
package appdata

import (
	"strings"
	"time"
	"unicode"
)

// Unit is a block of topics within a subject.
type Unit struct {
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}

// Subject is one curriculum subject with its units.
type Subject struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Units map[string]Unit `json:"units"`
}

// ExamInfo is one scheduled exam paper.
type ExamInfo struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Paper string `json:"paper"`
	Code  string `json:"code"`
}

// TimerPreset is a named study-timer duration in minutes.
type TimerPreset struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
}

// Subjects returns the curriculum catalogue.
func Subjects() []Subject {
	return subjects
}

// SubjectByID returns the subject with the given ID (case-insensitive).
func SubjectByID(id string) (Subject, bool) {
	for _, s := range subjects {
		if strings.EqualFold(s.ID, id) {
			return s, true
		}
	}
	return Subject{}, false
}

// TopicsForSubject flattens all topics of a subject across its units.
func TopicsForSubject(id string) []string {
	s, ok := SubjectByID(id)
	if !ok {
		return nil
	}

	var topics []string
	for _, u := range s.Units {
		topics = append(topics, u.Topics...)
	}
	return topics
}

// ExamSchedule returns the exam papers per subject ID.
func ExamSchedule() map[string][]ExamInfo {
	return examSchedule
}

// TimerPresets returns the study-timer presets.
func TimerPresets() []TimerPreset {
	return timerPresets
}

// BreakDurations returns the short and long break lengths in minutes.
func BreakDurations() (short, long int) {
	return 5, 15
}

// FormatSubjectName renders a subject ID for display.
func FormatSubjectName(id string) string {
	if strings.EqualFold(id, "computerscience") {
		return "Computer Science"
	}
	if id == "" {
		return ""
	}
	r := []rune(id)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// DaysUntil returns the number of whole days from today until the given
// date, negative if the date has passed. Both sides are truncated to
// midnight so a paper later today counts as zero days away.
func DaysUntil(date, today time.Time) int {
	truncate := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	return int(truncate(date).Sub(truncate(today)).Hours() / 24)
}

var subjects = []Subject{
	{
		ID:   "physics",
		Name: "Physics",
		Units: map[string]Unit{
			"unit4": {
				Name: "Unit 4",
				Topics: []string{
					"Mechanics and materials (stress-strain, Young modulus)",
					"Waves (superposition, diffraction, interference)",
					"Stationary waves (resonance)",
					"Electric circuits (advanced applications)",
				},
			},
			"unit5": {
				Name: "Unit 5",
				Topics: []string{
					"Circular motion and Simple Harmonic Motion",
					"Electric, magnetic and gravitational fields",
					"Capacitance and energy storage",
					"Electromagnetic induction",
					"Alternating current circuits",
					"Particle physics and quantum phenomena",
				},
			},
			"unit6": {
				Name: "Unit 6",
				Topics: []string{
					"Planning scientific investigations",
					"Measurement techniques and uncertainty analysis",
					"Data analysis and error propagation",
					"Evaluation of experimental methods",
					"Practical skills assessment",
				},
			},
		},
	},
	{
		ID:   "mathematics",
		Name: "Mathematics",
		Units: map[string]Unit{
			"unit3": {
				Name: "Unit 3",
				Topics: []string{
					"Algebra and functions (laws of indices, surds, quadratics)",
					"Coordinate geometry (straight lines, circles)",
					"Sequences and series (arithmetic, geometric)",
					"Differentiation (chain, product, quotient rules)",
					"Integration (substitution, parts, partial fractions)",
					"Numerical methods (root finding, integration)",
				},
			},
			"unit4": {
				Name: "Unit 4",
				Topics: []string{
					"Proof techniques",
					"Binomial expansion for rational indices",
					"Complex numbers (polar form, operations)",
					"Matrices (operations, transformations)",
					"Taylor and Maclaurin series",
					"Advanced differential equations",
					"Vectors (3D operations, vector equations)",
				},
			},
			"decision1": {
				Name: "Decision 1",
				Topics: []string{
					"Algorithms",
					"Graphs and networks",
					"Algorithms on networks",
					"Route inspection (Chinese postman problem)",
					"Critical path analysis",
					"Linear programming",
					"Matchings",
				},
			},
		},
	},
	{
		ID:   "computerScience",
		Name: "Computer Science",
		Units: map[string]Unit{
			"paper3": {
				Name: "Paper 3",
				Topics: []string{
					"Data representation (binary, hexadecimal)",
					"Communication and networking (protocols, security)",
					"Hardware architecture (CPU, memory systems)",
					"System software and development lifecycle",
					"Security and ethics in computing",
					"Emerging technologies and innovations",
				},
			},
			"paper4": {
				Name: "Paper 4",
				Topics: []string{
					"Programming paradigms (object-oriented, functional)",
					"Abstract data types and data structures",
					"Algorithm design, efficiency and trace tables",
					"Testing methodologies and implementation",
					"Documentation and evaluation techniques",
				},
			},
		},
	},
}

var examSchedule = map[string][]ExamInfo{
	"physics": {
		{Date: "2025-05-29", Time: "11:30 - 13:15", Paper: "Physics Unit 4", Code: "WPH14 01"},
		{Date: "2025-06-04", Time: "08:30 - 10:15", Paper: "Physics Unit 5", Code: "WPH15 01"},
		{Date: "2025-06-09", Time: "09:00 - 10:20", Paper: "Physics Unit 6 (Practical)", Code: "WPH16 01"},
	},
	"mathematics": {
		{Date: "2025-05-15", Time: "11:30 - 13:00", Paper: "Maths D1: Decision 1", Code: "WDM11 01"},
		{Date: "2025-05-29", Time: "09:00 - 10:30", Paper: "Maths P3: Pure 3", Code: "WMA13 01"},
		{Date: "2025-06-05", Time: "11:30 - 13:00", Paper: "Maths P4: Pure 4", Code: "WMA14 01"},
	},
	"computerScience": {
		{Date: "2025-05-21", Time: "11:30 - 13:00", Paper: "Comp Sci Paper 3 (Advanced Theory)", Code: "9618 32"},
		{Date: "2025-05-23", Time: "09:00 - 11:30", Paper: "Comp Sci Paper 4 (Practical)", Code: "9618 42"},
	},
}

var timerPresets = []TimerPreset{
	{Name: "Pomodoro", Duration: 25},
	{Name: "Extended Focus", Duration: 45},
	{Name: "Deep Work", Duration: 60},
	{Name: "Long Session", Duration: 120},
}
