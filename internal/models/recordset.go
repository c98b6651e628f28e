// ABOUTME: RecordSet groups parsed records by category.
// ABOUTME: Used both per-file (one slice populated) and as the consolidated dataset.
package models

// RecordSet holds records for every category. A per-file set has exactly one
// slice populated; a consolidated set may have any number.
type RecordSet struct {
	Recovery []RecoveryRecord      `json:"recovery" yaml:"recovery"`
	Sleep    []SleepRecord         `json:"sleep" yaml:"sleep"`
	Workouts []WorkoutRecord       `json:"workouts" yaml:"workouts"`
	Daily    []DailyActivityRecord `json:"daily" yaml:"daily"`
	Journal  []JournalRecord       `json:"journal" yaml:"journal"`
	Strength []StrengthRecord      `json:"stronglifts" yaml:"stronglifts"`
}

// Append concatenates another set onto this one, preserving order.
// No deduplication: two files reporting the same date both survive.
func (s *RecordSet) Append(o *RecordSet) {
	s.Recovery = append(s.Recovery, o.Recovery...)
	s.Sleep = append(s.Sleep, o.Sleep...)
	s.Workouts = append(s.Workouts, o.Workouts...)
	s.Daily = append(s.Daily, o.Daily...)
	s.Journal = append(s.Journal, o.Journal...)
	s.Strength = append(s.Strength, o.Strength...)
}

// Len returns the total record count across all categories.
func (s *RecordSet) Len() int {
	return len(s.Recovery) + len(s.Sleep) + len(s.Workouts) +
		len(s.Daily) + len(s.Journal) + len(s.Strength)
}

// Count returns the record count for one category.
func (s *RecordSet) Count(c Category) int {
	switch c {
	case CategoryRecovery:
		return len(s.Recovery)
	case CategorySleep:
		return len(s.Sleep)
	case CategoryWorkout:
		return len(s.Workouts)
	case CategoryDaily:
		return len(s.Daily)
	case CategoryJournal:
		return len(s.Journal)
	case CategoryStrength:
		return len(s.Strength)
	}
	return 0
}

// List extracts the slice for one category as a RecordList.
func (s *RecordSet) List(c Category) RecordList {
	switch c {
	case CategoryRecovery:
		return RecoveryList(s.Recovery)
	case CategorySleep:
		return SleepList(s.Sleep)
	case CategoryWorkout:
		return WorkoutList(s.Workouts)
	case CategoryDaily:
		return DailyList(s.Daily)
	case CategoryJournal:
		return JournalList(s.Journal)
	case CategoryStrength:
		return StrengthList(s.Strength)
	}
	return nil
}

// RecordList is the payload of a single-category parse result. Exactly
// one concrete list type exists per category, so a parsed file cannot
// carry records of more than one kind.
type RecordList interface {
	Category() Category
	Len() int

	// AppendTo concatenates the list onto the matching slice of a set.
	AppendTo(s *RecordSet)
}

type RecoveryList []RecoveryRecord

func (l RecoveryList) Category() Category    { return CategoryRecovery }
func (l RecoveryList) Len() int              { return len(l) }
func (l RecoveryList) AppendTo(s *RecordSet) { s.Recovery = append(s.Recovery, l...) }

type SleepList []SleepRecord

func (l SleepList) Category() Category    { return CategorySleep }
func (l SleepList) Len() int              { return len(l) }
func (l SleepList) AppendTo(s *RecordSet) { s.Sleep = append(s.Sleep, l...) }

type WorkoutList []WorkoutRecord

func (l WorkoutList) Category() Category    { return CategoryWorkout }
func (l WorkoutList) Len() int              { return len(l) }
func (l WorkoutList) AppendTo(s *RecordSet) { s.Workouts = append(s.Workouts, l...) }

type DailyList []DailyActivityRecord

func (l DailyList) Category() Category    { return CategoryDaily }
func (l DailyList) Len() int              { return len(l) }
func (l DailyList) AppendTo(s *RecordSet) { s.Daily = append(s.Daily, l...) }

type JournalList []JournalRecord

func (l JournalList) Category() Category    { return CategoryJournal }
func (l JournalList) Len() int              { return len(l) }
func (l JournalList) AppendTo(s *RecordSet) { s.Journal = append(s.Journal, l...) }

type StrengthList []StrengthRecord

func (l StrengthList) Category() Category    { return CategoryStrength }
func (l StrengthList) Len() int              { return len(l) }
func (l StrengthList) AppendTo(s *RecordSet) { s.Strength = append(s.Strength, l...) }
