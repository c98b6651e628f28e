// ABOUTME: Built-in header alias tables for known export schemas.
// ABOUTME: Static tier is compiled in; vendor column names are first-class aliases.
package alias

import "github.com/harperreed/pulse/internal/models"

// Target field names, shared between the alias tables, the header resolver,
// and the row materializer.
const (
	FieldDate = "date"

	// recovery
	FieldRecoveryScore = "recovery_score"
	FieldHRV           = "hrv"
	FieldRestingHR     = "resting_heart_rate"
	FieldSkinTemp      = "skin_temp"

	// sleep
	FieldTotalSleep = "total_sleep"
	FieldEfficiency = "sleep_efficiency"
	FieldSlowWave   = "slow_wave"
	FieldREM        = "rem"
	FieldLight      = "light"
	FieldAwake      = "awake"
	FieldSleepScore = "sleep_score"

	// workout
	FieldStrain      = "strain"
	FieldEnergy      = "energy"
	FieldAvgHR       = "avg_heart_rate"
	FieldMaxHR       = "max_heart_rate"
	FieldDuration    = "duration"
	FieldWorkoutType = "workout_type"

	// daily activity
	FieldSteps       = "steps"
	FieldCalories    = "calories_burned"
	FieldAmbientTemp = "ambient_temp"

	// journal
	FieldQuestion    = "question_text"
	FieldAnsweredYes = "answered_yes"
	FieldNotes       = "notes"

	// strength
	FieldExercise  = "exercise"
	FieldWeight    = "weight"
	FieldReps      = "reps"
	FieldSets      = "sets"
	FieldVolume    = "volume"
	FieldOneRepMax = "one_rep_max"
)

// fieldOrder lists the target fields per category. Order matters only for
// stable output (mapping reports, tests).
var fieldOrder = map[models.Category][]string{
	models.CategoryRecovery: {
		FieldDate, FieldRecoveryScore, FieldHRV, FieldRestingHR, FieldSkinTemp,
	},
	models.CategorySleep: {
		FieldDate, FieldTotalSleep, FieldEfficiency, FieldSlowWave,
		FieldREM, FieldLight, FieldAwake, FieldSleepScore,
	},
	models.CategoryWorkout: {
		FieldDate, FieldStrain, FieldEnergy, FieldAvgHR, FieldMaxHR,
		FieldDuration, FieldWorkoutType,
	},
	models.CategoryDaily: {
		FieldDate, FieldSteps, FieldCalories, FieldAmbientTemp,
	},
	models.CategoryJournal: {
		FieldDate, FieldQuestion, FieldAnsweredYes, FieldNotes,
	},
	models.CategoryStrength: {
		FieldDate, FieldExercise, FieldWeight, FieldReps, FieldSets,
		FieldVolume, FieldOneRepMax, FieldDuration,
	},
}

// Fields returns the target field names for a category.
func Fields(c models.Category) []string {
	return fieldOrder[c]
}

// static is the built-in alias tier. All entries are lower-case; the exact
// WHOOP and StrongLifts export column names appear verbatim so that known
// vendor files resolve on the exact-match tier, before any fuzzy logic.
var static = map[models.Category]map[string][]string{
	models.CategoryRecovery: {
		FieldDate:          {"date", "day", "cycle start time", "cycle timezone start", "timestamp"},
		FieldRecoveryScore: {"recovery score %", "recovery score", "recovery", "readiness score", "readiness"},
		FieldHRV:           {"heart rate variability (ms)", "hrv (ms)", "hrv", "rmssd", "heart rate variability"},
		FieldRestingHR:     {"resting heart rate (bpm)", "resting heart rate", "rhr"},
		FieldSkinTemp:      {"skin temp (celsius)", "skin temp", "skin temperature"},
	},
	models.CategorySleep: {
		FieldDate:       {"date", "day", "cycle start time", "sleep onset"},
		FieldTotalSleep: {"asleep duration (min)", "total sleep time", "time asleep", "total sleep"},
		FieldEfficiency: {"sleep efficiency %", "sleep efficiency"},
		FieldSlowWave:   {"deep (sws) duration (min)", "deep sleep time", "deep sleep", "sws duration"},
		FieldREM:        {"rem duration (min)", "rem sleep time", "rem duration", "rem sleep"},
		FieldLight:      {"light sleep duration (min)", "light sleep time", "light sleep duration", "light sleep"},
		FieldAwake:      {"awake duration (min)", "wake time", "awake duration", "time awake"},
		FieldSleepScore: {"sleep performance %", "sleep score", "sleep performance"},
	},
	models.CategoryWorkout: {
		FieldDate:        {"cycle start time", "workout start time", "date", "day", "start time"},
		FieldStrain:      {"activity strain", "strain", "workout strain", "strain score"},
		FieldEnergy:      {"energy burned (cal)", "kilojoules", "calories burned", "energy"},
		FieldAvgHR:       {"average hr (bpm)", "average heart rate", "avg hr"},
		FieldMaxHR:       {"max hr (bpm)", "max heart rate", "max hr"},
		FieldDuration:    {"duration (min)", "workout duration", "duration"},
		FieldWorkoutType: {"activity name", "workout type", "sport", "activity"},
	},
	models.CategoryDaily: {
		FieldDate:        {"date", "day", "cycle start time"},
		FieldSteps:       {"steps", "step count", "daily steps"},
		FieldCalories:    {"calories burned", "energy burned (cal)", "total calories", "calories"},
		FieldAmbientTemp: {"ambient temperature", "temperature (celsius)", "ambient temp"},
	},
	models.CategoryJournal: {
		FieldDate:        {"cycle start time", "date", "day"},
		FieldQuestion:    {"question text", "question", "journal question"},
		FieldAnsweredYes: {"answered yes", "answer", "response"},
		FieldNotes:       {"notes", "notes text", "comment"},
	},
	models.CategoryStrength: {
		FieldDate:      {"date", "workout date", "day"},
		FieldExercise:  {"exercise", "exercise name", "lift", "movement"},
		FieldWeight:    {"weight", "weight (kg)", "weight (lb)", "load"},
		FieldReps:      {"reps", "repetitions", "reps per set"},
		FieldSets:      {"sets", "set count"},
		FieldVolume:    {"volume", "total volume", "tonnage"},
		FieldOneRepMax: {"1rm", "one rep max", "estimated 1rm"},
		FieldDuration:  {"workout duration", "duration", "time"},
	},
}

// Static returns the built-in aliases for a field. The returned slice is
// shared; callers must not mutate it.
func Static(c models.Category, field string) []string {
	return static[c][field]
}
