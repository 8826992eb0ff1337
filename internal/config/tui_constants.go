package config

// Layout constants.
const (
	// MinProgressWidth is the narrowest the phase progress bar gets.
	MinProgressWidth = 10

	// TargetProgressWidth is the preferred progress bar width.
	TargetProgressWidth = 40

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// ProblemNameWidth is the display width reserved for problem names.
	ProblemNameWidth = 28

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Display limits.
const (
	// GuideBenefitsShown limits benefits listed per strategy in the guide.
	GuideBenefitsShown = 2

	// HistoryLimit caps the workouts listed in the history view.
	HistoryLimit = 10
)

// Input constraints.
const (
	// MaxProblemNameLength is the maximum problem name length.
	MaxProblemNameLength = 60
)
