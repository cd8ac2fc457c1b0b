package constants

const (
	RoleEngineer = "ENGINEER"
	RoleManager  = "MANAGER"
)

// CapacityCeiling is the hard business ceiling the assignment guard checks
// against. It is intentionally separate from DefaultMaxCapacity: reporting
// computes remaining capacity from the user's own MaxCapacity, while the
// write guard always compares against 100.
const (
	CapacityCeiling    = 100
	DefaultMaxCapacity = 100

	// Engineers with at least this much remaining capacity count as
	// underutilized in the manager summary.
	UnderutilizedThreshold = 30
)

const (
	PerformanceExcellent  = "Excellent"
	PerformanceGood       = "Good"
	PerformanceAverage    = "Average"
	PerformanceNeedsWork  = "Needs Improvement"
	PerformanceNoProjects = "No Projects Assigned"
)
