package schema

// LogicType determines the comparison semantics for a matching rule.
type LogicType string

// Supported rule logic types.
const (
	LogicIdentity        LogicType = "identity"            // Normalized equality, optionally within a tolerance fraction
	LogicIdentityUpgrade LogicType = "identity_upgrade"    // Tiered hierarchy, equal or better tier passes
	LogicIdentityFlag    LogicType = "identity_flag"       // Boolean capability presence
	LogicThreshold       LogicType = "threshold"           // Numeric comparison per ThresholdDirection
	LogicFit             LogicType = "fit"                 // Physical constraint, evaluated as lte, grouped separately
	LogicAppReview       LogicType = "application_review"  // Never auto-decided, always needs an engineer
	LogicOperational     LogicType = "operational"         // Logistics/packaging, informational only
	LogicRangeVoltage    LogicType = "range_voltage_check" // Derived output-voltage check for adjustable regulators
)

// ValidLogicTypes is the allowed set for table validation.
var ValidLogicTypes = map[LogicType]struct{}{
	LogicIdentity:        {},
	LogicIdentityUpgrade: {},
	LogicIdentityFlag:    {},
	LogicThreshold:       {},
	LogicFit:             {},
	LogicAppReview:       {},
	LogicOperational:     {},
	LogicRangeVoltage:    {},
}

// ThresholdDirection selects the comparison for threshold rules.
type ThresholdDirection string

// Threshold directions.
const (
	DirectionGTE           ThresholdDirection = "gte"
	DirectionLTE           ThresholdDirection = "lte"
	DirectionRangeSuperset ThresholdDirection = "range_superset"
)

// Verdict is the per-rule outcome of an evaluation.
type Verdict string

// Rule verdicts. Blocked is a fail that also forces the whole candidate to
// fail regardless of its computed percentage.
const (
	VerdictPass    Verdict = "pass"
	VerdictFail    Verdict = "fail"
	VerdictReview  Verdict = "review"
	VerdictBlocked Verdict = "blocked"
	VerdictSkipped Verdict = "skipped"
)

// EffectKind is the kind of rule adjustment a context answer applies.
type EffectKind string

// Context effect kinds.
const (
	EffectEscalateMandatory EffectKind = "escalate_to_mandatory" // weight becomes 10
	EffectEscalatePrimary   EffectKind = "escalate_to_primary"   // weight becomes at least 9
	EffectNotApplicable     EffectKind = "not_applicable"        // weight becomes 0, rule drops out entirely
	EffectAddReviewFlag     EffectKind = "add_review_flag"       // rule becomes application_review
	EffectSetThreshold      EffectKind = "set_threshold"         // rationale annotated; boundary change needs human sign-off
)

// Rule weight boundaries. A rule at MandatoryWeight that fails forces the
// candidate's overall verdict to failed.
const (
	MinWeight       = 0
	MaxWeight       = 10
	MandatoryWeight = 10
)

// Lifecycle status values reported by catalog providers.
const (
	LifecycleActive   = "active"
	LifecycleNRND     = "nrnd"
	LifecycleEOL      = "eol"
	LifecycleObsolete = "obsolete"
)

// DatabaseBackend identifies a supported cache database backend.
type DatabaseBackend string

// Supported database backends.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidDatabaseBackends is the allowed set for config validation.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// OutputMode identifies a supported output format.
type OutputMode string

// Supported output modes.
const (
	TableOut   OutputMode = "table"
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes is the allowed set for config validation.
var ValidOutputModes = map[OutputMode]struct{}{
	TableOut:   {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// DefaultReviewCredit is the fraction of a rule's weight awarded for a review
// verdict. Tunable via the review-credit config key, not a hard invariant.
const DefaultReviewCredit = 0.5
