package domain

// QueryKind classifies what the user wants from an utterance.
type QueryKind int

const (
	QueryUnknown QueryKind = iota
	QueryLoad
	QueryNavigation
	QueryConversion
	QueryExternal
	QueryStepParam
)

// String returns a human-readable query kind.
func (k QueryKind) String() string {
	switch k {
	case QueryLoad:
		return "load"
	case QueryNavigation:
		return "navigation"
	case QueryConversion:
		return "conversion"
	case QueryExternal:
		return "external"
	case QueryStepParam:
		return "step_param"
	default:
		return "unknown"
	}
}

// NavCommand enumerates the navigation and session commands.
type NavCommand int

const (
	NavNone NavCommand = iota
	NavNext
	NavPrevious
	NavRepeat
	NavWhereAmI
	NavStepCount
	NavRemaining
	NavIngredients
	NavSteps
	NavOverview
	NavHelp
	NavQuit
)

// String returns a human-readable navigation command.
func (c NavCommand) String() string {
	switch c {
	case NavNext:
		return "next"
	case NavPrevious:
		return "previous"
	case NavRepeat:
		return "repeat"
	case NavWhereAmI:
		return "where_am_i"
	case NavStepCount:
		return "step_count"
	case NavRemaining:
		return "remaining"
	case NavIngredients:
		return "ingredients"
	case NavSteps:
		return "steps"
	case NavOverview:
		return "overview"
	case NavHelp:
		return "help"
	case NavQuit:
		return "quit"
	default:
		return "none"
	}
}

// ExternalKind enumerates clarification questions answered with search
// links rather than from the loaded recipe.
type ExternalKind int

const (
	ExternalNone ExternalKind = iota
	ExternalHowTo
	ExternalDefinition
	ExternalSubstitute
	ExternalMissing
	ExternalSafety
	ExternalStorage
	ExternalMakeAhead
	ExternalTrouble
)

// ParamKind enumerates step-parameter questions answered from the loaded
// recipe itself.
type ParamKind int

const (
	ParamNone ParamKind = iota
	ParamQuantity
	ParamTime
	ParamTemperature
)

// Query is a classified user utterance. Exactly one of Nav, External, or
// Param is meaningful, selected by Kind. Topic carries the extracted
// subject ("basil" in "how much basil do I need"); conversion queries fill
// Amount/FromUnit/ToUnit instead.
type Query struct {
	Kind     QueryKind
	Nav      NavCommand
	External ExternalKind
	Param    ParamKind
	Topic    string
	Amount   float64
	FromUnit string
	ToUnit   string
	Raw      string
}
