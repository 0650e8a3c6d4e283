// Package state defines the processing state threaded through the
// content-adaptation pipeline. Stages never mutate the state they
// receive; each returns a clone that is a structural superset of its
// input, so accumulated outputs are never lost between routing steps.
package state

// MaxIterations bounds the number of routing decisions per run. The
// router's predicates depend on mutable keys, so a stage that fails to
// set its slot would otherwise loop forever.
const MaxIterations = 5

// Focus names the last completed milestone of a run.
type Focus string

const (
	FocusStart             Focus = "start"
	FocusProfileAnalyzed   Focus = "profile_analyzed"
	FocusMicroContentDone  Focus = "micro_content_complete"
	FocusSyntaxSimplified  Focus = "syntax_simplified"
	FocusContentGenerated  Focus = "content_generation_complete"
	FocusAllComplete       Focus = "all_complete"
)

// DifficultyType is the classified learning-support need.
type DifficultyType string

const (
	DifficultyADHD     DifficultyType = "ADHD"
	DifficultyDyslexia DifficultyType = "Dyslexia"
	DifficultyCombined DifficultyType = "Combined"
	DifficultyNone     DifficultyType = "None"
)

// Analysis is the profile analyzer's classification result.
type Analysis struct {
	DifficultyType   DifficultyType    `json:"difficulty_type"`
	SeverityLevel    int               `json:"severity_level"`
	SpecificFeatures map[string]any    `json:"specific_features,omitempty"`
	Strengths        map[string]any    `json:"strengths,omitempty"`
}

// SupportStrategies holds recommended strategies grouped by priority.
type SupportStrategies struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary,omitempty"`
}

// UserProfile carries the questionnaire answers and, once the analyzer
// has run, the classification and strategies derived from them.
type UserProfile struct {
	QuestionnaireAnswers map[string]any     `json:"questionnaire_answers"`
	Analysis             *Analysis          `json:"analysis,omitempty"`
	SupportStrategies    *SupportStrategies `json:"support_strategies,omitempty"`
}

// LearningMaterials is the source document. Immutable within one run
// after initial load.
type LearningMaterials struct {
	Title                       string `json:"title"`
	CurrentContent              string `json:"current_content"`
	Type                        string `json:"type"`
	DifficultyLevel             string `json:"difficulty_level"`
	EstimatedReadingTimeMinutes int    `json:"estimated_reading_time_minutes"`
}

// MicroUnit is a bounded-duration chunk of learning content.
// EstimatedTimeMinutes is always >= 1; Content is non-empty after
// label cleanup.
type MicroUnit struct {
	Content              string   `json:"content"`
	UnitNumber           int      `json:"unit_number"`
	EstimatedTimeMinutes int      `json:"estimated_time_minutes"`
	KeyPoints            []string `json:"key_points,omitempty"`
	CheckQuestions       []string `json:"check_questions,omitempty"`
	LearningObjective    string   `json:"learning_objective,omitempty"`
}

// SimplifiedText is one of two shapes: three parallel difficulty tiers
// of the same passage, or a single simplified passage plus a vocabulary
// mapping. Exactly one shape is populated per run.
type SimplifiedText struct {
	Basic        string            `json:"basic,omitempty"`
	Intermediate string            `json:"intermediate,omitempty"`
	Advanced     string            `json:"advanced,omitempty"`
	Content      string            `json:"content,omitempty"`
	Vocabulary   map[string]string `json:"vocabulary,omitempty"`
}

// HasTiers reports whether the three-tier shape is populated.
func (s *SimplifiedText) HasTiers() bool {
	return s != nil && (s.Basic != "" || s.Intermediate != "" || s.Advanced != "")
}

// DetailedUnit is the expanded form of one MicroUnit. UnitNumber
// matches the source unit.
type DetailedUnit struct {
	UnitNumber           int    `json:"unit_number"`
	EstimatedTimeMinutes int    `json:"estimated_time_minutes"`
	Summary              string `json:"summary"`
	DetailedContent      string `json:"detailed_content"`
}

// ProcessedContent accumulates stage outputs. Stages add fields; none
// is ever cleared once set.
type ProcessedContent struct {
	MicroUnits          []MicroUnit       `json:"micro_units,omitempty"`
	SimplifiedText      *SimplifiedText   `json:"simplified_text,omitempty"`
	DetailedUnits       []DetailedUnit    `json:"detailed_units,omitempty"`
	Sections            []string          `json:"sections,omitempty"`
	Highlighted         map[string]string `json:"highlighted,omitempty"`
	GeneralToolsApplied bool              `json:"general_tools_applied,omitempty"`
}

// InteractionEntry is one audit-trail record. Entries are append-only
// and strictly in execution order.
type InteractionEntry struct {
	Step   string   `json:"step"`
	Tool   string   `json:"tool,omitempty"`
	Memory []string `json:"memory"`
}

// ProcessingState is the single document threaded through the
// orchestrator. One instance per run, owned exclusively by that run.
type ProcessingState struct {
	UserProfile        UserProfile        `json:"user_profile"`
	LearningMaterials  LearningMaterials  `json:"learning_materials"`
	ProcessedContent   ProcessedContent   `json:"processed_content"`
	InteractionHistory []InteractionEntry `json:"interaction_history"`
	CurrentFocus       Focus              `json:"current_focus"`
	Metadata           map[string]string  `json:"metadata,omitempty"`
	IterationCount     int                `json:"iteration_count"`
}

// New returns an initial state for the given profile and materials.
func New(profile UserProfile, materials LearningMaterials) *ProcessingState {
	return &ProcessingState{
		UserProfile:        profile,
		LearningMaterials:  materials,
		InteractionHistory: []InteractionEntry{},
		CurrentFocus:       FocusStart,
		Metadata:           map[string]string{},
	}
}

// Clone deep-copies the state. Stages clone before writing so the
// caller's value is never aliased.
func (s *ProcessingState) Clone() *ProcessingState {
	out := *s

	out.UserProfile.QuestionnaireAnswers = cloneAnyMap(s.UserProfile.QuestionnaireAnswers)
	if s.UserProfile.Analysis != nil {
		a := *s.UserProfile.Analysis
		a.SpecificFeatures = cloneAnyMap(a.SpecificFeatures)
		a.Strengths = cloneAnyMap(a.Strengths)
		out.UserProfile.Analysis = &a
	}
	if s.UserProfile.SupportStrategies != nil {
		st := SupportStrategies{
			Primary:   append([]string(nil), s.UserProfile.SupportStrategies.Primary...),
			Secondary: append([]string(nil), s.UserProfile.SupportStrategies.Secondary...),
		}
		out.UserProfile.SupportStrategies = &st
	}

	out.ProcessedContent.MicroUnits = cloneUnits(s.ProcessedContent.MicroUnits)
	if s.ProcessedContent.SimplifiedText != nil {
		st := *s.ProcessedContent.SimplifiedText
		if st.Vocabulary != nil {
			v := make(map[string]string, len(st.Vocabulary))
			for k, val := range st.Vocabulary {
				v[k] = val
			}
			st.Vocabulary = v
		}
		out.ProcessedContent.SimplifiedText = &st
	}
	out.ProcessedContent.DetailedUnits = append([]DetailedUnit(nil), s.ProcessedContent.DetailedUnits...)
	out.ProcessedContent.Sections = append([]string(nil), s.ProcessedContent.Sections...)
	if s.ProcessedContent.Highlighted != nil {
		h := make(map[string]string, len(s.ProcessedContent.Highlighted))
		for k, v := range s.ProcessedContent.Highlighted {
			h[k] = v
		}
		out.ProcessedContent.Highlighted = h
	}

	out.InteractionHistory = make([]InteractionEntry, len(s.InteractionHistory))
	for i, e := range s.InteractionHistory {
		e.Memory = append([]string(nil), e.Memory...)
		out.InteractionHistory[i] = e
	}

	if s.Metadata != nil {
		m := make(map[string]string, len(s.Metadata))
		for k, v := range s.Metadata {
			m[k] = v
		}
		out.Metadata = m
	}

	return &out
}

// AppendHistory returns the state with one more audit entry.
func (s *ProcessingState) AppendHistory(step, tool string, memory ...string) {
	s.InteractionHistory = append(s.InteractionHistory, InteractionEntry{
		Step:   step,
		Tool:   tool,
		Memory: memory,
	})
}

func cloneUnits(units []MicroUnit) []MicroUnit {
	if units == nil {
		return nil
	}
	out := make([]MicroUnit, len(units))
	for i, u := range units {
		u.KeyPoints = append([]string(nil), u.KeyPoints...)
		u.CheckQuestions = append([]string(nil), u.CheckQuestions...)
		out[i] = u
	}
	return out
}

func cloneAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			out[k] = cloneAnyMap(sub)
			continue
		}
		out[k] = v
	}
	return out
}
