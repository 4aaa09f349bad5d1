package engine

// SpellLearningResult reports whether a spell may be learned and, if not, why
type SpellLearningResult struct {
	CanLearn bool
	Errors   []string
}
