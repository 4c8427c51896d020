package service

// OptionsPerQuestion is the target number of options for a question.
const OptionsPerQuestion = 4

// OptionGenerator generates multiple choice options for quiz questions.
type OptionGenerator struct {
	rng Rand
}

// NewOptionGenerator creates a new option generator.
func NewOptionGenerator(rng Rand) *OptionGenerator {
	return &OptionGenerator{rng: rng}
}

// SampleDistractors returns correct followed by up to count-1 distinct
// peers picked uniformly without replacement. Peers equal to correct and
// empty peers never qualify. If there are not enough distinct peers the
// result is shorter than count; it is never padded.
func (g *OptionGenerator) SampleDistractors(correct string, peers []string, count int) []string {
	if count <= 0 {
		return nil
	}

	candidates := distinctExcluding(peers, correct)

	want := count - 1
	if want > len(candidates) {
		want = len(candidates)
	}

	// Partial Fisher-Yates: the first want slots end up as a uniform sample.
	for i := 0; i < want; i++ {
		j := i + g.rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	options := make([]string, 0, want+1)
	options = append(options, correct)
	options = append(options, candidates[:want]...)

	return options
}

// Options builds a shuffled option list for correct with distractors from peers.
func (g *OptionGenerator) Options(correct string, peers []string) []string {
	options := g.SampleDistractors(correct, peers, OptionsPerQuestion)
	Shuffle(g.rng, options)
	return options
}

// distinctExcluding removes duplicates, empty values and exclude while preserving order.
func distinctExcluding(values []string, exclude string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || v == exclude {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
