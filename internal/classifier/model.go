package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"

	"github.com/jromarion/arc-classifier/constants"
)

// sklearn's default token pattern: two or more word characters
var reModelToken = regexp.MustCompile(`\b\w\w+\b`)

// Model is a multinomial naive-Bayes classifier over TF-IDF features,
// trained offline and serialized to JSON. Loading is explicit: a missing or
// corrupt model file downgrades the classifier to rules, it never aborts
// the service.
type Model struct {
	Vocabulary     map[string]int `json:"vocabulary"`
	IDF            []float64      `json:"idf"`
	Classes        []string       `json:"classes"`
	ClassLogPrior  []float64      `json:"class_log_prior"`
	FeatureLogProb [][]float64    `json:"feature_log_prob"`
}

func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid model %s: %w", path, err)
	}
	return &m, nil
}

func (m *Model) validate() error {
	if len(m.Vocabulary) == 0 {
		return fmt.Errorf("empty vocabulary")
	}
	if len(m.IDF) != len(m.Vocabulary) {
		return fmt.Errorf("idf size %d != vocabulary size %d", len(m.IDF), len(m.Vocabulary))
	}
	if len(m.Classes) == 0 {
		return fmt.Errorf("no classes")
	}
	if len(m.ClassLogPrior) != len(m.Classes) {
		return fmt.Errorf("prior size %d != class count %d", len(m.ClassLogPrior), len(m.Classes))
	}
	if len(m.FeatureLogProb) != len(m.Classes) {
		return fmt.Errorf("likelihood rows %d != class count %d", len(m.FeatureLogProb), len(m.Classes))
	}
	for i, row := range m.FeatureLogProb {
		if len(row) != len(m.Vocabulary) {
			return fmt.Errorf("likelihood row %d size %d != vocabulary size %d", i, len(row), len(m.Vocabulary))
		}
	}
	for w, idx := range m.Vocabulary {
		if idx < 0 || idx >= len(m.IDF) {
			return fmt.Errorf("vocabulary term %q has out-of-range index %d", w, idx)
		}
	}
	return nil
}

// Predict returns the most probable category and its posterior probability.
func (m *Model) Predict(text string) (constants.Category, float64, error) {
	features := m.vectorize(text)

	scores := make([]float64, len(m.Classes))
	for c := range m.Classes {
		s := m.ClassLogPrior[c]
		for idx, x := range features {
			s += x * m.FeatureLogProb[c][idx]
		}
		scores[c] = s
	}

	// softmax over joint log-likelihoods
	best := 0
	maxScore := scores[0]
	for c, s := range scores {
		if s > maxScore {
			maxScore = s
			best = c
		}
	}
	var denom float64
	for _, s := range scores {
		denom += math.Exp(s - maxScore)
	}
	prob := 1.0 / denom

	category, ok := constants.Canonicalize(m.Classes[best])
	if !ok {
		return constants.Other, 0, fmt.Errorf("model class %q is not a known category", m.Classes[best])
	}
	return category, prob, nil
}

// vectorize computes the l2-normalized TF-IDF vector as a sparse map from
// vocabulary index to weight.
func (m *Model) vectorize(text string) map[int]float64 {
	counts := make(map[int]int)
	for _, tok := range reModelToken.FindAllString(strings.ToLower(text), -1) {
		if idx, ok := m.Vocabulary[tok]; ok {
			counts[idx]++
		}
	}

	features := make(map[int]float64, len(counts))
	var norm float64
	for idx, n := range counts {
		v := float64(n) * m.IDF[idx]
		features[idx] = v
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range features {
			features[idx] /= norm
		}
	}
	return features
}
