package classifier

import (
	"log/slog"
	"math"
	"strings"

	"github.com/jromarion/arc-classifier/constants"
	"github.com/jromarion/arc-classifier/internal/common"
)

// Classification methods, recorded on every result so downstream consumers
// can tell a model decision from a rule decision.
const (
	MethodInsufficientText = "insufficient_text"
	MethodMLModel          = "ml_model"
	MethodRuleBased        = "rule_based"
	MethodRuleFallback     = "rule_based_fallback"
	MethodRuleError        = "rule_based_error_fallback"
)

const minClassifiableChars = 10

type Result struct {
	Category   constants.Category
	Confidence float64
	Keywords   []string
	Method     string
}

// Classifier routes between the trained model and the keyword rules. The
// model is optional; when it is absent or unsure, the rules decide.
type Classifier struct {
	model      *Model
	threshold  float64
	otherFloor float64
	logger     *slog.Logger
}

func New(cfg common.ClassifierConfig, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Classifier{
		threshold:  cfg.ConfidenceThreshold,
		otherFloor: cfg.OtherFloorConfidence,
		logger:     logger,
	}
	if c.threshold <= 0 {
		c.threshold = 0.7
	}
	if c.otherFloor <= 0 {
		c.otherFloor = 0.5
	}

	if cfg.ModelPath != "" {
		model, err := LoadModel(cfg.ModelPath)
		if err != nil {
			logger.Warn("model unavailable, using rules only",
				"path", cfg.ModelPath, "error", err)
		} else {
			logger.Info("loaded classification model",
				"path", cfg.ModelPath,
				"classes", len(model.Classes),
				"vocabulary", len(model.Vocabulary))
			c.model = model
		}
	}
	return c
}

// Classify is pure and deterministic: the same text always yields the same
// result. It never errors; model failures degrade to the rule engine.
func (c *Classifier) Classify(text string) Result {
	if len(strings.TrimSpace(text)) < minClassifiableChars {
		return Result{
			Category:   constants.Other,
			Confidence: 0.0,
			Keywords:   []string{},
			Method:     MethodInsufficientText,
		}
	}
	keywords := topKeywords(strings.ToLower(text), 5)

	if c.model != nil {
		category, prob, err := c.model.Predict(text)
		if err != nil {
			c.logger.Warn("model prediction failed, falling back to rules", "error", err)
			return c.ruleResult(text, keywords, MethodRuleError)
		}
		if prob >= c.threshold {
			return Result{
				Category:   category,
				Confidence: round2(prob),
				Keywords:   keywords,
				Method:     MethodMLModel,
			}
		}
		c.logger.Debug("model below threshold, falling back to rules",
			"category", category, "probability", prob, "threshold", c.threshold)
		return c.ruleResult(text, keywords, MethodRuleFallback)
	}

	return c.ruleResult(text, keywords, MethodRuleBased)
}

func (c *Classifier) ruleResult(text string, keywords []string, method string) Result {
	category, confidence := classifyByRules(text, c.otherFloor)
	return Result{
		Category:   category,
		Confidence: round2(confidence),
		Keywords:   keywords,
		Method:     method,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
