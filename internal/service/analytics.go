package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
	apperrors "github.com/zivilschutz/schutzraum-api/internal/errors"
	"github.com/zivilschutz/schutzraum-api/internal/ports"
)

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// AnalyticsServiceOptions groups dependencies for AnalyticsService.
type AnalyticsServiceOptions struct {
	Shelters  ports.ShelterRepository
	Evaluator JMESPathEvaluator // Defaults to the go-jmespath implementation
}

// AnalyticsService runs admin-only JMESPath projection queries over the
// shelter dataset. The dataset is marshalled through JSON so queries
// see the same field names the API serves.
type AnalyticsService struct {
	shelters ports.ShelterRepository
	jems     JMESPathEvaluator
}

// NewAnalyticsService constructs a new AnalyticsService.
func NewAnalyticsService(opts AnalyticsServiceOptions) *AnalyticsService {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	return &AnalyticsService{shelters: opts.Shelters, jems: jems}
}

// Query evaluates a JMESPath expression against the full shelter list.
// An invalid expression is a validation error, not an internal one.
func (s *AnalyticsService) Query(ctx context.Context, expression string) (any, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, apperrors.Validation("query expression is required", "query")
	}
	if err := s.jems.Validate(expression); err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid query expression: %v", err), "query")
	}

	shelters, err := s.shelters.List(ctx, model.ShelterFilters{})
	if err != nil {
		return nil, fmt.Errorf("list shelters: %w", err)
	}

	// Round-trip through JSON so the expression operates on the wire
	// representation (snake_case keys, string enums).
	raw, err := json.Marshal(shelters)
	if err != nil {
		return nil, fmt.Errorf("marshal shelters: %w", err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal shelters: %w", err)
	}

	result, err := s.jems.Evaluate(expression, data)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("query evaluation failed: %v", err), "query")
	}
	return result, nil
}
