// Package file loads problem suites from YAML documents.
package file

import (
	"fmt"
	"os"
	"reflect"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/problems"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// suiteDTO mirrors the on-disk document. YAML is decoded into generic maps
// first so the field hooks below can coerce moves and symbols.
type suiteDTO struct {
	Problems []problemDTO `mapstructure:"problems"`
}

type problemDTO struct {
	Name        string          `mapstructure:"name"`
	Description string          `mapstructure:"description"`
	Transitions []ruleDTO       `mapstructure:"transitions"`
	Cases       []problems.Case `mapstructure:"cases"`
}

type ruleDTO struct {
	From  domain.State  `mapstructure:"from"`
	Read  domain.Symbol `mapstructure:"read"`
	To    domain.State  `mapstructure:"to"`
	Write domain.Symbol `mapstructure:"write"`
	Move  domain.Move   `mapstructure:"move"`
}

var (
	symbolType = reflect.TypeOf(domain.Symbol(0))
	moveType   = reflect.TypeOf(domain.Move(0))
)

// LoadSuite reads the suite file at path.
func LoadSuite(path string) ([]problems.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite: %w", err)
	}
	ps, err := ParseSuite(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ps, nil
}

// ParseSuite decodes a suite document. JSON documents are accepted too,
// being valid YAML.
func ParseSuite(data []byte) ([]problems.Problem, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse suite: %w", err)
	}

	var dto suiteDTO
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(symbolHook, moveHook),
		ErrorUnused: true,
		Result:      &dto,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode suite: %w", err)
	}

	out := make([]problems.Problem, 0, len(dto.Problems))
	for i, p := range dto.Problems {
		if p.Name == "" {
			return nil, fmt.Errorf("problem #%d missing name", i+1)
		}
		rules := make([]domain.Transition, 0, len(p.Transitions))
		for _, r := range p.Transitions {
			rules = append(rules, domain.T(r.From, r.Read, r.To, r.Write, r.Move))
		}
		out = append(out, problems.Problem{
			Name:        p.Name,
			Description: p.Description,
			Transitions: rules,
			Cases:       p.Cases,
		})
	}
	return out, nil
}

// symbolHook accepts one-character strings. Bare digits arrive as ints
// from YAML and map to their character.
func symbolHook(from, to reflect.Type, data any) (any, error) {
	if to != symbolType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		if len(v) != 1 {
			return nil, fmt.Errorf("symbol %q must be a single byte", v)
		}
		return domain.Symbol(v[0]), nil
	case int:
		if v < 0 || v > 9 {
			return nil, fmt.Errorf("symbol %d must be a single digit; quote it", v)
		}
		return domain.Symbol('0' + v), nil
	}
	return nil, fmt.Errorf("invalid symbol of type %T", data)
}

// moveHook accepts the textual forms understood by domain.ParseMove.
func moveHook(from, to reflect.Type, data any) (any, error) {
	if to != moveType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return domain.ParseMove(v)
	case int:
		m := domain.Move(v)
		if !m.Valid() {
			return nil, fmt.Errorf("invalid move %d", v)
		}
		return m, nil
	}
	return nil, fmt.Errorf("invalid move of type %T", data)
}
