package puzzle

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed examples.yaml
var examplesYAML []byte

type catalogue struct {
	Examples []Sample `yaml:"examples"`
}

var loadSamples = sync.OnceValues(func() ([]Sample, error) {
	var c catalogue
	if err := yaml.Unmarshal(examplesYAML, &c); err != nil {
		return nil, fmt.Errorf("puzzle: decode examples: %w", err)
	}

	return c.Examples, nil
})

// Samples returns the embedded sample catalogue ordered by day.
func Samples() ([]Sample, error) {
	samples, err := loadSamples()
	if err != nil {
		return nil, err
	}

	return append([]Sample(nil), samples...), nil
}

// Example returns a Request for the sample input of day and part, and the
// answer it must produce.
func Example(day, part int) (Request, string, error) {
	samples, err := loadSamples()
	if err != nil {
		return Request{}, "", err
	}
	for _, s := range samples {
		if s.Day != day {
			continue
		}
		for _, a := range s.Answers {
			if a.Part == part {
				return Request{Day: day, Part: part, Input: s.Input}, a.Answer, nil
			}
		}
	}

	return Request{}, "", fmt.Errorf("%w: %s", ErrNoExample, Key{Day: day, Part: part})
}
