package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunSpec holds one run's full configuration, loadable from a YAML file.
// Policy uses the names accepted by ParsePolicy; empty defaults to fcfs.
// Quantum is consulted only by Round Robin. A nil Aging section means no
// aging (the default; priority scheduling as given has no starvation guard).
type RunSpec struct {
	Policy  string       `yaml:"policy"`
	Quantum int64        `yaml:"quantum"`
	Aging   *AgingConfig `yaml:"aging"`
	Tasks   []TaskSpec   `yaml:"tasks"`
}

// AgingConfig is the YAML shape of the opt-in priority aging extension.
type AgingConfig struct {
	Step     int64 `yaml:"step"`
	Interval int64 `yaml:"interval"`
}

// LoadRunSpec reads and parses a YAML run configuration file.
func LoadRunSpec(path string) (*RunSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var spec RunSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &spec, nil
}

// Validate checks the policy name, every task field, and all parameter
// ranges. It runs before any simulation state is created; a RunSpec that
// passes Validate cannot fail for input reasons later.
func (spec RunSpec) Validate() error {
	if spec.Policy != "" && !IsValidPolicy(spec.Policy) {
		return invalidInputf("unknown policy %q", spec.Policy)
	}
	if err := validateSpecs(spec.Tasks); err != nil {
		return err
	}
	policy, _ := ParsePolicy(spec.Policy)
	if policy.NeedsQuantum() && spec.Quantum < 1 {
		return invalidInputf("quantum must be >= 1 for round robin, got %d", spec.Quantum)
	}
	if spec.Aging != nil {
		if policy != PolicyPriority {
			return invalidInputf("aging only applies to the priority policy, not %q", policy)
		}
		if err := spec.agingPolicy().validate(); err != nil {
			return err
		}
	}
	return nil
}

// agingPolicy converts the YAML aging section to the engine's AgingPolicy.
// Returns nil when aging is not configured.
func (spec RunSpec) agingPolicy() *AgingPolicy {
	if spec.Aging == nil {
		return nil
	}
	return &AgingPolicy{Step: spec.Aging.Step, Interval: spec.Aging.Interval}
}
