package sim

import "fmt"

// Policy names a dispatching discipline.
type Policy string

const (
	// PolicyFCFS runs tasks to completion in arrival order.
	PolicyFCFS Policy = "fcfs"
	// PolicySJF picks the shortest ready burst at each idle point (non-preemptive).
	PolicySJF Policy = "sjf"
	// PolicySRTF picks the shortest remaining time every tick (preemptive SJF).
	PolicySRTF Policy = "srtf"
	// PolicyRoundRobin grants fixed quanta from a FIFO ready queue.
	PolicyRoundRobin Policy = "rr"
	// PolicyPriority picks the lowest priority value at each idle point (non-preemptive).
	PolicyPriority Policy = "priority"
)

// validPolicies is the set of recognized policy names.
// Shared by ParsePolicy and RunSpec.Validate to avoid duplication.
var validPolicies = map[Policy]bool{
	PolicyFCFS:       true,
	PolicySJF:        true,
	PolicySRTF:       true,
	PolicyRoundRobin: true,
	PolicyPriority:   true,
}

// AllPolicies returns every policy in a fixed, reportable order.
func AllPolicies() []Policy {
	return []Policy{PolicyFCFS, PolicySJF, PolicySRTF, PolicyRoundRobin, PolicyPriority}
}

// IsValidPolicy returns true if name is a recognized policy.
func IsValidPolicy(name string) bool {
	return validPolicies[Policy(name)]
}

// ParsePolicy maps a policy name to its Policy value.
// Empty string defaults to FCFS (for CLI flag default compatibility).
func ParsePolicy(name string) (Policy, error) {
	if name == "" {
		return PolicyFCFS, nil
	}
	if !IsValidPolicy(name) {
		return "", invalidInputf("unknown policy %q", name)
	}
	return Policy(name), nil
}

// NeedsQuantum reports whether the policy requires a positive quantum.
func (p Policy) NeedsQuantum() bool {
	return p == PolicyRoundRobin
}

// Preemptive reports whether the policy may interrupt a running task.
func (p Policy) Preemptive() bool {
	return p == PolicySRTF || p == PolicyRoundRobin
}

func (p Policy) String() string {
	switch p {
	case PolicyFCFS:
		return "FCFS"
	case PolicySJF:
		return "SJF (non-preemptive)"
	case PolicySRTF:
		return "SRTF (preemptive SJF)"
	case PolicyRoundRobin:
		return "Round Robin"
	case PolicyPriority:
		return "Priority (non-preemptive)"
	default:
		return fmt.Sprintf("unknown(%s)", string(p))
	}
}
