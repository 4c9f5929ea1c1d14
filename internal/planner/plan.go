package planner

import "github.com/xinfeng-tech/flutter-libs/internal/strategy"

// ReconcilePlan represents a plan to reconcile one variant's output tree.
type ReconcilePlan struct {
	// Root is the variant's output tree root
	Root string

	// Strategy is the strategy the plan was built for
	Strategy strategy.Strategy

	// SkipReason is set when there is nothing to do
	SkipReason string `json:",omitempty"`

	// Operations is the ordered list of operations to execute
	Operations []Operation
}

// Operation represents a single filesystem operation to execute.
type Operation struct {
	// Type is the operation type: "mkdir", "copy", "keep", "remove"
	Type string

	// SourcePath is the predecessor library path (absolute, empty for mkdir and remove)
	SourcePath string `json:",omitempty"`

	// DestPath is the path the operation acts on (absolute)
	DestPath string

	// RelPath is DestPath relative to the output tree root
	RelPath string
}

// Operation type constants
const (
	OpMkdir  = "mkdir"
	OpCopy   = "copy"
	OpKeep   = "keep"
	OpRemove = "remove"
)

// Skip reasons
const (
	SkipStrategyNone       = "strategy is none"
	SkipPredecessorMissing = "predecessor directory missing"
)

// NewReconcilePlan creates a new empty ReconcilePlan.
func NewReconcilePlan(root string, s strategy.Strategy) *ReconcilePlan {
	return &ReconcilePlan{
		Root:       root,
		Strategy:   s,
		Operations: []Operation{},
	}
}

// Skipped returns true if the plan performs no work.
func (p *ReconcilePlan) Skipped() bool {
	return p.SkipReason != ""
}

// AddOperation adds an operation to the plan.
func (p *ReconcilePlan) AddOperation(op Operation) {
	p.Operations = append(p.Operations, op)
}

// Count returns the number of operations of the given type.
func (p *ReconcilePlan) Count(opType string) int {
	n := 0
	for _, op := range p.Operations {
		if op.Type == opType {
			n++
		}
	}
	return n
}
