package evolve

import "strings"

// MutationMethod is the tagged set of genetic operators. Unknown method
// names parse to uniform mutation, the explicit default arm.
type MutationMethod byte

const (
	MutationUniform MutationMethod = iota
	MutationExtremal
	MutationShrink
	MutationGrowth
	MutationSwap
	MutationReplace
)

func ParseMutationMethod(name string) MutationMethod {
	switch strings.ToLower(name) {
	case "extremal_mutation":
		return MutationExtremal
	case "shrink_mutation":
		return MutationShrink
	case "growth_mutation":
		return MutationGrowth
	case "swap_mutation":
		return MutationSwap
	case "replace_mutation":
		return MutationReplace
	default:
		return MutationUniform
	}
}

// MutateOptions tunes the mutation operators. Zero values resolve to the
// per-operator defaults.
type MutateOptions struct {
	NumberOfMutatedValues int `toml:"number_of_mutated_values"`
	MaxShrinkSize         int `toml:"max_shrink_size"`
	MaxGrowthSize         int `toml:"max_growth_size"`
	MaxSwapSize           int `toml:"max_swap_size"`
	MaxReplaceSize        int `toml:"max_replace_size"`
	MaxInsertSize         int `toml:"max_insert_size"`
}

func (o *MutateOptions) mutatedValueCount() int {
	if o == nil || o.NumberOfMutatedValues <= 0 {
		return DefaultMutatedValueCount
	}
	return o.NumberOfMutatedValues
}

func (o *MutateOptions) maxShrink() int {
	if o == nil || o.MaxShrinkSize <= 0 {
		return DefaultMaxShrinkSize
	}
	return o.MaxShrinkSize
}

func (o *MutateOptions) maxGrowth() int {
	if o == nil || o.MaxGrowthSize <= 0 {
		return DefaultMaxGrowthSize
	}
	return o.MaxGrowthSize
}

func (o *MutateOptions) maxSwap() int {
	if o == nil || o.MaxSwapSize <= 0 {
		return DefaultMaxSwapSize
	}
	return o.MaxSwapSize
}

func (o *MutateOptions) maxReplace() int {
	if o == nil || o.MaxReplaceSize <= 0 {
		return DefaultMaxReplaceSize
	}
	return o.MaxReplaceSize
}

func (o *MutateOptions) maxInsert() int {
	if o == nil || o.MaxInsertSize <= 0 {
		return DefaultMaxInsertSize
	}
	return o.MaxInsertSize
}

type VariatorConfig struct {
	Method  string         `toml:"method"`
	Options *MutateOptions `toml:"options"`
}

// Variator applies the mutation-family genetic operators: one child per
// parent, each child's fitness computed fresh at construction. The
// shrink/growth/swap/replace operators manipulate the positional value
// sequence and are meant for variable-length configurations; their children
// are re-keyed 0..len-1.
type Variator struct {
	Config *VariatorConfig
}

func NewVariator(config *VariatorConfig) *Variator {
	return &Variator{Config: config}
}

// Apply produces len(parents) children. An empty parent set is an
// *ArgumentError, raised before any work.
func (v *Variator) Apply(p *Population, parents []*Individual) ([]*Individual, error) {
	if len(parents) == 0 {
		return nil, newArgumentError("genetic operators require at least one parent")
	}

	method := ParseMutationMethod(v.Config.Method)
	opts := v.Config.Options
	children := make([]*Individual, len(parents))
	for i, parent := range parents {
		children[i] = mutate(p.Config, parent, method, opts)
	}
	return children, nil
}

func mutate(config *IndividualConfig, parent *Individual, method MutationMethod, opts *MutateOptions) *Individual {
	switch method {
	case MutationExtremal:
		return mutateValues(config, parent, opts.mutatedValueCount(), config.boundValue)
	case MutationShrink:
		return mutateShrink(config, parent, opts.maxShrink())
	case MutationGrowth:
		return mutateGrowth(config, parent, opts.maxGrowth())
	case MutationSwap:
		return mutateSwap(config, parent, opts.maxSwap())
	case MutationReplace:
		return mutateReplace(config, parent, opts.maxReplace(), opts.maxInsert())
	default:
		return mutateValues(config, parent, opts.mutatedValueCount(), config.randomValue)
	}
}

// mutateValues implements uniform and extremal mutation: count random
// positions (repeats allowed) get a fresh value from the generator, every
// other position copies the parent unchanged.
func mutateValues(config *IndividualConfig, parent *Individual, count int, generate func() float64) *Individual {
	keys := copyKeys(parent.Keys)
	values := parent.ToArray()
	if len(values) > 0 {
		for m := 0; m < count; m++ {
			values[rng.Intn(len(values))] = generate()
		}
	}
	return newIndividual(config, keys, values)
}

// mutateShrink removes a random contiguous slice of up to maxShrink values.
func mutateShrink(config *IndividualConfig, parent *Individual, maxShrink int) *Individual {
	values := parent.ToArray()
	if len(values) > 0 {
		start := randomPosition(len(values) - 1)
		length := randomLength(maxShrink)
		values = removeRange(values, start, start+length)
	}
	return newIndividual(config, positionalKeys(len(values)), values)
}

// mutateGrowth splices up to maxGrowth freshly generated values in at a
// random insertion point.
func mutateGrowth(config *IndividualConfig, parent *Individual, maxGrowth int) *Individual {
	values := parent.ToArray()
	position := randomPosition(len(values))
	fresh := make([]float64, randomLength(maxGrowth))
	for i := range fresh {
		fresh[i] = config.randomValue()
	}
	values = insertAt(values, position, fresh)
	return newIndividual(config, positionalKeys(len(values)), values)
}

// mutateSwap exchanges two non-overlapping blocks of up to maxSwap values.
// Length and keys are unchanged.
func mutateSwap(config *IndividualConfig, parent *Individual, maxSwap int) *Individual {
	keys := copyKeys(parent.Keys)
	values := parent.ToArray()

	size := randomLength(maxSwap)
	if size*2 > len(values) {
		size = len(values) / 2
	}
	if size > 0 {
		first := rng.Intn(len(values) - 2*size + 1)
		second := first + size + rng.Intn(len(values)-first-2*size+1)
		swapRanges(values, first, second, size)
	}
	return newIndividual(config, keys, values)
}

// mutateReplace removes up to maxReplace values at a random start position
// and splices in up to maxInsert freshly generated ones.
func mutateReplace(config *IndividualConfig, parent *Individual, maxReplace, maxInsert int) *Individual {
	values := parent.ToArray()
	start := 0
	if len(values) > 0 {
		start = randomPosition(len(values) - 1)
		values = removeRange(values, start, start+randomLength(maxReplace))
	}
	fresh := make([]float64, randomLength(maxInsert))
	for i := range fresh {
		fresh[i] = config.randomValue()
	}
	values = insertAt(values, start, fresh)
	return newIndividual(config, positionalKeys(len(values)), values)
}

// randomPosition draws round-half-up(random()*bound), the splice position
// rule. bound is the highest legal index (or insertion point).
func randomPosition(bound int) int {
	if bound <= 0 {
		return 0
	}
	return roundHalfUp(rng.Float64() * float64(bound))
}

// randomLength draws a length in 0..max via the same rounding rule.
func randomLength(max int) int {
	if max <= 0 {
		return 0
	}
	return roundHalfUp(rng.Float64() * float64(max))
}

// removeRange drops values[start:end] with both bounds clamped to the slice.
func removeRange(values []float64, start, end int) []float64 {
	if start < 0 {
		start = 0
	}
	if start > len(values) {
		start = len(values)
	}
	if end > len(values) {
		end = len(values)
	}
	if end <= start {
		return values
	}
	return append(values[:start], values[end:]...)
}

// insertAt splices fresh into values at position, clamped to the slice.
func insertAt(values []float64, position int, fresh []float64) []float64 {
	if len(fresh) == 0 {
		return values
	}
	if position < 0 {
		position = 0
	}
	if position > len(values) {
		position = len(values)
	}
	spliced := make([]float64, 0, len(values)+len(fresh))
	spliced = append(spliced, values[:position]...)
	spliced = append(spliced, fresh...)
	spliced = append(spliced, values[position:]...)
	return spliced
}

// swapRanges exchanges values[first:first+size] and values[second:second+size].
// Callers guarantee the blocks are in bounds and do not overlap.
func swapRanges(values []float64, first, second, size int) {
	for i := 0; i < size; i++ {
		values[first+i], values[second+i] = values[second+i], values[first+i]
	}
}

func copyKeys(keys []string) []string {
	copied := make([]string, len(keys))
	copy(copied, keys)
	return copied
}
