package evolve

import (
	"strconv"
	"strings"

	cp "github.com/jinzhu/copier"
)

// Individual is one candidate solution: an ordered mapping of variable keys
// to values plus a fitness score. Fitness is computed once, at construction,
// via the config's fitness function and never mutated afterward — a new
// Individual is the only way to get a new fitness.
type Individual struct {
	ID           uint
	PopulationID uint
	Keys         []string  `gorm:"serializer:json"`
	Values       []float64 `gorm:"serializer:json"`
	Fitness      float64
}

// NewIndividualFromRandom generates an Individual with uniform random values
// over the config interval. In variable-length mode the variable count is
// itself drawn uniformly from 0..MaxIndividualLength and the keys become
// positional indices.
func NewIndividualFromRandom(config *IndividualConfig) *Individual {
	var keys []string
	if config.VariableLength {
		keys = positionalKeys(rng.Intn(config.maxLength() + 1))
	} else {
		keys = append(keys, config.VariableNames...)
	}

	values := make([]float64, len(keys))
	for i := range values {
		values[i] = config.randomValue()
	}

	return newIndividual(config, keys, values)
}

// NewIndividualFromValues constructs an Individual around caller-supplied
// values. Keys come from the config's variable names, or positional indices
// in variable-length mode.
func NewIndividualFromValues(config *IndividualConfig, values []float64) *Individual {
	var keys []string
	if config.VariableLength {
		keys = positionalKeys(len(values))
	} else {
		keys = append(keys, config.VariableNames...)
	}
	copied := make([]float64, len(values))
	copy(copied, values)
	return newIndividual(config, keys, copied)
}

// newIndividual takes ownership of keys and values. The single fitness call
// per constructed Individual happens here.
func newIndividual(config *IndividualConfig, keys []string, values []float64) *Individual {
	ind := &Individual{Keys: keys, Values: values}
	ind.Fitness = config.Fitness(ind)
	return ind
}

func positionalKeys(count int) []string {
	keys := make([]string, count)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

// ToArray returns the variable values in key order.
func (ind *Individual) ToArray() []float64 {
	values := make([]float64, len(ind.Values))
	copy(values, ind.Values)
	return values
}

// Equal compares by content: same keys and same values in the same order.
func (ind *Individual) Equal(other *Individual) bool {
	if other == nil || len(ind.Keys) != len(other.Keys) || len(ind.Values) != len(other.Values) {
		return false
	}
	for i, k := range ind.Keys {
		if other.Keys[i] != k {
			return false
		}
	}
	for i, v := range ind.Values {
		if other.Values[i] != v {
			return false
		}
	}
	return true
}

func (ind *Individual) Clone() *Individual {
	clone := &Individual{}
	cp.Copy(clone, ind)
	return clone
}

func (ind *Individual) String() string {
	var sb strings.Builder
	for i, k := range ind.Keys {
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(formatValue(ind.Values[i]))
		sb.WriteString(", ")
	}
	sb.WriteString("fitness: ")
	sb.WriteString(formatValue(ind.Fitness))
	return sb.String()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
