package cache

import "strconv"

// ArtifactKeyOpts identifies one rendering of a DOT document.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Engine string `json:"engine"`
}

// ResultKeyOpts identifies one walk over a problem.
type ResultKeyOpts struct {
	MaxSteps int `json:"max_steps"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key for a rendered artifact of the DOT
	// document with the given hash.
	ArtifactKey(dotHash string, opts ArtifactKeyOpts) string

	// ResultKey returns the key for the walk result of the problem with
	// the given hash.
	ResultKey(problemHash string, opts ResultKeyOpts) string
}

// DefaultKeyer produces keys of the form "kind:sha256(...)".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key layout.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(dotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dotHash, opts)
}

// ResultKey implements Keyer.
func (DefaultKeyer) ResultKey(problemHash string, opts ResultKeyOpts) string {
	return hashKey("result", problemHash, strconv.Itoa(opts.MaxSteps))
}

var _ Keyer = DefaultKeyer{}
