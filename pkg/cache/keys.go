package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// ArtifactKeyOpts identifies one rendered export.
type ArtifactKeyOpts struct {
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	Format    string `json:"format"`     // color encoding (HEX, RGBA, HSLA)
	ShowLabel bool   `json:"show_label"` // label overlay
	Output    string `json:"output"`     // svg, png, json, txt, html
}

// Keyer derives cache keys.
type Keyer interface {
	ArtifactKey(opts ArtifactKeyOpts) string
}

// DefaultKeyer keys artifacts by output and a digest of every option.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<output>:<digest of opts>".
func (DefaultKeyer) ArtifactKey(opts ArtifactKeyOpts) string {
	return "artifact:" + opts.Output + ":" + digest(opts)
}

// ScopedKeyer prefixes the keys of another Keyer. The CLI scopes keys by
// build version so an upgrade never serves artifacts from an older renderer.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(opts)
}

// digest is the hex SHA-256 of v's JSON encoding. Strings hash as their raw
// bytes.
func digest(v any) string {
	var data []byte
	if s, ok := v.(string); ok {
		data = []byte(s)
	} else {
		data, _ = json.Marshal(v)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
