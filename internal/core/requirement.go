package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"pinfile/internal/shared"
)

// Requirement is one declared dependency of a release: a project name
// plus an optional PEP 440 specifier set.
type Requirement struct {
	Name           string
	NormalizedName string
	RawSpecifiers  string
	specifiers     pep440.Specifiers
	hasSpecifiers  bool
	// Conditional marks requirements guarded by an environment marker.
	// The audit skips them since markers cannot be evaluated offline.
	Conditional bool
}

// specifierTokens is the ordered list of operator tokens scanned for
// when splitting a requirement string. Longer tokens must precede
// shorter ones to avoid false matches (e.g. ">=" before ">").
var specifierTokens = []string{"===", "==", ">=", "<=", "~=", "!=", ">", "<"}

// ParseRequirement splits a raw requirement such as "click>=7.0,<9" or
// "idna" into a Requirement. Extras are stripped from the name; an
// environment marker flags the requirement as conditional.
func ParseRequirement(raw string) (Requirement, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty requirement")
	}
	req := Requirement{}
	if idx := strings.Index(trimmed, ";"); idx >= 0 {
		req.Conditional = true
		trimmed = strings.TrimSpace(trimmed[:idx])
	}

	opIdx := len(trimmed)
	for _, token := range specifierTokens {
		if idx := strings.Index(trimmed, token); idx >= 0 && idx < opIdx {
			opIdx = idx
		}
	}
	name := strings.TrimSpace(trimmed[:opIdx])
	if bracket := strings.Index(name, "["); bracket >= 0 {
		name = strings.TrimSpace(name[:bracket])
	}
	if name == "" {
		return Requirement{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid requirement: %s", raw))
	}
	req.Name = name
	req.NormalizedName = shared.NormalizeProjectName(name)

	if opIdx < len(trimmed) {
		rawSpec := strings.TrimSpace(trimmed[opIdx:])
		specifiers, err := pep440.NewSpecifiers(rawSpec)
		if err != nil {
			return Requirement{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid specifiers for %s: %s", name, rawSpec)).
				WithCause(err)
		}
		req.RawSpecifiers = rawSpec
		req.specifiers = specifiers
		req.hasSpecifiers = true
	}
	return req, nil
}

// SatisfiedBy reports whether a pinned version satisfies the
// requirement. A requirement without specifiers accepts any version.
func (r Requirement) SatisfiedBy(version string) (bool, error) {
	if !r.hasSpecifiers {
		return true, nil
	}
	parsed, err := pep440.Parse(version)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version: %s", version)).
			WithCause(err)
	}
	return r.specifiers.Check(parsed), nil
}
