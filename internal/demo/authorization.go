// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package demo

import "fmt"

// Tokenization key literals.
const (
	MockedFlowTokenizationKey  = "sandbox_q7v35n9n_555d2htrfsnnmfb3"
	SandboxTokenizationKey     = "sandbox_9dbg82cq_dcpspy2brwdjr3qn"
	ProductionTokenizationKey  = "production_t2wns2y2_dfy45jdj3dxkmz5m"
	DevelopmentTokenizationKey = "development_testing_integration_merchant_id"
)

// SourceKind tags which resolution path produced an authorization.
type SourceKind int

const (
	SourceOverride SourceKind = iota + 1
	SourceMockedFlow
	SourceTokenizationKey
	SourceClientTokenFetch
)

func (k SourceKind) String() string {
	switch k {
	case SourceOverride:
		return "override"
	case SourceMockedFlow:
		return "mocked-flow"
	case SourceTokenizationKey:
		return "tokenization-key"
	case SourceClientTokenFetch:
		return "client-token"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// AuthorizationSource is the outcome of one resolution. Authorization is
// empty for SourceClientTokenFetch until the fetch completes.
type AuthorizationSource struct {
	Kind          SourceKind
	Authorization string
	Environment   Environment
}

// Synchronous reports whether the authorization is known without a fetch.
func (s AuthorizationSource) Synchronous() bool {
	return s.Kind != SourceClientTokenFetch
}

func (s AuthorizationSource) String() string {
	switch s.Kind {
	case SourceTokenizationKey:
		return fmt.Sprintf("%s(%s)", s.Kind, s.Environment)
	case SourceClientTokenFetch:
		return s.Kind.String()
	default:
		return fmt.Sprintf("%s(%s)", s.Kind, s.Authorization)
	}
}

// TokenizationKeyFor maps an environment to its tokenization key literal.
func TokenizationKeyFor(env Environment) string {
	switch env {
	case EnvironmentSandbox:
		return SandboxTokenizationKey
	case EnvironmentProduction:
		return ProductionTokenizationKey
	default:
		return DevelopmentTokenizationKey
	}
}

// Rule is one entry of the resolution order: a pure predicate over the
// settings plus the source it produces when the predicate holds.
type Rule struct {
	Name    string
	Applies func(Settings) bool
	Produce func(Settings) AuthorizationSource
}

// DefaultRules returns override > mocked flow > tokenization key > client
// token fetch. The last rule always applies.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:    SourceOverride.String(),
			Applies: func(s Settings) bool { return s.AuthorizationOverride != "" },
			Produce: func(s Settings) AuthorizationSource {
				return AuthorizationSource{Kind: SourceOverride, Authorization: s.AuthorizationOverride}
			},
		},
		{
			Name:    SourceMockedFlow.String(),
			Applies: func(s Settings) bool { return s.UseMockedPayPalFlow },
			Produce: func(Settings) AuthorizationSource {
				return AuthorizationSource{
					Kind:          SourceMockedFlow,
					Authorization: MockedFlowTokenizationKey,
					Environment:   EnvironmentSandbox,
				}
			},
		},
		{
			Name:    SourceTokenizationKey.String(),
			Applies: func(s Settings) bool { return s.UseTokenizationKey },
			Produce: func(s Settings) AuthorizationSource {
				return AuthorizationSource{
					Kind:          SourceTokenizationKey,
					Authorization: TokenizationKeyFor(s.Environment),
					Environment:   s.Environment,
				}
			},
		},
		{
			Name:    SourceClientTokenFetch.String(),
			Applies: func(Settings) bool { return true },
			Produce: func(s Settings) AuthorizationSource {
				return AuthorizationSource{Kind: SourceClientTokenFetch, Environment: s.Environment}
			},
		},
	}
}

// Resolver evaluates its rules top to bottom; the first match wins.
type Resolver struct {
	rules []Rule
}

// NewResolver returns a resolver over rules, or over DefaultRules when none
// are given.
func NewResolver(rules ...Rule) *Resolver {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Resolver{rules: append([]Rule(nil), rules...)}
}

// Rules returns a copy of the resolution order.
func (r *Resolver) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}

// Resolve picks exactly one source. ErrNoAuthorization is only possible with
// a custom rule list that lacks a catch-all.
func (r *Resolver) Resolve(s Settings) (AuthorizationSource, error) {
	for _, rule := range r.rules {
		if rule.Applies(s) {
			return rule.Produce(s), nil
		}
	}
	return AuthorizationSource{}, ErrNoAuthorization
}
