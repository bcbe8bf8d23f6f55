package auth

// Rule is the access restriction attached to a protected route. Rules are
// declared statically in the route table and never mutated.
//
// The three shapes from least to most specific:
//   - RequireAuth only: any authenticated identity passes.
//   - AllowedRoles: identity's role must be a member of the set.
//   - MinimumRole: identity's role rank must be at or above the minimum.
//
// AllowedRoles and MinimumRole are independent mechanisms. Crisis routes
// use the allow-list {crisis_manager, federal_admin}; admin routes use a
// minimum rank. Do not collapse one into the other.
type Rule struct {
	RequireAuth  bool
	AllowedRoles []Role
	MinimumRole  Role // zero value means no minimum-role check
}

// Public is the rule for routes with no restrictions.
var Public = Rule{}

// Authenticated requires a session but no particular role.
var Authenticated = Rule{RequireAuth: true}

// MinRole builds a rule requiring an authenticated identity at or above
// the given rank.
func MinRole(minimum Role) Rule {
	return Rule{RequireAuth: true, MinimumRole: minimum}
}

// AnyOf builds a rule requiring an authenticated identity whose role is
// in the allowed set.
func AnyOf(allowed ...Role) Rule {
	return Rule{RequireAuth: true, AllowedRoles: allowed}
}

// Decision is the outcome of evaluating a rule against session state.
type Decision int

const (
	// DecisionPending means the session has not been resolved yet; the
	// caller must wait and must not redirect.
	DecisionPending Decision = iota
	DecisionAllowed
	DecisionRedirectLogin
	DecisionRedirectUnauthorized
)

// String returns a short name for logging.
func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionAllowed:
		return "allowed"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionRedirectUnauthorized:
		return "redirect_unauthorized"
	default:
		return "unknown"
	}
}

// State is the session state the guard evaluates against. Ready is false
// until the session lookup has resolved (hit, miss, or error); Identity
// is nil when unauthenticated.
type State struct {
	Ready    bool
	Identity *Identity
}

// Evaluate applies the rule to the session state in fixed order:
// authentication first, then the role allow-list, then the minimum rank.
// While the state is not ready the only possible decision is
// DecisionPending, so a not-yet-restored session can never produce a
// false login redirect.
func Evaluate(state State, rule Rule) Decision {
	if !state.Ready {
		return DecisionPending
	}
	if rule.RequireAuth && state.Identity == nil {
		return DecisionRedirectLogin
	}
	if len(rule.AllowedRoles) > 0 && !HasRole(state.Identity, rule.AllowedRoles...) {
		return DecisionRedirectUnauthorized
	}
	if rule.MinimumRole != "" && !HasMinimumRole(state.Identity, rule.MinimumRole) {
		return DecisionRedirectUnauthorized
	}
	return DecisionAllowed
}
