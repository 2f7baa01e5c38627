package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// Access is the kind of check a rule applies.
type Access int

const (
	// AccessPublic allows the request regardless of a bound principal.
	AccessPublic Access = iota
	// AccessAuthenticated requires any bound principal.
	AccessAuthenticated
	// AccessRole requires a bound principal carrying a specific role.
	AccessRole
)

// Rule maps an HTTP method and path pattern to a required access level.
// Patterns match whole path segments; "*" matches one segment and a trailing
// "**" matches one or more remaining segments. Method "*" matches any verb.
type Rule struct {
	Method  string
	Pattern string
	Access  Access
	Role    string
}

// Public builds a rule that admits anonymous requests.
func Public(method, pattern string) Rule {
	return Rule{Method: method, Pattern: pattern, Access: AccessPublic}
}

// Authenticated builds a rule requiring any authenticated principal.
func Authenticated(method, pattern string) Rule {
	return Rule{Method: method, Pattern: pattern, Access: AccessAuthenticated}
}

// RequireRole builds a rule requiring a principal with the named role.
func RequireRole(method, pattern, role string) Rule {
	return Rule{Method: method, Pattern: pattern, Access: AccessRole, Role: role}
}

// Policy is an ordered rule table evaluated top to bottom, first match wins.
// Requests matching no rule require authentication.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// Evaluate returns the rule governing the given request line.
func (p *Policy) Evaluate(method, path string) Rule {
	for _, r := range p.rules {
		if r.Method != "*" && r.Method != method {
			continue
		}
		if matchPattern(r.Pattern, path) {
			return r
		}
	}
	return Rule{Method: method, Pattern: path, Access: AccessAuthenticated}
}

// Middleware enforces the policy against the principal bound by Authenticate.
// It runs after the gate: a missing principal yields 401, a principal lacking
// the required role yields 403.
func (p *Policy) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rule := p.Evaluate(c.Request().Method, c.Request().URL.Path)
			if rule.Access == AccessPublic {
				return next(c)
			}

			principal := Principal(c)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if rule.Access == AccessRole && !principal.HasRole(rule.Role) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// DefaultPolicy is the baseline rule table: auth and read endpoints are open,
// deletes need the admin role, and every other mutation needs a login.
func DefaultPolicy() *Policy {
	return NewPolicy(
		Public(http.MethodPost, "/api/v1/auth/**"),
		Public(http.MethodGet, "/api/v1/**"),
		Public(http.MethodGet, "/health"),
		Public(http.MethodGet, "/health/**"),
		Public(http.MethodGet, "/metrics"),
		Public(http.MethodGet, "/swagger/**"),
		RequireRole(http.MethodDelete, "/api/v1/**", domain.RoleAdmin),
	)
}

// matchPattern reports whether path matches the segment pattern.
func matchPattern(pattern, path string) bool {
	ps := splitPath(pattern)
	ts := splitPath(path)

	for i, seg := range ps {
		if seg == "**" {
			// Trailing ** swallows one or more remaining segments.
			return i == len(ps)-1 && len(ts) > i
		}
		if i >= len(ts) {
			return false
		}
		if seg != "*" && seg != ts[i] {
			return false
		}
	}
	return len(ts) == len(ps)
}

func splitPath(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}
