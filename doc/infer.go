package doc

import "strings"

// Keyword heuristics that populate the inferred template sections. Each
// is a pure function of the prose so it can be tested without touching
// string formatting.

// InferDomain picks a short domain tag for header metadata from the
// first matching vocabulary group. "domain" is the fallback.
func InferDomain(prose string) string {
	lower := strings.ToLower(prose)

	switch {
	case strings.Contains(lower, "api") || strings.Contains(lower, "endpoint"):
		return "api"
	case strings.Contains(lower, "auth") || strings.Contains(lower, "login") || strings.Contains(lower, "password"):
		return "auth"
	case strings.Contains(lower, "math") || strings.Contains(lower, "sum") || strings.Contains(lower, "calculate"):
		return "math"
	case strings.Contains(lower, "database") || strings.Contains(lower, "store") || strings.Contains(lower, "persist"):
		return "data"
	case strings.Contains(lower, "file") || strings.Contains(lower, "read") || strings.Contains(lower, "write"):
		return "io"
	case strings.Contains(lower, "test") || strings.Contains(lower, "assert") || strings.Contains(lower, "expect"):
		return "test"
	case strings.Contains(lower, "user"):
		return "user"
	}

	return "domain"
}

// InferTypes emits type declarations for the ⟦Σ⟧ block based on the
// vocabulary the prose uses. Falls back to a generic wrapper type.
func InferTypes(prose string) []string {
	lower := strings.ToLower(prose)
	var types []string

	if containsAny(lower, "number", "integer", "count") {
		types = append(types, "  ℕ≜natural_numbers")
	}
	if containsAny(lower, "string", "text", "name") {
		types = append(types, "  𝕊≜strings")
	}
	if containsAny(lower, "bool", "flag", "true", "false") {
		types = append(types, "  𝔹≜booleans")
	}
	if containsAny(lower, "function", "lambda") {
		types = append(types, "  Fn⟨A,B⟩≜A→B")
	}
	if strings.Contains(lower, "user") {
		types = append(types, "  User≜⟨id:ℕ,name:𝕊⟩")
	}
	if containsAny(lower, "list", "array") {
		types = append(types, "  List⟨T⟩≜⟨items:T*⟩")
	}

	if len(types) == 0 {
		types = append(types, "  T≜⟨value:Any⟩")
	}
	return types
}

// InferRules emits rule declarations for the ⟦Γ⟧ block.
func InferRules(prose string) []string {
	lower := strings.ToLower(prose)
	var rules []string

	if containsAny(lower, "constant", "immutable") {
		rules = append(rules, "  ∀c∈Const:c.immutable≡⊤")
	}
	if containsAny(lower, "valid", "check") {
		rules = append(rules, "  ∀x:T:valid(x)⇒accept(x)")
	}
	if containsAny(lower, "all", "every") {
		rules = append(rules, "  ∀x∈S:P(x)")
	}
	if containsAny(lower, "must", "require") {
		rules = append(rules, "  ∀x:T:require(x)⇒proceed(x)")
	}
	if strings.Contains(lower, "unique") {
		rules = append(rules, "  ∃!x:T:unique(x)")
	}
	if strings.Contains(lower, "admin") {
		rules = append(rules, "  ∀u∈User:u.admin≡⊤⇒allow(u)")
	}

	// Contract vocabulary maps onto contractor declarations.
	if containsAny(lower, "invariant", "always true") {
		rules = append(rules, "  Inv(s)≜always(s)")
	}
	if containsAny(lower, "precondition", "before") {
		rules = append(rules, "  Pre(f)≜req(args)")
	}
	if containsAny(lower, "postcondition", "after", "ensures") {
		rules = append(rules, "  Post(f)≜guarantee(result)")
	}
	if containsAny(lower, "delta", "change") {
		rules = append(rules, "  Δ(s)≜s'−s")
	}

	if len(rules) == 0 {
		rules = append(rules, "  ∀x:T:⊤")
	}
	return rules
}

// InferErrors emits error declarations for the ⟦Χ⟧ block. A prose with
// no failure vocabulary gets the empty set.
func InferErrors(prose string) []string {
	lower := strings.ToLower(prose)
	var errs []string

	if containsAny(lower, "error", "exception") {
		errs = append(errs, "  E≜GenericError")
	}
	if containsAny(lower, "fail", "failure") {
		errs = append(errs, "  fail(x)⇒⊥")
	}
	if containsAny(lower, "crash", "panic") {
		errs = append(errs, "  crash⇒⊥⊥")
	}
	if containsAny(lower, "not found", "missing") {
		errs = append(errs, "  NotFound⇒∅")
	}
	if containsAny(lower, "unauthorized", "forbidden", "denied") {
		errs = append(errs, "  AuthError⇒⊘")
	}

	if len(errs) == 0 {
		errs = append(errs, "  ∅")
	}
	return errs
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
