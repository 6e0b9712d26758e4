package doc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferDomain(t *testing.T) {
	cases := []struct {
		prose string
		want  string
	}{
		{"the api endpoint", "api"},
		{"user login flow", "auth"},
		{"calculate the total", "math"},
		{"store records in the database", "data"},
		{"read the manifest", "io"},
		{"assert the outcome", "test"},
		{"the user record", "user"},
		{"miscellaneous prose", "domain"},
		{"", "domain"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, InferDomain(tc.prose), "prose: %q", tc.prose)
	}
}

func TestInferDomainPrecedence(t *testing.T) {
	// "user login" trips both the auth and user groups; auth is
	// checked first.
	assert.Equal(t, "auth", InferDomain("user login"))
}

func TestInferTypes(t *testing.T) {
	assert.Contains(t, InferTypes("count the number of rows"), "  ℕ≜natural_numbers")
	assert.Contains(t, InferTypes("the name string"), "  𝕊≜strings")
	assert.Contains(t, InferTypes("a boolean flag"), "  𝔹≜booleans")
	assert.Contains(t, InferTypes("the function body"), "  Fn⟨A,B⟩≜A→B")
	assert.Contains(t, InferTypes("the user record"), "  User≜⟨id:ℕ,name:𝕊⟩")
	assert.Contains(t, InferTypes("a list of items"), "  List⟨T⟩≜⟨items:T*⟩")
}

func TestInferTypesFallback(t *testing.T) {
	assert.Equal(t, []string{"  T≜⟨value:Any⟩"}, InferTypes("zzz"))
}

func TestInferRules(t *testing.T) {
	rules := InferRules("every input must be valid")
	assert.Contains(t, rules, "  ∀x:T:valid(x)⇒accept(x)")
	assert.Contains(t, rules, "  ∀x∈S:P(x)")
	assert.Contains(t, rules, "  ∀x:T:require(x)⇒proceed(x)")
}

func TestInferRulesContractVocabulary(t *testing.T) {
	rules := InferRules("the invariant holds, a precondition applies before the delta change ensures the postcondition")

	assert.Contains(t, rules, "  Inv(s)≜always(s)")
	assert.Contains(t, rules, "  Pre(f)≜req(args)")
	assert.Contains(t, rules, "  Post(f)≜guarantee(result)")
	assert.Contains(t, rules, "  Δ(s)≜s'−s")
}

func TestInferRulesFallback(t *testing.T) {
	assert.Equal(t, []string{"  ∀x:T:⊤"}, InferRules("zzz"))
}

func TestInferErrors(t *testing.T) {
	errs := InferErrors("the function may fail or crash if not found")

	assert.Contains(t, errs, "  fail(x)⇒⊥")
	assert.Contains(t, errs, "  crash⇒⊥⊥")
	assert.Contains(t, errs, "  NotFound⇒∅")
}

func TestInferErrorsAuth(t *testing.T) {
	assert.Contains(t, InferErrors("unauthorized access is denied"), "  AuthError⇒⊘")
}

func TestInferErrorsFallback(t *testing.T) {
	assert.Equal(t, []string{"  ∅"}, InferErrors("all good here"))
}
