package sym

// Builtin is the default symbol dictionary. Entry order matters twice over:
// the first pattern of a symbol's first-declared entry is its primary
// expansion, and declaration order breaks ties when two entries have
// equal-length longest patterns.
//
// Each prose pattern belongs to exactly one entry. Where the source
// glossary listed a phrase under two symbols, the phrase lives here on the
// entry whose longest pattern sorts first, since that entry consumed the
// phrase during greedy matching anyway.
var Builtin = []Entry{
	// Quantifiers
	{Symbol: "∀", Patterns: []string{"for all", "for every", "every", "all", "each", "any"}, Category: CategoryQuantifier},
	{Symbol: "∃", Patterns: []string{"there exists", "exists", "some", "at least one", "there is"}, Category: CategoryQuantifier},
	{Symbol: "∃!", Patterns: []string{"exists unique", "exactly one", "unique", "one and only one", "exists exactly one"}, Category: CategoryQuantifier},
	{Symbol: "∄", Patterns: []string{"does not exist", "no such", "none exists"}, Category: CategoryQuantifier},

	// Logic
	{Symbol: "∧", Patterns: []string{"and", "both", "as well as", "together with", "also"}, Category: CategoryLogic},
	{Symbol: "∨", Patterns: []string{"or", "either", "alternatively", "otherwise"}, Category: CategoryLogic},
	{Symbol: "¬", Patterns: []string{"not", "negation", "isn't", "is not", "doesn't", "does not"}, Category: CategoryLogic},
	{Symbol: "⇒", Patterns: []string{"implies", "if then", "therefore", "then", "consequently", "so", "hence"}, Category: CategoryLogic},
	{Symbol: "⇔", Patterns: []string{"if and only if", "iff", "equivalent to", "is equivalent", "exactly when"}, Category: CategoryLogic},
	{Symbol: "→", Patterns: []string{"to", "returns", "maps to", "produces", "goes to"}, Category: CategoryLogic},
	{Symbol: "↔", Patterns: []string{"bidirectional", "two-way", "both ways"}, Category: CategoryLogic},
	{Symbol: "⊕", Patterns: []string{"xor", "exclusive or", "either but not both"}, Category: CategoryLogic},

	// Comparison
	{Symbol: ">", Patterns: []string{"greater than", "more than", "exceeds", "above", "larger than"}, Category: CategoryComparison},
	{Symbol: "<", Patterns: []string{"less than", "fewer than", "below", "smaller than", "under"}, Category: CategoryComparison},
	{Symbol: "≥", Patterns: []string{"greater than or equal", "at least", "no less than", "minimum", ">="}, Category: CategoryComparison},
	{Symbol: "≤", Patterns: []string{"less than or equal", "at most", "no more than", "maximum", "<="}, Category: CategoryComparison},
	{Symbol: "≡", Patterns: []string{"identical to", "equals", "is equal to", "same as", "equivalent", "===", "=="}, Category: CategoryComparison},
	{Symbol: "≢", Patterns: []string{"not identical", "not equal", "differs from", "different from", "!==", "!="}, Category: CategoryComparison},
	{Symbol: "≈", Patterns: []string{"approximately", "roughly", "about", "nearly"}, Category: CategoryComparison},

	// Definition
	{Symbol: "≜", Patterns: []string{"defined as", "is defined as", "equals by definition", "is a", "means", "definition"}, Category: CategoryDefinition},
	{Symbol: "≔", Patterns: []string{"assigned", "set to", "becomes", "gets", "is assigned", ":="}, Category: CategoryDefinition},
	{Symbol: "↦", Patterns: []string{"mapsto", "sends to"}, Category: CategoryDefinition},

	// Functions
	{Symbol: "λ", Patterns: []string{"lambda", "function", "anonymous function", "fn", "func", "=>"}, Category: CategoryFunction},
	{Symbol: "∘", Patterns: []string{"compose", "composed with", "followed by"}, Category: CategoryFunction},
	{Symbol: "fix", Patterns: []string{"fixpoint", "recursive", "fixed point"}, Category: CategoryFunction},
	{Symbol: "μ", Patterns: []string{"least fixpoint", "lfp", "mu"}, Category: CategoryFunction},

	// Sets
	{Symbol: "∈", Patterns: []string{"in", "element of", "member of", "belongs to", "is in"}, Category: CategorySet},
	{Symbol: "∉", Patterns: []string{"not in", "not element of", "not member of", "outside"}, Category: CategorySet},
	{Symbol: "⊆", Patterns: []string{"subset", "subset of", "contained in", "part of"}, Category: CategorySet},
	{Symbol: "⊇", Patterns: []string{"superset", "superset of", "contains"}, Category: CategorySet},
	{Symbol: "⊂", Patterns: []string{"proper subset", "strict subset"}, Category: CategorySet},
	{Symbol: "⊃", Patterns: []string{"proper superset", "strict superset"}, Category: CategorySet},
	{Symbol: "∪", Patterns: []string{"union", "combined with", "merged with"}, Category: CategorySet},
	{Symbol: "∩", Patterns: []string{"intersection", "overlapping with", "common to", "shared by"}, Category: CategorySet},
	{Symbol: "∅", Patterns: []string{"empty", "empty set", "null", "nothing", "nil", "void"}, Category: CategorySet},
	{Symbol: "𝒫", Patterns: []string{"powerset", "power set", "all subsets"}, Category: CategorySet},
	{Symbol: "∖", Patterns: []string{"set difference", "except", "without"}, Category: CategorySet},
	{Symbol: "𝔾", Patterns: []string{"graph", "network", "structure"}, Category: CategorySet},

	// Contractors
	{Symbol: "Δ", Patterns: []string{"delta", "difference", "change", "increment"}, Category: CategoryContractor},
	{Symbol: "Pre", Patterns: []string{"precondition", "requires", "before"}, Category: CategoryContractor},
	{Symbol: "Post", Patterns: []string{"postcondition", "ensures", "after", "guarantees"}, Category: CategoryContractor},
	{Symbol: "Inv", Patterns: []string{"invariant", "always true", "maintained"}, Category: CategoryContractor},

	// Intents
	{Symbol: "Ψ", Patterns: []string{"intent", "goal", "purpose", "objective"}, Category: CategoryIntent},
	{Symbol: "μ", Patterns: []string{"fitness", "utility", "score", "metric"}, Category: CategoryIntent},
	{Symbol: "Target", Patterns: []string{"target", "aim", "destination"}, Category: CategoryIntent},

	// Types
	{Symbol: "ℕ", Patterns: []string{"natural", "natural number", "positive integer", "nat", "natural numbers", "unsigned"}, Category: CategoryType},
	{Symbol: "ℤ", Patterns: []string{"integer", "int", "whole number", "integers", "signed integer"}, Category: CategoryType},
	{Symbol: "ℝ", Patterns: []string{"real", "real number", "float", "decimal", "double", "number"}, Category: CategoryType},
	{Symbol: "ℚ", Patterns: []string{"rational", "rational number", "fraction"}, Category: CategoryType},
	{Symbol: "𝔹", Patterns: []string{"boolean", "bool", "true or false", "binary", "flag"}, Category: CategoryType},
	{Symbol: "𝕊", Patterns: []string{"string", "str", "text", "char sequence", "varchar"}, Category: CategoryType},
	{Symbol: "ℂ", Patterns: []string{"complex", "complex number"}, Category: CategoryType},
	{Symbol: "List", Patterns: []string{"list", "array", "sequence", "vector"}, Category: CategoryType},
	{Symbol: "Maybe", Patterns: []string{"maybe", "optional", "nullable", "option"}, Category: CategoryType},
	{Symbol: "Either", Patterns: []string{"result", "union type"}, Category: CategoryType},

	// Truth values
	{Symbol: "⊤", Patterns: []string{"true", "top", "yes", "valid", "correct", "success", "ok"}, Category: CategoryTruth},
	{Symbol: "⊥", Patterns: []string{"false", "bottom", "no", "invalid", "incorrect", "failure", "crash", "error"}, Category: CategoryTruth},

	// Proofs and assertions
	{Symbol: "∎", Patterns: []string{"qed", "proven", "end of proof", "proved", "done"}, Category: CategorySpecial},
	{Symbol: "⊢", Patterns: []string{"proves", "entails", "derives", "turnstile", "yields"}, Category: CategorySpecial},
	{Symbol: "⊨", Patterns: []string{"models", "satisfies", "validates"}, Category: CategorySpecial},
	{Symbol: "□", Patterns: []string{"necessarily", "always", "box"}, Category: CategorySpecial},
	{Symbol: "◇", Patterns: []string{"possibly", "eventually", "diamond"}, Category: CategorySpecial},

	// Math operators
	{Symbol: "+", Patterns: []string{"plus", "added to", "sum of", "add"}, Category: CategoryMath},
	{Symbol: "−", Patterns: []string{"minus", "subtract", "subtracted from"}, Category: CategoryMath},
	{Symbol: "×", Patterns: []string{"times", "multiplied by", "product of", "multiply"}, Category: CategoryMath},
	{Symbol: "÷", Patterns: []string{"divided by", "over", "ratio of", "divide"}, Category: CategoryMath},
	{Symbol: "²", Patterns: []string{"squared", "square of", "to the power of 2"}, Category: CategoryMath},
	{Symbol: "³", Patterns: []string{"cubed", "cube of", "to the power of 3"}, Category: CategoryMath},
	{Symbol: "√", Patterns: []string{"square root", "sqrt", "root of"}, Category: CategoryMath},
	{Symbol: "Σ", Patterns: []string{"sum", "summation", "sigma"}, Category: CategoryMath},
	{Symbol: "Π", Patterns: []string{"product", "pi", "prod"}, Category: CategoryMath},
	{Symbol: "∞", Patterns: []string{"infinity", "infinite", "unbounded"}, Category: CategoryMath},

	// Block markers
	{Symbol: "⟦Ω⟧", Patterns: []string{"meta block", "metadata", "foundation"}, Category: CategoryBlock},
	{Symbol: "⟦Σ⟧", Patterns: []string{"types block", "type definitions", "glossary"}, Category: CategoryBlock},
	{Symbol: "⟦Γ⟧", Patterns: []string{"rules block", "business rules", "constraints"}, Category: CategoryBlock},
	{Symbol: "⟦Λ⟧", Patterns: []string{"functions block", "function definitions", "lambdas"}, Category: CategoryBlock},
	{Symbol: "⟦Χ⟧", Patterns: []string{"errors block", "error handling", "exceptions"}, Category: CategoryBlock},
	{Symbol: "⟦Ε⟧", Patterns: []string{"evidence block", "proof", "validation"}, Category: CategoryBlock},

	// Tuples and records
	{Symbol: "⟨", Patterns: []string{"tuple start", "record start", "angle open"}, Category: CategorySpecial},
	{Symbol: "⟩", Patterns: []string{"tuple end", "record end", "angle close"}, Category: CategorySpecial},

	// Quality tiers
	{Symbol: "◊⁺⁺", Patterns: []string{"platinum", "platinum tier", "optimal"}, Category: CategoryTier},
	{Symbol: "◊⁺", Patterns: []string{"gold", "gold tier", "production ready"}, Category: CategoryTier},
	{Symbol: "◊", Patterns: []string{"silver", "silver tier", "good"}, Category: CategoryTier},
	{Symbol: "◊⁻", Patterns: []string{"bronze", "bronze tier", "acceptable"}, Category: CategoryTier},
	{Symbol: "⊘", Patterns: []string{"reject", "rejected", "invalid tier"}, Category: CategoryTier},
}
