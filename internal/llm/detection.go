package llm

import "os"

// IsLLMEnvironment returns true if running in a detected LLM environment.
// Output formatting switches to compact JSON when an LLM tool is driving
// the CLI, since pretty output wastes its context window.
func IsLLMEnvironment() bool {
	// Check explicit LLM caller
	if os.Getenv("SIGIL_CALLER") == "llm" {
		return true
	}

	// Check for known LLM tools
	return detectKnownLLMTools()
}

// detectKnownLLMTools checks for environment variables set by known LLM tools
func detectKnownLLMTools() bool {
	// Claude Code
	if os.Getenv("CLAUDECODE") != "" || os.Getenv("CLAUDE_CODE_ENTRYPOINT") != "" {
		return true
	}

	// Cursor
	if os.Getenv("CURSOR") != "" {
		return true
	}

	// GitHub Copilot (if it sets identifying vars)
	if os.Getenv("GITHUB_COPILOT") != "" {
		return true
	}

	return false
}
