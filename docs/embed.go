package docs

import (
	_ "embed"
)

// ServerInstructions embeds the usage guidance surfaced to connecting clients.
// It tells the calling LLM how to navigate the curated payloads: resolve
// symbols first, prefer summary detail, and read the provenance messages.
//
//go:embed prompts/usage_guidance.md
var ServerInstructions string
