package docgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const updateInstructions = "You are a technical documentation specialist. Update the existing documentation " +
	"according to the user's request while keeping its original structure and format. " +
	"Return the complete updated documentation."

func generatePrompt(name, structure string, sample []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write concise documentation for %q.\n\n", name)
	b.WriteString("Structural analysis:\n")
	b.WriteString(structure)
	b.WriteString("\n\nData sample:\n```json\n")
	b.Write(indent(sample))
	b.WriteString("\n```\n\n")
	b.WriteString(`Provide clear documentation with the following sections:
1. OVERVIEW
2. DATA STRUCTURE
3. KEY COMPONENTS
4. USAGE GUIDELINES

Formatting guidelines:
- Use clear section headers in upper case
- Use "- " bullets for lists
- Keep paragraphs short and focused
- Do not use block quotes or bold text

Keep the documentation focused on the essential information.`)
	return b.String()
}

func updatePrompt(name, current, instruction string, sample []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current documentation for %q:\n\n", name)
	b.WriteString(current)
	b.WriteString("\n\nData context:\n```json\n")
	b.Write(indent(sample))
	b.WriteString("\n```\n\n")
	fmt.Fprintf(&b, "Improvement request: %s\n\n", instruction)
	b.WriteString(`Instructions:
- Keep the structure and format of the existing documentation
- Keep every existing section (OVERVIEW, DATA STRUCTURE, etc.)
- Update or add information according to the request
- Use the same formatting ("- " bullets, etc.)
- Return the complete updated documentation
- Preserve technical details unrelated to the update`)
	return b.String()
}

func indent(sample []byte) []byte {
	var out bytes.Buffer
	if err := json.Indent(&out, sample, "", "  "); err != nil {
		return sample
	}
	return out.Bytes()
}
