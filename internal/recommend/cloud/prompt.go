package cloud

import (
	"fmt"
	"strings"
)

const systemPromptHeader = `You are an interior colour consultant helping someone repaint a room.
Reply with a JSON array only. Each element is an object with these fields:
"color": a hex colour such as "#A1B2C3",
`

// buildSystemPrompt states the reply format. categories, when given, restricts the category field.
func buildSystemPrompt(categories []string) string {
	var sb strings.Builder
	sb.WriteString(systemPromptHeader)
	if len(categories) > 0 {
		fmt.Fprintf(&sb, "\"category\": one of %s,\n", strings.Join(categories, ", "))
	} else {
		sb.WriteString("\"category\": a short upper-case label such as MODERN,\n")
	}
	sb.WriteString("\"reason\": one short sentence,\n")
	sb.WriteString("\"confidence\": a number between 0 and 1.")
	return sb.String()
}

// buildPrompt describes the surface and room to the model.
func buildPrompt(req Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The surface is currently painted %s.\n", req.Base.Hex())
	fmt.Fprintf(&sb, "Ambient lighting is %s (%.2f on a 0 to 1 scale).\n", lightingLabel(req.Lighting), req.Lighting)
	if req.Style != "" {
		fmt.Fprintf(&sb, "The owner prefers a %s interior style.\n", req.Style)
	}
	fmt.Fprintf(&sb, "Suggest %d alternative wall colours.", req.Count)
	return sb.String()
}

func lightingLabel(v float64) string {
	switch {
	case v < 0.3:
		return "dim"
	case v > 0.7:
		return "bright"
	default:
		return "moderate"
	}
}
