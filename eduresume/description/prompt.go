package description

import "strings"

// BuildPrompt assembles the user prompt for the generator. The shape is
// fixed: brief line, bulleted points, optional context, then the output
// instruction.
func BuildPrompt(req *GenerateRequest) string {
	typePrefix := "project"
	if req.Type == KindJob {
		typePrefix = "job experience"
	}

	var b strings.Builder
	b.WriteString("Generate a professional resume bullet point for " + typePrefix + ":\n\n")

	if req.Brief != "" {
		b.WriteString("Brief: " + req.Brief + "\n")
	}

	if len(req.Points) > 0 {
		b.WriteString("Key points:\n")
		for _, p := range req.Points {
			b.WriteString("• " + p + "\n")
		}
		b.WriteString("\n")
	}

	if req.Context != "" {
		b.WriteString("Context: " + req.Context + "\n\n")
	}

	b.WriteString("Output ONLY 1-2 impactful bullet points (max 2 lines each). Start with strong action verb. Be concise and professional.")
	return b.String()
}
