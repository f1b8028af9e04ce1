package schema

// Content is a single block of tool output. Every tool in this server
// produces text blocks only.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolResult is the uniform envelope for one tool invocation. Failures are
// carried as text with IsError set; they are never surfaced as protocol
// errors.
type ToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// TextResult wraps plain text in a successful ToolResult.
func TextResult(text string) ToolResult {
	return ToolResult{Content: []Content{{Type: "text", Text: text}}}
}

// ErrorResult wraps a failure message in a ToolResult with IsError set.
func ErrorResult(text string) ToolResult {
	return ToolResult{Content: []Content{{Type: "text", Text: text}}, IsError: true}
}

// Text flattens the result's text blocks into one string.
func (r ToolResult) Text() string {
	switch len(r.Content) {
	case 0:
		return ""
	case 1:
		return r.Content[0].Text
	}
	out := r.Content[0].Text
	for _, c := range r.Content[1:] {
		out += "\n" + c.Text
	}
	return out
}
