package review

import (
	"fmt"
	"strings"
)

// FeedbackSentinel delimits the prompt from the completion the model is
// expected to produce. It closes every prompt, and generated text is trimmed
// to whatever follows its last occurrence.
const FeedbackSentinel = "REVIEW:"

// NoFeedback replaces an empty trimmed completion.
const NoFeedback = "AI model generated no specific feedback."

const promptTemplate = `Review this %s code and provide:
1. Brief summary of what the code does
2. Readability suggestions
3. Potential bugs
4. Security concerns
5. Refactoring suggestions

Code:
%s

` + FeedbackSentinel

// BuildPrompt renders the fixed review prompt: the declared language, the
// five requested analysis angles, the code verbatim, and the sentinel.
func BuildPrompt(code string, lang Language) string {
	return fmt.Sprintf(promptTemplate, lang, code)
}

// TruncatePrompt bounds the prompt to maxChars for the model's limited input
// window. A truncated prompt gets the sentinel re-appended so the model still
// receives its completion cue.
func TruncatePrompt(prompt string, maxChars int) string {
	if maxChars <= 0 || len(prompt) <= maxChars {
		return prompt
	}
	return prompt[:maxChars] + "\n" + FeedbackSentinel
}

// ExtractFeedback post-processes generated text. Seq2seq models often echo
// the prompt; only the text after the last sentinel occurrence is kept.
func ExtractFeedback(generated string) string {
	if idx := strings.LastIndex(generated, FeedbackSentinel); idx >= 0 {
		generated = generated[idx+len(FeedbackSentinel):]
	}
	feedback := strings.TrimSpace(generated)
	if feedback == "" {
		return NoFeedback
	}
	return feedback
}
