package assistant

import (
	"fmt"

	"github.com/heartmarshall/lexicon-journal/internal/provider"
)

func planPrompt(topic string) string {
	return fmt.Sprintf(`Create a structured writing outline for a journal entry about: %q.
The goal is to write 500-700 words.
Provide 3-4 section headers with guiding questions for each.
Keep it concise and format it as markdown.`, topic)
}

func analyzePrompt(topic, text string) string {
	return fmt.Sprintf(`Analyze this journal entry based on the topic: %q.
Text: %q

Provide:
1. A score from 0-100 based on clarity, depth, and vocabulary usage.
2. Brief encouraging feedback (max 2 sentences).
3. 3 specific suggestions for improvement (specific sentence rewrites or questions to expand on).

Return JSON with keys: score, feedback, suggestions.`, topic, text)
}

var analyzeSchema = provider.Object(
	provider.Field("score", provider.Number("Score from 0 to 100")),
	provider.Field("feedback", provider.String("Encouraging feedback, at most two sentences")),
	provider.Field("suggestions", provider.Array(provider.String("One concrete suggestion"))),
)

func completionPrompt(topic, context string) string {
	return fmt.Sprintf(`You are a writing assistant. Continue the following text naturally, keeping the same tone and style.
The topic is: %q.

Current text: "...%s"

Generate only the next 1-2 sentences to help the writer continue. Do not repeat the existing text.`, topic, context)
}

func grammarPrompt(text string) string {
	return fmt.Sprintf(`Act as a professional editor. Correct the grammar, spelling, and punctuation of the following text.
Do not change the style, tone, or meaning. Only fix errors.
Return ONLY the corrected text.

Text to fix:
%s`, text)
}
