package impl

import (
	"fmt"
	"strings"

	"notesia/internal/domain/entity"
)

const assistantSystemPrompt = `You are an assistant specialised in note-taking and organising information. You help users to:

1. Summarise long texts into key points and main concepts
2. Generate ideas and structure information clearly
3. Extract important and relevant information from texts
4. Organise and structure notes efficiently
5. Think through related ideas and concepts

Always give clear, well-structured answers focused on productivity. Use markdown when it improves readability. Answer in the language the user writes in.`

func chatPrompt(prompt, context string) string {
	if context != "" {
		return fmt.Sprintf("%s\n\nContext: %s\n\nUser question: %s", assistantSystemPrompt, context, prompt)
	}

	return fmt.Sprintf("%s\n\nUser question: %s", assistantSystemPrompt, prompt)
}

func summarizePrompt(note *entity.Note) string {
	return fmt.Sprintf(`Write a concise, useful summary of the following note.

Title: %s
Content: %s

The summary must:
- Capture the main points
- Be clear and concise
- Keep the most important information
- Be at most 3-4 sentences
- Use the same language as the note`, note.Title, note.Content)
}

var enhancementInstructions = map[entity.EnhancementType]string{
	entity.EnhancementImprove:  "Improve the clarity, structure and grammar of the following text while keeping its original meaning:",
	entity.EnhancementExpand:   "Expand the following content with more details, examples and relevant explanations:",
	entity.EnhancementSimplify: "Simplify the following text so it is easier to understand while keeping the essential information:",
}

func enhancePrompt(note *entity.Note, enhancementType entity.EnhancementType) string {
	return fmt.Sprintf(`%s

Title: %s
Content: %s

Return the enhanced content with appropriate formatting and structure, in the same language as the note.`,
		enhancementInstructions[entity.NormalizeEnhancementType(enhancementType)], note.Title, note.Content)
}

func suggestionsPrompt(note *entity.Note) string {
	return fmt.Sprintf(`Based on the following content, give 3-5 short suggestions to improve it further, one per line:

%s

The suggestions must be specific and actionable.`, note.Content)
}

func generatePrompt(request string) string {
	return fmt.Sprintf(`Write the content of a note based on the following request:

%s

The content must be:
- Well structured and organised
- Informative and useful
- Suitable for a note-taking application
- Include the main points and relevant details`, request)
}

func titlePrompt(content string) string {
	return fmt.Sprintf("Write a concise, descriptive title for the following content. Reply with the title only.\n\n%s...", truncateRunes(content, titleSourceLength))
}

func analyzePrompt(notes []*entity.Note) string {
	entries := make([]string, 0, len(notes))
	for _, note := range notes {
		entries = append(entries, fmt.Sprintf("Title: %s\nContent: %s...", note.Title, truncateRunes(note.Content, analysisContentLength)))
	}

	return fmt.Sprintf(`Analyse the following notes of a user and provide useful insights:

%s

Provide:
1. Main topics identified
2. Patterns in the content
3. Suggestions for organisation
4. The user's areas of interest
5. Recommendations to improve productivity

Keep the analysis concise and actionable.`, strings.Join(entries, "\n\n"))
}
