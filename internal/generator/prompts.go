package generator

import (
	"fmt"
	"strings"

	"tutorapi/internal/model"
)

const conceptsPrompt = `Extract 3-5 key concepts from this text. For each concept provide:
- A short title (max 50 characters)
- A brief explanation (2-3 sentences)
- Importance (high/medium/low)

Respond with a JSON array only, no additional text:
[
  {
    "title": "Concept Title",
    "explanation": "Brief explanation of the concept",
    "importance": "high"
  }
]

Text: %s`

const flashcardsPrompt = `Create 2-3 flashcards for this concept. Follow these rules:
1. Questions should test understanding, not just memory
2. Answers should be concise but complete
3. Avoid simple definition questions
4. Make questions practical and application-based

Concept:
Title: %s
Explanation: %s

Respond with a JSON array only:
[
  {
    "question": "Clear, specific question here?",
    "answer": "Complete but concise answer here."
  }
]`

const studyPlanPrompt = `Create a study plan for these concepts:
%s

Include:
- Recommended study order
- Time estimates
- Suggested activities
- Key relationships between concepts

Format as markdown with headings`

const quizPrompt = `Create %d multiple choice quiz questions based on these concepts:
%s

For each question:
- Provide 4 options
- Mark the correct answer (0-3 index)
- Include a brief explanation

Respond with JSON only:
{
  "questions": [
    {
      "question": "...",
      "options": ["...", "...", "...", "..."],
      "correct_index": 0,
      "explanation": "..."
    }
  ]
}`

func titleList(concepts []model.Concept) string {
	var b strings.Builder
	for _, c := range concepts {
		fmt.Fprintf(&b, "- %s\n", c.Title)
	}
	return strings.TrimRight(b.String(), "\n")
}
