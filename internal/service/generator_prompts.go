package service

import "fmt"

func theoryPrompt(topicTitle string) string {
	return fmt.Sprintf(`Act as an expert English teacher.
Explain the topic "%s" to a student.
Use Markdown formatting.
Include:
1. Definition/Usage.
2. Structure/Formulas (if grammar).
3. Examples (at least 3).
4. Common mistakes to avoid.

Keep the tone encouraging and clear. The explanation should be in Spanish, but examples in English.`, topicTitle)
}

func questionsPrompt(topicTitle string, count int, difficulty Difficulty) string {
	return fmt.Sprintf(`Generate %d multiple-choice questions about "%s" for an English student.
Difficulty: %s.

Return pure JSON with this structure:
{
  "questions": [
    {
      "id": "unique_id",
      "text": "Question text here (in English)",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": "The exact text of the correct option",
      "explanation": "Explanation of why it is correct (in Spanish)"
    }
  ]
}`, count, topicTitle, difficulty)
}

const comicPromptPrefix = "Create a 2-panel educational comic strip pixel art style. "

var comicScenes = map[string]string{
	"past-simple-cont": "Left panel: A detective in a trench coat investigating a crime scene with a magnifying glass (Past Continuous 'was investigating'). " +
		"Right panel: The same detective suddenly finding a glowing golden key on the floor, surprised (Past Simple 'found'). 16-bit pixel art.",
	"pres-simple-cont": "Left panel: A detective standing calmly in an office smoking a pipe, caption 'I solve crimes'. " +
		"Right panel: The same detective running fast chasing a shadowy thief in a city street, sweating, caption 'I am chasing a suspect'. 16-bit pixel art.",
}

const defaultComicScene = "A funny situation showing the difference between two grammar tenses. 16-bit pixel art."

func comicPrompt(topicID string) string {
	if scene, ok := comicScenes[topicID]; ok {
		return comicPromptPrefix + scene
	}
	return comicPromptPrefix + defaultComicScene
}
