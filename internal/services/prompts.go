package services

import (
	"fmt"
	"strings"

	"github.com/skillforge/skillforge-backend/internal/models"
)

// Prompt builders are pure string assembly - no IO, no errors. Optional
// fields render as "Not provided" so the model always sees every slot.

// BuildStructurePrompt asks for a complete course outline as JSON
func BuildStructurePrompt(in models.GenerateCourseInput) string {
	description := in.Description
	if description == "" {
		description = "Not provided"
	}
	includeVideos := "No"
	if in.IncludeVideos {
		includeVideos = "Yes"
	}

	var b strings.Builder
	b.WriteString("Create a comprehensive course structure for the following course:\n\n")
	fmt.Fprintf(&b, "Course Name: %s\n", in.Name)
	fmt.Fprintf(&b, "Description: %s\n", description)
	fmt.Fprintf(&b, "Category: %s\n", in.Category)
	fmt.Fprintf(&b, "Difficulty Level: %s\n", in.Difficulty)
	fmt.Fprintf(&b, "Number of Chapters: %d\n", in.Chapters)
	fmt.Fprintf(&b, "Include Videos: %s\n\n", includeVideos)

	b.WriteString("Please generate a detailed course structure with the following requirements:\n\n")
	b.WriteString("1. Course overview with estimated total duration\n")
	b.WriteString("2. Prerequisites (if any)\n")
	b.WriteString("3. Learning objectives (3-5 key outcomes)\n")
	fmt.Fprintf(&b, "4. %d chapters, each with:\n", in.Chapters)
	b.WriteString("   - Chapter title and description\n")
	b.WriteString("   - Estimated duration (in hours)\n")
	b.WriteString("   - 3-5 key topics covered\n")
	b.WriteString("   - 3-4 lessons per chapter with titles and brief descriptions\n")
	b.WriteString("   - Duration for each lesson (15-45 minutes)\n\n")

	b.WriteString("Make sure the content is:\n")
	fmt.Fprintf(&b, "- Appropriate for %s level learners\n", in.Difficulty)
	b.WriteString("- Logically structured and progressive\n")
	b.WriteString("- Practical and engaging\n")
	fmt.Fprintf(&b, "- Relevant to %s\n\n", in.Category)

	b.WriteString(`Return the response as a valid JSON object with this exact structure:
{
  "title": "course title",
  "description": "detailed course description",
  "estimatedDuration": "X-Y hours",
  "prerequisites": ["prerequisite1", "prerequisite2"],
  "learningObjectives": ["objective1", "objective2", "objective3"],
  "chapters": [
    {
      "id": "chapter-1",
      "title": "Chapter Title",
      "description": "Chapter description",
      "duration": "X hours",
      "topics": ["topic1", "topic2", "topic3"],
      "lessons": [
        {
          "id": "lesson-1-1",
          "title": "Lesson Title",
          "content": "Brief lesson description",
          "type": "text",
          "duration": "X minutes"
        }
      ]
    }
  ]
}
`)
	return b.String()
}

// BuildLessonPrompt asks for full markdown content for one lesson
func BuildLessonPrompt(lesson models.Lesson, chapterContext, courseContext, difficulty string) string {
	var b strings.Builder
	b.WriteString("Generate detailed lesson content for the following lesson:\n\n")
	fmt.Fprintf(&b, "Course Context: %s\n", orNotProvided(courseContext))
	fmt.Fprintf(&b, "Chapter Context: %s\n", orNotProvided(chapterContext))
	fmt.Fprintf(&b, "Lesson Title: %s\n", lesson.Title)
	fmt.Fprintf(&b, "Lesson Description: %s\n", orNotProvided(lesson.Content))
	fmt.Fprintf(&b, "Difficulty Level: %s\n", difficulty)
	fmt.Fprintf(&b, "Target Duration: %s\n\n", orNotProvided(lesson.Duration))

	b.WriteString("Create comprehensive lesson content that includes:\n")
	b.WriteString("1. Learning objectives for this specific lesson\n")
	b.WriteString("2. Detailed explanation of concepts\n")
	b.WriteString("3. Practical examples and use cases\n")
	b.WriteString("4. Step-by-step instructions where applicable\n")
	b.WriteString("5. Key takeaways and summary\n")
	b.WriteString("6. Practice exercises or reflection questions\n\n")

	b.WriteString("The content should be:\n")
	fmt.Fprintf(&b, "- Appropriate for %s level learners\n", difficulty)
	b.WriteString("- Engaging and easy to follow\n")
	b.WriteString("- Practical with real-world applications\n")
	b.WriteString("- Well-structured with clear sections\n\n")

	b.WriteString("Format the content in markdown with proper headings, bullet points, and code blocks where appropriate.\n")
	return b.String()
}

// BuildChapterDocumentPrompt asks for one long-form document covering a
// whole chapter, lesson by lesson
func BuildChapterDocumentPrompt(chapter models.Chapter, courseTitle, difficulty string) string {
	var b strings.Builder
	b.WriteString("Generate a complete study document for the following course chapter:\n\n")
	fmt.Fprintf(&b, "Course: %s\n", orNotProvided(courseTitle))
	fmt.Fprintf(&b, "Chapter Title: %s\n", chapter.Title)
	fmt.Fprintf(&b, "Chapter Description: %s\n", orNotProvided(chapter.Description))
	fmt.Fprintf(&b, "Topics Covered: %s\n", orNotProvided(strings.Join(chapter.Topics, ", ")))
	fmt.Fprintf(&b, "Difficulty Level: %s\n\n", difficulty)

	if len(chapter.Lessons) > 0 {
		b.WriteString("The chapter contains these lessons:\n")
		for _, lesson := range chapter.Lessons {
			fmt.Fprintf(&b, "- %s: %s\n", lesson.Title, lesson.Content)
		}
		b.WriteString("\n")
	}

	b.WriteString("Write one continuous document that works through every lesson in order, with:\n")
	b.WriteString("1. A short chapter introduction\n")
	b.WriteString("2. A dedicated section per lesson with explanations and examples\n")
	b.WriteString("3. A chapter summary with key takeaways\n\n")

	fmt.Fprintf(&b, "Keep the material appropriate for %s level learners.\n", difficulty)
	b.WriteString("Format the document in markdown with proper headings, bullet points, and code blocks where appropriate.\n")
	return b.String()
}

// BuildQuizPrompt asks for a chapter quiz as JSON
func BuildQuizPrompt(chapterTitle string, topics []string, difficulty string) string {
	var b strings.Builder
	b.WriteString("Create a quiz for the following chapter:\n\n")
	fmt.Fprintf(&b, "Chapter: %s\n", chapterTitle)
	fmt.Fprintf(&b, "Topics Covered: %s\n", orNotProvided(strings.Join(topics, ", ")))
	fmt.Fprintf(&b, "Difficulty Level: %s\n\n", difficulty)

	b.WriteString("Generate 5-8 quiz questions that test understanding of the key concepts. Include:\n")
	b.WriteString("- 3-4 multiple choice questions\n")
	b.WriteString("- 1-2 true/false questions\n")
	b.WriteString("- 1-2 short answer questions\n\n")

	b.WriteString("For each question provide:\n")
	b.WriteString("- Clear, unambiguous question text\n")
	b.WriteString("- Answer options (for multiple choice)\n")
	b.WriteString("- Correct answer\n")
	b.WriteString("- Brief explanation of why the answer is correct\n\n")

	b.WriteString(`Return as valid JSON with this structure:
{
  "id": "quiz-id",
  "title": "Chapter Quiz: [Chapter Name]",
  "questions": [
    {
      "id": "q1",
      "question": "Question text",
      "type": "multiple-choice",
      "options": ["A", "B", "C", "D"],
      "correctAnswer": "A",
      "explanation": "Explanation text"
    }
  ]
}
`)
	return b.String()
}

// BuildTutorPrompt assembles the tutor system context, recent history and
// the student's question into a single prompt
func BuildTutorPrompt(message string, courseCtx *models.TutorContext, history []models.TutorMessage) string {
	var b strings.Builder
	b.WriteString(`You are an AI tutor helping students learn. You should:
- Provide clear, educational explanations
- Use examples and analogies when helpful
- Encourage learning and critical thinking
- Ask follow-up questions to check understanding
- Adapt your explanations to the student's level

`)

	if courseCtx != nil {
		b.WriteString("Current learning context:\n")
		fmt.Fprintf(&b, "- Course: %s\n", courseCtx.CourseName)
		fmt.Fprintf(&b, "- Chapter: %s\n", courseCtx.CurrentChapter)
		fmt.Fprintf(&b, "- Lesson: %s\n\n", courseCtx.CurrentLesson)
	}

	// only the last few turns matter for context
	if len(history) > 0 {
		recent := history
		if len(recent) > 5 {
			recent = recent[len(recent)-5:]
		}
		b.WriteString("Previous conversation:\n")
		for _, msg := range recent {
			fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Student question: %s\n\n", message)
	b.WriteString("Please provide a helpful, educational response:")
	return b.String()
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}
