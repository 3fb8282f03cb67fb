package prompt

import "fmt"

// 各モードのベーステンプレートです。文言は生成結果の品質に直結するため変更時は注意してください。
const (
	generalTemplate = "Write a descriptive poem inspired by the attached image. Focus on capturing the mood, atmosphere, and key visual elements (like colors, textures, and subjects). Use figurative language (metaphor, simile, personification) to bring the scene to life. The poem should have a tone that matches the overall feeling of the picture."

	bestTemplate = "Write a deeply evocative, free-verse poem based entirely on the attached image. Identify the central subject(s) and their relationship. Describe the atmosphere and lighting using vivid color imagery and sensory details (sound, texture, smell, if implied). Establish a strong mood. Use at least one metaphor or simile derived directly from the picture's elements. The final poem should be about 12-16 lines long."

	styleTemplate = "Create a %[1]s based on the attached image. The poem should explore the visual themes present in the image. The language should be evocative, using the imagery from the picture as its central motif. Adhere strictly to the structural rules of a %[1]s."

	narrativeTemplate = "Analyze the attached image and write a poem that tells a story or evokes a deep feeling. The poem should convey a sense of %s and suggest a narrative or internal life that the visual implies. Focus on the perspective of a subject within the scene."

	topicClause = "\n\nAdditionally, incorporate the following theme or element: "
)

func styleText(form string) string {
	return fmt.Sprintf(styleTemplate, form)
}

func narrativeText(tone string) string {
	return fmt.Sprintf(narrativeTemplate, tone)
}
