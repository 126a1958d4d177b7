package session

// feedbackBand carries the fixed feedback bundle for one score band.
type feedbackBand struct {
	minScore        int
	overall         string
	strengths       []string
	improvements    []string
	responseQuality string
}

// feedbackBands maps normalized scores into five fixed bands, checked top
// down. Static lookup data, never mutated.
var feedbackBands = []feedbackBand{
	{
		minScore: 90,
		overall:  "Excellent interview performance! You demonstrated strong knowledge, provided detailed responses with relevant examples, and communicated clearly and confidently.",
		strengths: []string{
			"Provided comprehensive answers with concrete examples",
			"Communicated ideas clearly and effectively",
			"Demonstrated deep knowledge in your field",
			"Showed enthusiasm and passion for your work",
			"Structured your responses well with a clear logical flow",
		},
		improvements: []string{
			"Continue to refine your storytelling to make responses even more memorable",
			"Consider preparing more quantifiable achievements to highlight your impact",
		},
		responseQuality: "Excellent",
	},
	{
		minScore: 75,
		overall:  "Very good interview performance. You provided solid answers with good examples and demonstrated strong communication skills.",
		strengths: []string{
			"Provided detailed answers to most questions",
			"Included relevant examples from your experience",
			"Communicated clearly and professionally",
			"Demonstrated good technical knowledge",
		},
		improvements: []string{
			"Try to be more concise with some of your answers",
			"Include more specific, measurable results in your examples",
			"Further develop your explanations of technical concepts",
		},
		responseQuality: "Very Good",
	},
	{
		minScore: 60,
		overall:  "Good interview performance. You covered the basics well, though some answers could have been more detailed or include more specific examples.",
		strengths: []string{
			"Responded to all questions appropriately",
			"Demonstrated adequate knowledge in your field",
			"Maintained professional communication",
		},
		improvements: []string{
			"Provide more specific examples from your experience",
			"Develop more detailed responses to technical questions",
			"Practice structuring your answers with the STAR method",
			"Work on highlighting your unique skills and contributions",
		},
		responseQuality: "Good",
	},
	{
		minScore: 40,
		overall:  "Satisfactory interview performance. You answered questions adequately but need to provide more detail and specific examples.",
		strengths: []string{
			"Responded to questions directly",
			"Showed basic knowledge in required areas",
			"Maintained professional demeanor",
		},
		improvements: []string{
			"Significantly increase the detail in your responses",
			"Include concrete examples for each major point",
			"Develop more comprehensive explanations of your experience",
			"Practice articulating your thought process more clearly",
			"Focus on highlighting achievements rather than just responsibilities",
		},
		responseQuality: "Satisfactory",
	},
	{
		minScore: 0,
		overall:  "Your interview needs improvement. Focus on providing more complete answers with specific examples from your experience.",
		strengths: []string{
			"Showed willingness to answer all questions",
			"Demonstrated basic communication skills",
		},
		improvements: []string{
			"Thoroughly prepare answers to common interview questions",
			"Develop detailed examples from your experience",
			"Practice explaining your technical knowledge more clearly",
			"Work on providing more structured and complete responses",
			"Consider researching the role and industry more deeply",
		},
		responseQuality: "Needs Improvement",
	},
}

func bandFor(score int) feedbackBand {
	for _, band := range feedbackBands {
		if score >= band.minScore {
			return band
		}
	}
	return feedbackBands[len(feedbackBands)-1]
}
