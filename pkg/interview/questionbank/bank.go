package questionbank

import (
	"math/rand"
)

// DefaultRole is used when a requested role has no question pool.
const DefaultRole = "software-developer"

// rolePools holds the static per-role interview question pools.
// Reference data only, never mutated at runtime.
var rolePools = map[string][]string{
	"software-developer": {
		"Tell me about yourself and your experience in software development.",
		"What programming languages are you most comfortable with?",
		"Describe a challenging project you worked on and how you solved the problems you encountered.",
		"How do you stay updated with the latest technologies and industry trends?",
		"Explain your approach to debugging a complex issue in your code.",
		"How do you handle code reviews and feedback from team members?",
		"Tell me about your experience with version control systems like Git.",
		"How do you ensure your code is maintainable and scalable?",
		"Describe your experience with agile methodologies.",
		"What's your approach to testing your code?",
	},
	"data-scientist": {
		"Tell me about your background in data science.",
		"What data analysis tools and libraries are you familiar with?",
		"Explain a complex data project you worked on and the insights you derived.",
		"How do you approach feature selection in a machine learning model?",
		"Describe your experience with data visualization.",
		"How do you handle missing or incomplete data?",
		"Explain the difference between supervised and unsupervised learning.",
		"How do you evaluate the performance of a machine learning model?",
		"Describe your experience with big data technologies.",
		"How do you communicate technical findings to non-technical stakeholders?",
	},
	"product-manager": {
		"Tell me about your experience in product management.",
		"How do you prioritize features in a product roadmap?",
		"Describe a product you launched from conception to release.",
		"How do you gather and incorporate user feedback?",
		"Tell me about a time when you had to make a difficult product decision.",
		"How do you work with engineering teams to deliver products on time?",
		"Describe your approach to product analytics and metrics.",
		"How do you balance business goals with user needs?",
		"Tell me about a product that failed and what you learned from it.",
		"How do you stay updated on market trends and competitor products?",
	},
	"marketing": {
		"Tell me about your marketing experience.",
		"Describe a successful marketing campaign you've led.",
		"How do you measure the success of your marketing efforts?",
		"Tell me about your experience with digital marketing channels.",
		"How do you identify and target your audience?",
		"Describe your approach to content marketing.",
		"How do you stay updated with the latest marketing trends?",
		"Tell me about a marketing challenge you faced and how you overcame it.",
		"How do you allocate marketing budget across different channels?",
		"Describe your experience with marketing analytics and tools.",
	},
}

// followUpPool holds generic probing prompts used once the primary
// questions are exhausted.
var followUpPool = []string{
	"That's interesting. Can you elaborate on that?",
	"Thank you for sharing. Could you provide a specific example?",
	"I'd like to understand more about your approach. Can you walk me through your process?",
	"That's helpful. How do you apply that knowledge in practical situations?",
	"Let's dig deeper into that. What challenges did you face?",
	"How did that experience shape your professional development?",
	"What skills did you gain from that experience?",
	"How would you handle a similar situation in the future?",
	"What metrics did you use to measure success in that scenario?",
	"How did that project align with the broader business objectives?",
}

// Bank supplies randomized question subsets per role. The random source is
// injected so sessions are reproducible in tests.
type Bank struct {
	rnd *rand.Rand
}

func New(rnd *rand.Rand) *Bank {
	return &Bank{rnd: rnd}
}

// QuestionsFor returns 5-7 distinct questions for the given role, drawn
// without replacement in randomized order. Unknown roles fall back to the
// default role's pool, so the result is never empty.
func (b *Bank) QuestionsFor(role string) []string {
	pool, ok := rolePools[role]
	if !ok {
		pool = rolePools[DefaultRole]
	}

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	b.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := b.rnd.Intn(3) + 5 // 5-7 questions
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// FollowUp returns a random probing prompt from the static follow-up pool.
func (b *Bank) FollowUp() string {
	return followUpPool[b.rnd.Intn(len(followUpPool))]
}

// Roles lists the roles with a dedicated question pool.
func Roles() []string {
	roles := make([]string, 0, len(rolePools))
	for role := range rolePools {
		roles = append(roles, role)
	}
	return roles
}
