package rag

import "fmt"

/*
FilterSchema is the structured-output contract for the relevance filter:
a JSON array with one verdict per candidate, in input order.
*/
func FilterSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"is_relevant": map[string]any{
					"type":        "boolean",
					"description": "A boolean value (`true` or `false`) indicating if the game is relevant.",
				},
				"reasoning": map[string]any{
					"type":        "string",
					"description": "A brief, one-sentence explanation for the relevance decision.",
				},
			},
			"required": []string{"is_relevant", "reasoning"},
		},
	}
}

func hydePrompt(query string) string {
	return fmt.Sprintf(hydeTemplate, query)
}

func filteringPrompt(query, gamesJSON string) string {
	return fmt.Sprintf(filteringTemplate, query, gamesJSON)
}

func synthesisPrompt(query, gamesJSON string) string {
	return fmt.Sprintf(synthesisTemplate, query, gamesJSON)
}

const hydeTemplate = `
You are an expert video game analyst and a creative writer for a game development studio.
Your mission is to translate a user's query for a game recommendation into a hypothetical, yet plausible, video game description.
This description should read like an official summary found on a digital storefront (e.g., Steam, PlayStation Store). It must be a concise, semantically-rich paragraph that captures the core essence, gameplay mechanics, atmosphere, and genre of the game the user is looking for.

The goal is to generate a document that is highly similar to real-world game descriptions, which will be used to find the best matches in a vector database.

**Key Instructions:**
1.  **Do Not Recommend Real Games:** Do not mention any existing game titles in your response. You are creating a description for a *new, hypothetical* game.
2.  **Be the Description:** Your entire output should be the hypothetical description itself. Do not include introductory phrases like "Here is a description..." or "This game is...".
3.  **Focus on Semantics:** Embed the key concepts from the user's query (genre, mechanics, mood, art style, etc.) into a natural, flowing narrative.
4.  **Keep it Concise:** The description should be a single, dense paragraph. Aim for 80-120 words.

**Few-Shot Examples:**

---

**User Query:** "I'm looking for a souls-like game with a dark fantasy setting, fast-paced combat, and a focus on exploration."

**Hypothetical Document:**
Plunge into the shadow-drenched world of Eldoria, a kingdom ravaged by a celestial curse that has twisted its inhabitants into monstrous aberrations. As a forsaken knight, you must navigate labyrinthine castles and forgotten catacombs, piecing together the fragmented history of a fallen civilization. The combat is unforgiving and demands precision, rewarding aggressive, fast-paced swordplay and skillful parries. Every corner hides a secret, every enemy is a deadly dance, and only by mastering the fluid combat system will you uncover the source of the encroaching darkness and restore the light.

---

**User Query:** "I want a cozy and relaxing farming sim where I can also run a small shop and befriend villagers."

**Hypothetical Document:**
Welcome to Willow Creek, a charming, sun-dappled village where you've inherited a quaint but overgrown cottage. Spend your days tending to your garden, raising adorable livestock, and harvesting crops at your own pace. In the afternoon, open your little storefront to sell fresh produce and handcrafted goods to the quirky and lovable townsfolk. Build meaningful friendships, discover local secrets, and customize your home and farm to create the peaceful life of your dreams. There are no deadlines here, only the gentle rhythm of the seasons.

---

**User Query:** "A sci-fi RPG with a branching story, meaningful choices, and tactical, turn-based combat."

**Hypothetical Document:**
As the captain of the starship 'Odyssey', you hold the fate of a lost human colony in your hands. Navigate a complex web of political intrigue, corporate espionage, and moral dilemmas where every decision has lasting consequences on the narrative and your crew. Assemble a diverse team of specialists and command them in strategic, turn-based battles against alien threats and rival factions. Your legacy will be written in the stars, defined not by destiny, but by the choices you make and the alliances you forge in the cold, unforgiving vacuum of space.

---

**User Query:** "%s"

**Hypothetical Document:**
`

const filteringTemplate = `
You are a meticulous and discerning Game Curation Analyst.
Your task is to evaluate a list of game recommendations retrieved from a database and filter out any that are not genuinely helpful or relevant to the user's original query. The games were retrieved based on semantic similarity, which can sometimes be misleading. You must act as a final quality gate.

You will be given the user's original query and a list of candidate games, each with a name and description.

**Evaluation Criteria:**
- A game is **NOT RELEVANT** if it clearly mismatches the core requests of the query. Consider genre, gameplay mechanics, art style, mood, and any specific constraints mentioned by the user (e.g., "no horror," "must be multiplayer").
- A game is **RELEVANT** if it aligns well with the user's request, even if it's not a perfect 1:1 match.

**Output Format:**
Your output MUST be a JSON array with exactly one object per candidate game, in the same order as the input. Each object must include:
- "is_relevant": A boolean value (` + "`true` or `false`" + `).
- "reasoning": A brief, one-sentence explanation for your decision.

**Few-Shot Example:**

---

**Input:**
{
  "query": "I'm looking for a souls-like game with a dark fantasy setting and fast-paced combat.",
  "games": [
    {
      "name": "Shadow of the Ashen King",
      "description": "In a world shrouded in eternal dusk, you are a lone warrior against corrupted gods. Features punishing, high-speed combat and deep exploration of gothic ruins."
    },
    {
      "name": "Cozy Farm Meadows",
      "description": "Leave the stressful city life behind! Grow crops, raise cute animals, and build friendships with cheerful villagers in this relaxing farming simulator."
    },
    {
      "name": "Blade of the Abyss",
      "description": "A challenging action-RPG where you must master a fluid, combo-based combat system to survive in a grim, interconnected world."
    }
  ]
}

**Output:**
[
  {
    "is_relevant": true,
    "reasoning": "This game matches the dark fantasy setting and fast-paced, punishing combat requested."
  },
  {
    "is_relevant": false,
    "reasoning": "This is a relaxing farming simulator and does not match the souls-like genre."
  },
  {
    "is_relevant": true,
    "reasoning": "This game aligns with the request for a challenging action-RPG with fluid combat."
  }
]

---

**Input:**
{
  "query": "%s",
  "games": %s
}

**Output:**
`

const synthesisTemplate = `
You are a friendly, enthusiastic, and knowledgeable game concierge.
Your goal is to provide a final, polished, and helpful response to a user who is looking for game recommendations.

You will be given the user's original query and a curated list of games that have been determined to be highly relevant. For each game, you have its name, description, and a "reasoning" note that explains why it's a good fit.

**Your Mission:**
Synthesize all this information into a single, conversational, and engaging message for the user. For each game, briefly introduce it and explain why it's a perfect recommendation for them, using the provided reasoning as your guide.

**Key Instructions:**
- **Be Conversational:** Address the user directly. Use a friendly and approachable tone.
- **Summarize, Don't Just Copy:** Do not just repeat the game descriptions. Create a fresh, concise summary for each recommendation.
- **Integrate the "Why":** Seamlessly weave the reasoning into your recommendation to explain *why* it fits the user's request.
- **Clear and Organized:** Present the recommendations clearly, perhaps using bullet points or bolding the game titles.
- **Single Response:** Your entire output should be the text message to the user. Do not use JSON or any other structured format.

---

**Example:**

**Input:**
{
  "query": "I'm looking for a souls-like game with a dark fantasy setting and fast-paced combat.",
  "games": [
    {
      "name": "Shadow of the Ashen King",
      "description": "In a world shrouded in eternal dusk, you are a lone warrior against corrupted gods. Features punishing, high-speed combat and deep exploration of gothic ruins.",
      "reasoning": "This game matches the dark fantasy setting and fast-paced, punishing combat requested."
    },
    {
      "name": "Blade of the Abyss",
      "description": "A challenging action-RPG where you must master a fluid, combo-based combat system to survive in a grim, interconnected world.",
      "reasoning": "This game aligns with the request for a challenging action-RPG with fluid combat."
    }
  ]
}

**Output:**
"Hello! Based on your request for a souls-like with a dark fantasy setting and fast combat, I've found a couple of games you'll love:

*   **Shadow of the Ashen King:** This one seems to be exactly what you're looking for! It has that punishing, high-speed combat and a dark, gothic world to explore.
*   **Blade of the Abyss:** You should also check this one out. It's a challenging action-RPG that really focuses on a fluid, combo-based combat system, which sounds right up your alley.

I hope this helps you find your next great game!"

---

**Input:**
{
  "query": "%s",
  "games": %s
}

**Output:**
`
