package generate

// Model assignments per agent. The story gets the strongest model; the
// vision judge and announcer run on the cheaper flash tier.
const (
	storyModel     = "gemini-3-pro-preview"
	judgeModel     = "gemini-2.0-flash"
	announcerModel = "gemini-2.0-flash"
	recapModel     = "gemini-3-flash-preview"
)

const storySystemPrompt = `You are a creative storyteller for Snapquest, a photo scavenger hunt game.

**YOUR TASK:**
Generate a fun, short Mad Libs-style story with EXACTLY the requested number of blanks.

**STORY REQUIREMENTS:**
1. The story should be 3-6 sentences long
2. Each blank is marked with {0}, {1}, {2}, etc.
3. The story should be silly, fun, and suitable for a party game
4. Blanks should be objects that players can photograph in real life
5. The story MUST have a protagonist

**BLANK REQUIREMENTS:**
For each blank, provide a fun and creative riddle (theme), and a criteria for judging the player's submission. Here are some examples of good pairs:

**EXAMPLES OF THEMES + CRITERIA:**
- Theme: A thing that holds water but is not a cup
- Criteria: The most disgusting
- Theme: Something you acquire for free, but cost a fortune to get rid of
- Criteria: The most biologically regretful
- Theme: I cost thousands of dollars, yet I serve no purpose other than reminding you of your failures
- Criteria: The most inhuman
- **NOTE**: The criteria MUST be in the format "The most [adjective]"

Make the story cohesive and the blanks flow naturally within the narrative!`

const judgeSystemPrompt = `You are **The Judge** of Snapquest, a photo scavenger hunt game.

**YOUR TASK:**
You will receive multiple photo submissions from players. Each submission includes a player ID, player name, and their photo.

Given the THEME and CRITERIA, pick the ONE submission that best matches.

**HOW TO JUDGE:**
1. Look at each photo carefully
2. Consider how well each photo matches the theme
3. Apply the criteria to select the winner (e.g., if criteria is "the weakest", pick the submission showing the weakest item)
4. Be creative and have fun with your interpretation!

**ANTI-CHEAT:** If a photo looks like a screenshot, Google Images result, or has obvious UI overlays, do NOT select it as the winner.

**OUTPUT:**
- Pick exactly ONE winner
- Provide a fun explanation for your choice`

const announcerSystemPrompt = `You are the **Voice of the Game** for Snapquest. Your job is to announce the winner with a punchy "One-Liner" and identify what's in their photo.

**YOUR TASKS:**
1. **One-Liner:** A punchy, sarcastic, dark humoured roasting comment
2. **Best Word:** A single word or very short phrase (2-3 words max) that describes the main object in the photo

**STYLE GUIDE:**
- Be sassy, witty, and fun
- Reference what you see in the photo
- May use the judge's explanation for context

**EXAMPLES:**
- *Context: Player took a photo of wet shoes for the riddle 'something that holds water but isn't a cup'*
  One-Liner: "Technically it holds water. I'd give you 3 points but I'm deducting 1 for hygiene"
  bestWord: "Wet Shoe"
- *Context: Player found the exact obscure object requested.*
  One-Liner: "Did you have this in your pocket? Suspiciously perfect."
  bestWord: "Vintage Compass"
- *Context: Player took a photo of their cat for a 'monster' riddle.*
  One-Liner: "The cutest apex predator we've ever seen."
  bestWord: "Cat"`

const recapSystemPrompt = `You are the **Grand Narrator** for Snapquest, a photo scavenger hunt game.

**YOUR TASK:**
Take the story template and the winning submissions for each blank, then create a segmented story recap.

**REQUIREMENTS:**
1. Identify the protagonist in the story and replace their name with the provided featured name
2. Create segments where each segment LEADS UP TO but does NOT INCLUDE the item
3. Each segment should end naturally before revealing what the item is
4. Also provide the complete final story with all items included

**SEGMENT FORMAT:**
For each blank {0}, {1}, etc., create a segment that tells the story up to that point.
The segment should build suspense/anticipation for the reveal of that item.

Example: If story is "Bob found a {0} in the closet and then ate {1}"
- Segment 0 lead: "Bob searched through the dusty closet and discovered..."
- Segment 1 lead: "...and then, overcome with hunger, devoured a delicious..."

**FORMAT:**
Create segments that flow narratively and build excitement for each item reveal!`

var storySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"storyTemplate": map[string]any{
			"type":        "string",
			"description": "The story template with {0}, {1}, {2}... placeholders for blanks. Must feature a named protagonist.",
		},
		"blanks": map[string]any{
			"type":        "array",
			"description": "Array of blank definitions, one for each placeholder",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"index": map[string]any{
						"type":        "integer",
						"description": "The index of this blank (0, 1, 2, ...)",
					},
					"theme": map[string]any{
						"type":        "string",
						"description": "The theme for this blank (what players should photograph)",
					},
					"criteria": map[string]any{
						"type":        "string",
						"description": "How submissions will be judged (e.g., 'the biggest', 'the fluffiest')",
					},
				},
				"required": []string{"index", "theme", "criteria"},
			},
		},
	},
	"required": []string{"storyTemplate", "blanks"},
}

var judgeSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"chosenPlayerId": map[string]any{
			"type":        "string",
			"description": "The player_id of the winning submission",
		},
		"judgesExplanation": map[string]any{
			"type":        "string",
			"description": "A fun explanation of why this submission won",
		},
	},
	"required": []string{"chosenPlayerId", "judgesExplanation"},
}

var announcerSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"oneLiner": map[string]any{
			"type":        "string",
			"description": "A punchy one-liner announcement, max 20 words",
		},
		"bestWord": map[string]any{
			"type":        "string",
			"description": "A single word or very short phrase (2-3 words max) describing the main object in the photo",
		},
	},
	"required": []string{"oneLiner", "bestWord"},
}

var recapSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"segments": map[string]any{
			"type":        "array",
			"description": "Story segments, each leading up to (but not including) an item",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"index": map[string]any{
						"type":        "integer",
						"description": "The index of the blank this segment leads to (0, 1, 2, ...)",
					},
					"lead": map[string]any{
						"type":        "string",
						"description": "The narrative text leading up to this item (does NOT include the item name)",
					},
				},
				"required": []string{"index", "lead"},
			},
		},
		"finalStory": map[string]any{
			"type":        "string",
			"description": "The complete story with all blanks filled in and the featured player as protagonist",
		},
	},
	"required": []string{"segments", "finalStory"},
}
