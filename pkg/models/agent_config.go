package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// PredefinedAvatars maps the built-in avatar keys to the appearance text an
// agent adopts when it picks one.
var PredefinedAvatars = map[string]string{
	"Mimo":   "A lively 2D cartoon-style character with a square-shaped coral-pink body, bright round eyes, small energetic arms, and cute green ears. Radiates intelligence and confidence.",
	"Tamo":   "A vibrant 2D cartoon-style character with a sky-blue rounded body, wide curious eyes, energetic arms raised high, and playful yellow horns. Embodies bravery and enthusiasm.",
	"Zemo":   "A sleek, calm-looking 2D cartoon character with a deep-blue angular body, half-closed eyes suggesting skepticism, and small orange spikes on top. Portrays intelligence and analytical sharpness.",
	"Marimo": "A gentle, soft-looking 2D cartoon character with a round lime-green body, large innocent eyes, raised curved arms, and a small blue sprout on top. Expresses innocence and curiosity.",
	"Casimo": "An eccentric, quirky 2D cartoon character with a pinkish body, mischievous half-closed eyes, flexible arms in playful positions, and teal spikes on her head. Exudes unpredictability and whimsy.",
}

// IsPredefinedAvatar reports whether key names a built-in avatar.
func IsPredefinedAvatar(key string) bool {
	_, ok := PredefinedAvatars[key]
	return ok
}

// AgentCore is the decision loop an agent runs.
type AgentCore string

const (
	AgentCoreEvaluateAndActions   AgentCore = "evaluate_and_actions"
	AgentCoreExecuteActions       AgentCore = "execute_actions"
	AgentCoreResponseEveryMessage AgentCore = "response_every_message"
)

// LLMPreset picks the model family and tier an agent runs on.
type LLMPreset string

const (
	LLMPresetGeminiLow       LLMPreset = "gemini-low"
	LLMPresetGeminiMedium    LLMPreset = "gemini-medium"
	LLMPresetGeminiHigh      LLMPreset = "gemini-high"
	LLMPresetOpenAILow       LLMPreset = "openai-low"
	LLMPresetOpenAIMedium    LLMPreset = "openai-medium"
	LLMPresetAnthropicLow    LLMPreset = "anthropic-low"
	LLMPresetAnthropicMedium LLMPreset = "anthropic-medium"
	LLMPresetAnthropicHigh   LLMPreset = "anthropic-high"
	LLMPresetDeepSeekLow     LLMPreset = "deepseek-low"
	LLMPresetDeepSeekMedium  LLMPreset = "deepseek-medium"
)

// LLMPresetDescriptions holds the label shown for each preset.
var LLMPresetDescriptions = map[LLMPreset]string{
	LLMPresetGeminiLow:       "Gemini - Low cost",
	LLMPresetGeminiMedium:    "Gemini - Balanced",
	LLMPresetGeminiHigh:      "Gemini - High performance",
	LLMPresetOpenAILow:       "OpenAI - Low cost",
	LLMPresetOpenAIMedium:    "OpenAI - Balanced",
	LLMPresetAnthropicLow:    "Anthropic - Low cost",
	LLMPresetAnthropicMedium: "Anthropic - Balanced",
	LLMPresetAnthropicHigh:   "Anthropic - High performance",
	LLMPresetDeepSeekLow:     "DeepSeek - Low cost",
	LLMPresetDeepSeekMedium:  "DeepSeek - Balanced",
}

// AgentAction is an optional capability on top of plain conversation.
type AgentAction string

const (
	AgentActionExploreWeb AgentAction = "explore_web"
	AgentActionTodo       AgentAction = "todo"
)

type AgentConfigCore struct {
	Name AgentCore `json:"name" validate:"oneof=evaluate_and_actions execute_actions response_every_message"`
}

// AgentConfig is the full, editable configuration of an agent.
type AgentConfig struct {
	Name       string          `json:"name" validate:"utf16max=64"`
	Avatar     string          `json:"avatar" validate:"avatarorcustom"`
	Appearance string          `json:"appearance" validate:"utf16max=500"`
	Core       AgentConfigCore `json:"core"`
	LLMPreset  LLMPreset       `json:"llmPreset" validate:"oneof=gemini-low gemini-medium gemini-high openai-low openai-medium anthropic-low anthropic-medium anthropic-high deepseek-low deepseek-medium"`
	Languages  []string        `json:"languages" validate:"max=4"`
	TimeZone   string          `json:"timeZone" validate:"utf16max=32"`
	Greeting   string          `json:"greeting" validate:"utf16max=500"`
	Actions    []AgentAction   `json:"actions" validate:"max=4,dive,oneof=explore_web todo"`
	Character  Character       `json:"character,omitempty" validate:"character"`
	Rules      []string        `json:"rules" validate:"max=20,dive,utf16max=200"`
}

// AgentConfigPatch is a partial AgentConfig. Character properties merge
// individually on the backend and an empty string deletes one.
type AgentConfigPatch struct {
	Name       *string          `json:"name,omitempty" validate:"omitnil,utf16max=64"`
	Avatar     *string          `json:"avatar,omitempty" validate:"omitnil,avatarorcustom"`
	Appearance *string          `json:"appearance,omitempty" validate:"omitnil,utf16max=500"`
	Core       *AgentConfigCore `json:"core,omitempty"`
	LLMPreset  *LLMPreset       `json:"llmPreset,omitempty" validate:"omitnil,oneof=gemini-low gemini-medium gemini-high openai-low openai-medium anthropic-low anthropic-medium anthropic-high deepseek-low deepseek-medium"`
	Languages  *[]string        `json:"languages,omitempty" validate:"omitnil,max=4"`
	TimeZone   *string          `json:"timeZone,omitempty" validate:"omitnil,utf16max=32"`
	Greeting   *string          `json:"greeting,omitempty" validate:"omitnil,utf16max=500"`
	Actions    *[]AgentAction   `json:"actions,omitempty" validate:"omitnil,max=4,dive,oneof=explore_web todo"`
	Character  Character        `json:"character,omitempty" validate:"character"`
	Rules      *[]string        `json:"rules,omitempty" validate:"omitnil,max=20,dive,utf16max=200"`
}

// StrictAgentConfigPatch is an AgentConfigPatch that rejects unknown
// top-level members.
type StrictAgentConfigPatch struct {
	AgentConfigPatch
}

func (StrictAgentConfigPatch) StrictJSON() {}

func (p *StrictAgentConfigPatch) UnmarshalJSON(data []byte) error {
	return decodeStrict(data, &p.AgentConfigPatch)
}

// ── Character ───────────────────────────────────────────────

// CharacterPropertyMaxLen bounds every character property value.
const CharacterPropertyMaxLen = 500

// CharacterCategories are the sections every client knows about. They must
// be objects; any other key may hold a string or an object of strings.
var CharacterCategories = []string{"background", "speech", "personality"}

// CharacterEntry is one character member: a single property or a section
// of named properties.
type CharacterEntry struct {
	Text   string
	Fields map[string]string
}

// IsSection reports whether the entry is an object of properties.
func (e CharacterEntry) IsSection() bool { return e.Fields != nil }

func (e CharacterEntry) MarshalJSON() ([]byte, error) {
	if e.Fields != nil {
		return json.Marshal(e.Fields)
	}
	return json.Marshal(e.Text)
}

func (e *CharacterEntry) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		e.Text, e.Fields = s, nil
		return nil
	}
	var fields map[string]string
	if err := json.Unmarshal(b, &fields); err != nil || fields == nil {
		return fmt.Errorf("character entry must be a string or an object of strings")
	}
	e.Text, e.Fields = "", fields
	return nil
}

// Character describes personality, background and speech of an agent.
// Well-known properties are background.role, background.gender,
// background.expertise, background.backstory, background.birthDate,
// background.occupation, speech.tone, speech.style, speech.formality,
// personality.traits, personality.interests, personality.values,
// personality.quirks and personality.mbti.
type Character map[string]CharacterEntry

func (c *Character) UnmarshalJSON(b []byte) error {
	var raw map[string]CharacterEntry
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for _, cat := range CharacterCategories {
		if e, ok := raw[cat]; ok && !e.IsSection() {
			return fmt.Errorf("character.%s must be an object", cat)
		}
	}
	*c = raw
	return nil
}

// Oversized returns the dotted paths of properties longer than limit
// characters, sorted.
func (c Character) Oversized(limit int) []string {
	var out []string
	for k, e := range c {
		if e.IsSection() {
			for name, v := range e.Fields {
				if TextLen(v) > limit {
					out = append(out, k+"."+name)
				}
			}
			continue
		}
		if TextLen(e.Text) > limit {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// TextLen is the length of s in UTF-16 code units, the unit text limits are
// counted in. Characters outside the BMP count twice.
func TextLen(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
			continue
		}
		n++
	}
	return n
}
