package accessibility

import (
	"fmt"
	"strings"
)

// Capabilities is the adaptation set derived from a profile, with the profile
// preferences each capability consumes already resolved to concrete values.
// A nil *Capabilities means no profile: every method leaves content unchanged.
type Capabilities struct {
	Narration      bool
	Captioning     bool
	Simplification bool
	Motor          bool

	modes               []string
	audioSpeed          string
	voiceNavigation     bool
	captionSize         string
	signLanguageSupport bool
	voiceCommands       bool
}

// Meta is the adaptation metadata returned alongside a tailored view.
type Meta struct {
	Narration           bool   `json:"narration"`
	PreferredAudioSpeed string `json:"preferred_audio_speed,omitempty"`
	VoiceNavigation     bool   `json:"voice_navigation,omitempty"`

	CaptionsEnabled     bool   `json:"captions_enabled"`
	CaptionSize         string `json:"caption_size,omitempty"`
	SignLanguageSupport bool   `json:"sign_language_support,omitempty"`

	SimplifiedText      bool   `json:"simplified_text"`
	QuestionDisplayMode string `json:"question_display_mode,omitempty"`
	TimerDisabled       bool   `json:"timer_disabled,omitempty"`

	NavigationMode         string `json:"navigation_mode,omitempty"`
	PreventAccidentalInput bool   `json:"prevent_accidental_input,omitempty"`
	VoiceCommands          bool   `json:"voice_commands,omitempty"`
}

// Derive maps a profile to its capability set. multiple_disabilities turns on
// every capability regardless of the other entries.
func Derive(p *Profile) *Capabilities {
	if p == nil {
		return nil
	}

	c := &Capabilities{}
	for _, d := range p.DisabilityTypes {
		c.modes = append(c.modes, string(d))
		switch d {
		case BlindLowVision:
			c.Narration = true
		case DeafHardOfHearing:
			c.Captioning = true
		case CognitiveDisability:
			c.Simplification = true
		case MotorDisability:
			c.Motor = true
		case MultipleDisabilities:
			c.Narration, c.Captioning, c.Simplification, c.Motor = true, true, true, true
		}
	}

	prefs := p.Preferences
	c.audioSpeed = prefString(prefs, PrefAudioSpeed, DefaultAudioSpeed)
	c.voiceNavigation = prefBool(prefs, PrefVoiceNavigation)
	c.captionSize = prefString(prefs, PrefCaptionSize, DefaultCaptionSize)
	c.signLanguageSupport = prefBool(prefs, PrefSignLanguage)
	c.voiceCommands = prefBool(prefs, PrefVoiceCommands)
	return c
}

// Modes is the snapshot of active disability types recorded on attempts.
func (c *Capabilities) Modes() []string {
	if c == nil {
		return []string{}
	}
	out := make([]string, len(c.modes))
	copy(out, c.modes)
	return out
}

// Text substitutes the simplified wording when simplification is active and one exists.
func (c *Capabilities) Text(text, simplified string) string {
	if c != nil && c.Simplification && strings.TrimSpace(simplified) != "" {
		return simplified
	}
	return text
}

// Transcript returns the transcript to include in a view. Narration and Captioning
// both guarantee one; fallback is used when no transcript is stored.
func (c *Capabilities) Transcript(transcript, fallback string) string {
	if c == nil || !(c.Narration || c.Captioning) {
		return ""
	}
	if strings.TrimSpace(transcript) != "" {
		return transcript
	}
	return fallback
}

// TimeLimit returns the effective quiz time limit: unbounded under simplification.
func (c *Capabilities) TimeLimit(configured *int) *int {
	if c != nil && c.Simplification {
		return nil
	}
	return configured
}

func (c *Capabilities) LessonMeta() *Meta {
	if c == nil {
		return nil
	}
	m := &Meta{}
	if c.Narration {
		m.Narration = true
		m.PreferredAudioSpeed = c.audioSpeed
		m.VoiceNavigation = c.voiceNavigation
	}
	if c.Captioning {
		m.CaptionsEnabled = true
		m.CaptionSize = c.captionSize
		m.SignLanguageSupport = c.signLanguageSupport
	}
	if c.Simplification {
		m.SimplifiedText = true
	}
	if c.Motor {
		m.NavigationMode = NavKeyboard
		m.PreventAccidentalInput = true
		m.VoiceCommands = c.voiceCommands
	}
	return m
}

func (c *Capabilities) QuizMeta() *Meta {
	m := c.LessonMeta()
	if m == nil {
		return nil
	}
	if c.Simplification {
		m.QuestionDisplayMode = DisplayOneByOne
		m.TimerDisabled = true
	}
	return m
}

func prefString(prefs map[string]interface{}, key, def string) string {
	v, ok := prefs[key]
	if !ok || v == nil {
		return def
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return def
	}
	return s
}

func prefBool(prefs map[string]interface{}, key string) bool {
	switch v := prefs[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true") || v == "1"
	case float64:
		return v != 0
	default:
		return false
	}
}

// Names lists the active capabilities in a fixed order.
func (c *Capabilities) Names() []string {
	names := []string{}
	if c == nil {
		return names
	}
	if c.Narration {
		names = append(names, "narration")
	}
	if c.Captioning {
		names = append(names, "captioning")
	}
	if c.Simplification {
		names = append(names, "simplification")
	}
	if c.Motor {
		names = append(names, "motor")
	}
	return names
}
