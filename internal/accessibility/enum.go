package accessibility

type DisabilityType string

const (
	BlindLowVision       DisabilityType = "blind_low_vision"
	DeafHardOfHearing    DisabilityType = "deaf_hard_of_hearing"
	CognitiveDisability  DisabilityType = "cognitive_disability"
	MotorDisability      DisabilityType = "motor_disability"
	MultipleDisabilities DisabilityType = "multiple_disabilities"
)

var AllDisabilityTypes = []DisabilityType{
	BlindLowVision,
	DeafHardOfHearing,
	CognitiveDisability,
	MotorDisability,
	MultipleDisabilities,
}

func (d DisabilityType) IsValid() bool {
	for _, v := range AllDisabilityTypes {
		if d == v {
			return true
		}
	}
	return false
}

// Preference keys read from Profile.Preferences.
const (
	PrefAudioSpeed      = "preferredAudioSpeed"
	PrefVoiceNavigation = "voiceNavigation"
	PrefCaptionSize     = "captionSize"
	PrefSignLanguage    = "signLanguageSupport"
	PrefVoiceCommands   = "voiceCommands"
)

const (
	DefaultAudioSpeed  = "normal"
	DefaultCaptionSize = "medium"

	DisplayOneByOne = "one-by-one"
	NavKeyboard     = "keyboard"
)
