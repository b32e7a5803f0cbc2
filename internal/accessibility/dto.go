package accessibility

type UpsertProfileDTO struct {
	DisabilityTypes []DisabilityType       `json:"disability_types" validate:"required,dive,oneof=blind_low_vision deaf_hard_of_hearing cognitive_disability motor_disability multiple_disabilities"`
	Preferences     map[string]interface{} `json:"preferences"`
}

type ProfileResponse struct {
	Profile      *Profile `json:"profile"`
	Capabilities []string `json:"capabilities"`
	Meta         *Meta    `json:"a11y_meta"`
}
