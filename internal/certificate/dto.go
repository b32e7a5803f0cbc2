package certificate

type ClaimResponse struct {
	Issued      bool         `json:"issued"`
	Certificate *Certificate `json:"certificate"`
}

type VerifyResponse struct {
	Valid       bool         `json:"valid"`
	Certificate *Certificate `json:"certificate,omitempty"`
}
