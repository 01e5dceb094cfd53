package activate_package

// ActivatePackageRequest HTTP запрос на активацию пакета
type ActivatePackageRequest struct {
	ActivationCode string `json:"activationCode"` // "WN-1A2B-3C4D"
}
