package entity

// Purpose tells a passkey source what the passkey will be used for.
type Purpose string

const (
	PurposeDecrypt Purpose = "decrypt"
	PurposeEncrypt Purpose = "encrypt"
)
