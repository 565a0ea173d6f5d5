package repl

const (
	promptTablePath = "Drag and drop the table file here, or press Enter for %s: "
	promptMode      = "Lookup mode: [1] OTP -> owner, [2] owner -> tokens (Enter for 1): "
	promptForward   = "Hold press the key until the OTP code appears: "
	promptReverse   = "Owner to look up: "

	msgLoaded      = "Loaded %d entries from '%s'."
	msgLoadFailed  = "Could not load table: %v"
	msgBadMode     = "Please enter 1 or 2."
	msgBadOTP      = "OTP must start with 'ubnu' followed by eight digits."
	msgConverted   = "Converted token: "
	msgOwner       = "Token belongs to user: %s"
	msgNoOwner     = "No match found in '%s'."
	msgTokensFor   = "Tokens registered to %s:"
	msgNoTokens    = "No tokens found for '%s' in '%s'."
	msgGoodbye     = "Good-bye!"
	msgInterrupted = "Interrupted. Good-bye!"
)

var exitWords = map[string]bool{
	"":     true,
	"q":    true,
	"quit": true,
	"exit": true,
}
