package credentials

// PasswordResult is the outcome of one password prompt. Store is set when
// the user picked the explicit save-to-secret-store action.
type PasswordResult struct {
	Value string
	Store bool
}

// Prompter collects credentials interactively. Username may legitimately
// return an empty string, signifying anonymous access. Both methods report
// cancellation as promptutils.ErrInterrupted.
type Prompter interface {
	Username(serverName string) (string, error)
	Password(serverName, username string) (PasswordResult, error)
}
