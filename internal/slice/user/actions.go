package user

const (
	ActionLoginRequested         = "UserLoginRequested"
	ActionLoginSucceeded         = "UserLoginSucceeded"
	ActionLoginFailed            = "UserLoginFailed"
	ActionLoggedOut              = "UserLoggedOut"
	ActionRegisterRequested      = "UserRegisterRequested"
	ActionRegisterSucceeded      = "UserRegisterSucceeded"
	ActionRegisterFailed         = "UserRegisterFailed"
	ActionDetailsRequested       = "UserDetailsRequested"
	ActionDetailsLoaded          = "UserDetailsLoaded"
	ActionDetailsFailed          = "UserDetailsFailed"
	ActionUpdateProfileRequested = "UserUpdateProfileRequested"
	ActionUpdateProfileSucceeded = "UserUpdateProfileSucceeded"
	ActionUpdateProfileFailed    = "UserUpdateProfileFailed"
	ActionUpdateProfileReset     = "UserUpdateProfileReset"
)

type LoginRequested struct{}

type LoginSucceeded struct {
	Info Info
}

type LoginFailed struct {
	Message string
}

type LoggedOut struct{}

type RegisterRequested struct{}

type RegisterSucceeded struct {
	Info Info
}

type RegisterFailed struct {
	Message string
}

type DetailsRequested struct {
	UserID string
}

type DetailsLoaded struct {
	Profile Profile
}

type DetailsFailed struct {
	Message string
}

type UpdateProfileRequested struct{}

type UpdateProfileSucceeded struct {
	Info Info
}

type UpdateProfileFailed struct {
	Message string
}

type UpdateProfileReset struct{}

func (LoginRequested) ActionType() string         { return ActionLoginRequested }
func (LoginSucceeded) ActionType() string         { return ActionLoginSucceeded }
func (LoginFailed) ActionType() string            { return ActionLoginFailed }
func (LoggedOut) ActionType() string              { return ActionLoggedOut }
func (RegisterRequested) ActionType() string      { return ActionRegisterRequested }
func (RegisterSucceeded) ActionType() string      { return ActionRegisterSucceeded }
func (RegisterFailed) ActionType() string         { return ActionRegisterFailed }
func (DetailsRequested) ActionType() string       { return ActionDetailsRequested }
func (DetailsLoaded) ActionType() string          { return ActionDetailsLoaded }
func (DetailsFailed) ActionType() string          { return ActionDetailsFailed }
func (UpdateProfileRequested) ActionType() string { return ActionUpdateProfileRequested }
func (UpdateProfileSucceeded) ActionType() string { return ActionUpdateProfileSucceeded }
func (UpdateProfileFailed) ActionType() string    { return ActionUpdateProfileFailed }
func (UpdateProfileReset) ActionType() string     { return ActionUpdateProfileReset }
