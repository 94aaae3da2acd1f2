package user

import (
	"github.com/example/storefront/internal/state"
)

// Info is the authenticated session: profile fields plus the bearer
// token the remote API expects. It is what gets persisted under the
// user session key.
type Info struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	Token   string `json:"token"`
}

// Summary is the token-less projection of a user embedded in orders.
type Summary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile is the account detail shape fetched for the profile screen.
type Profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// LoginReducer owns the session slice. A successful profile update
// refreshes the session info as well, since the remote API reissues
// the token with the new identity. Logout resets it to Idle.
func LoginReducer(s state.Async[Info], action state.Action) state.Async[Info] {
	switch a := action.(type) {
	case LoginRequested:
		return state.Loading[Info]()
	case LoginSucceeded:
		return state.Ready(a.Info)
	case LoginFailed:
		return state.Failed[Info](a.Message)
	case RegisterSucceeded:
		// Registering signs the user in.
		return state.Ready(a.Info)
	case UpdateProfileSucceeded:
		return state.Ready(a.Info)
	case LoggedOut:
		return state.Async[Info]{}
	default:
		return s
	}
}

func RegisterReducer(s state.Async[Info], action state.Action) state.Async[Info] {
	switch a := action.(type) {
	case RegisterRequested:
		return state.Loading[Info]()
	case RegisterSucceeded:
		return state.Ready(a.Info)
	case RegisterFailed:
		return state.Failed[Info](a.Message)
	case LoggedOut:
		return state.Async[Info]{}
	default:
		return s
	}
}

func DetailsReducer(s state.Async[Profile], action state.Action) state.Async[Profile] {
	switch a := action.(type) {
	case DetailsRequested:
		return state.Loading[Profile]()
	case DetailsLoaded:
		return state.Ready(a.Profile)
	case DetailsFailed:
		return state.Failed[Profile](a.Message)
	case LoggedOut:
		return state.Async[Profile]{}
	default:
		return s
	}
}

func UpdateProfileReducer(s state.Async[Info], action state.Action) state.Async[Info] {
	switch a := action.(type) {
	case UpdateProfileRequested:
		return state.Loading[Info]()
	case UpdateProfileSucceeded:
		return state.Ready(a.Info)
	case UpdateProfileFailed:
		return state.Failed[Info](a.Message)
	case UpdateProfileReset, LoggedOut:
		return state.Async[Info]{}
	default:
		return s
	}
}
