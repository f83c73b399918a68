package schemas

// The closed set of operation schemas. The dispatcher matches on these
// exhaustively; anything else is rejected.
const (
	ProfileCreateURL = "https://schema.atelierworks.net/profile-create.json"
	ProfileUpdateURL = "https://schema.atelierworks.net/profile-update.json"
	ProfileCloseURL  = "https://schema.atelierworks.net/profile-close.json"
	FollowURL        = "https://schema.atelierworks.net/follow.json"
	WorkPostURL      = "https://schema.atelierworks.net/work-post.json"
	WorkInteractURL  = "https://schema.atelierworks.net/work-interact.json"
	CollabRequestURL = "https://schema.atelierworks.net/collab-request.json"
	CollabResolveURL = "https://schema.atelierworks.net/collab-resolve.json"
	TipURL           = "https://schema.atelierworks.net/tip.json"
	WithdrawURL      = "https://schema.atelierworks.net/withdraw.json"
)

type ProfileCreate struct {
	Name  string   `json:"name"`
	Bio   string   `json:"bio"`
	Links []string `json:"links"`
}

// ProfileUpdate carries partial-update arguments. A nil field is left
// unchanged; a present-but-empty value clears the field.
type ProfileUpdate struct {
	Name  *string   `json:"name,omitempty"`
	Bio   *string   `json:"bio,omitempty"`
	Links *[]string `json:"links,omitempty"`
}

type ProfileClose struct{}

type Follow struct{}

type WorkPost struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentURL  string `json:"contentUrl"`
}

type WorkInteract struct {
	Kind    string  `json:"kind"`
	Comment *string `json:"comment,omitempty"`
}

type CollabRequest struct {
	Message string `json:"message"`
}

type CollabResolve struct {
	Requester string `json:"requester"`
	Status    string `json:"status"`
}

type Tip struct {
	Amount uint64 `json:"amount"`
}

type Withdraw struct {
	Amount uint64 `json:"amount"`
}
