package domain

import "time"

// ArtistProfile is created once per owner identity and never replaced.
// FollowerCount, TotalTips and WorkCount are mutated only inside the same
// transaction that mutates the dependent record.
type ArtistProfile struct {
	Owner         string   `json:"owner"`
	Name          string   `json:"name"`
	Bio           string   `json:"bio"`
	Links         []string `json:"links"`
	FollowerCount uint64   `json:"followerCount"`
	TotalTips     uint64   `json:"totalTips"`
	WorkCount     uint64   `json:"workCount"`
}

// TipsVault is the custodial balance paired 1:1 with a profile. Balance is
// net of withdrawals; the profile's TotalTips is cumulative gross.
type TipsVault struct {
	Artist  string `json:"artist"`
	Balance uint64 `json:"balance"`
}

type FollowerAccount struct {
	Artist      string `json:"artist"`
	Follower    string `json:"follower"`
	IsFollowing bool   `json:"isFollowing"`
}

// Work is immutable after creation except for its counters.
type Work struct {
	Artist       string    `json:"artist"`
	Index        uint64    `json:"index"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ContentURL   string    `json:"contentUrl"`
	Likes        uint64    `json:"likes"`
	CommentCount uint64    `json:"commentCount"`
	PostedAt     time.Time `json:"postedAt"`
}

// Interaction records at most one like-or-comment per (work, actor) pair.
// Creation is terminal; there are no transitions.
type Interaction struct {
	WorkKey   string          `json:"work"`
	Actor     string          `json:"actor"`
	Kind      InteractionKind `json:"kind"`
	Comment   *string         `json:"comment,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type CollabRequest struct {
	Artist    string       `json:"artist"`
	Requester string       `json:"requester"`
	Message   string       `json:"message"`
	Status    CollabStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}
