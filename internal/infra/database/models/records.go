package models

import (
	"time"

	"github.com/lib/pq"
)

type ArtistProfile struct {
	Key           string         `json:"key" gorm:"primaryKey;type:text"`
	Owner         string         `json:"owner" gorm:"type:char(43);index:artist_profile_owner,unique"`
	Name          string         `json:"name" gorm:"type:varchar(50)"`
	Bio           string         `json:"bio" gorm:"type:varchar(200)"`
	Links         pq.StringArray `json:"links" gorm:"type:text[]"`
	FollowerCount uint64         `json:"followerCount" gorm:"not null;default:0"`
	TotalTips     uint64         `json:"totalTips" gorm:"not null;default:0"`
	WorkCount     uint64         `json:"workCount" gorm:"not null;default:0"`
	CDate         time.Time      `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate         time.Time      `json:"mdate" gorm:"autoUpdateTime"`
}

type TipsVault struct {
	Key     string `json:"key" gorm:"primaryKey;type:text"`
	Artist  string `json:"artist" gorm:"type:char(43);index:tips_vault_artist,unique"`
	Balance uint64 `json:"balance" gorm:"not null;default:0"`
}

type FollowerAccount struct {
	Key         string `json:"key" gorm:"primaryKey;type:text"`
	Artist      string `json:"artist" gorm:"type:char(43);index:follower_pair,unique"`
	Follower    string `json:"follower" gorm:"type:char(43);index:follower_pair,unique"`
	IsFollowing bool   `json:"isFollowing" gorm:"type:boolean;not null;default:false"`
}

type Work struct {
	Key          string    `json:"key" gorm:"primaryKey;type:text"`
	Artist       string    `json:"artist" gorm:"type:char(43);index:work_seq,unique"`
	Seq          uint64    `json:"seq" gorm:"index:work_seq,unique"`
	Title        string    `json:"title" gorm:"type:varchar(100)"`
	Description  string    `json:"description" gorm:"type:varchar(500)"`
	ContentURL   string    `json:"contentUrl" gorm:"type:varchar(200)"`
	Likes        uint64    `json:"likes" gorm:"not null;default:0"`
	CommentCount uint64    `json:"commentCount" gorm:"not null;default:0"`
	PostedAt     time.Time `json:"postedAt" gorm:"type:timestamp with time zone;not null"`
}

type Interaction struct {
	Key       string    `json:"key" gorm:"primaryKey;type:text"`
	WorkKey   string    `json:"work" gorm:"type:text;index:interaction_pair,unique"`
	Actor     string    `json:"actor" gorm:"type:char(43);index:interaction_pair,unique"`
	Kind      string    `json:"kind" gorm:"type:varchar(16);not null"`
	Comment   *string   `json:"comment,omitempty" gorm:"type:varchar(280)"`
	CreatedAt time.Time `json:"createdAt" gorm:"type:timestamp with time zone;not null"`
}

type CollabRequest struct {
	Key       string    `json:"key" gorm:"primaryKey;type:text"`
	Artist    string    `json:"artist" gorm:"type:char(43);index:collab_pair,unique"`
	Requester string    `json:"requester" gorm:"type:char(43);index:collab_pair,unique"`
	Message   string    `json:"message" gorm:"type:varchar(300)"`
	Status    string    `json:"status" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"type:timestamp with time zone;not null"`
}

type CommitLog struct {
	ID       string    `json:"id" gorm:"primaryKey;type:text"`
	Document string    `json:"document" gorm:"type:text"`
	Proof    string    `json:"proof" gorm:"type:text"`
	CDate    time.Time `json:"cdate" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}
