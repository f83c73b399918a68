package atelier

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/zeebo/xxh3"
)

// Record namespace tags. A record key is derived from its tag plus the
// identifying fields of the entity, so distinct tuples never collide.
const (
	TagArtistProfile = "artist-profile"
	TagTipsVault     = "tips-vault"
	TagFollower      = "follower"
	TagWork          = "work"
	TagInteraction   = "interaction"
	TagCollab        = "collab"
)

// DeriveKey is the single key-derivation function for every record kind.
// Fields are length-prefixed before hashing so that ("ab","c") and
// ("a","bc") produce distinct digests.
func DeriveKey(tag string, fields ...string) string {
	h := xxh3.New()
	writeField(h, tag)
	for _, f := range fields {
		writeField(h, f)
	}
	sum := h.Sum128()
	return fmt.Sprintf("at://%s/%016x%016x", tag, sum.Hi, sum.Lo)
}

func writeField(h *xxh3.Hasher, field string) {
	var ln [4]byte
	binary.BigEndian.PutUint32(ln[:], uint32(len(field)))
	h.Write(ln[:])
	h.WriteString(field)
}

// ProfileKey derives the ArtistProfile key for an owner identity.
func ProfileKey(owner string) string {
	return DeriveKey(TagArtistProfile, owner)
}

// VaultKey derives the TipsVault key for an artist profile.
func VaultKey(owner string) string {
	return DeriveKey(TagTipsVault, ProfileKey(owner))
}

// FollowerKey derives the FollowerAccount key for (artist, follower).
func FollowerKey(artist string, follower string) string {
	return DeriveKey(TagFollower, ProfileKey(artist), follower)
}

// WorkKey derives the Work key for (artist, per-profile sequence index).
func WorkKey(artist string, index uint64) string {
	return DeriveKey(TagWork, ProfileKey(artist), strconv.FormatUint(index, 10))
}

// InteractionKey derives the Interaction key for (work, acting identity).
func InteractionKey(workKey string, actor string) string {
	return DeriveKey(TagInteraction, workKey, actor)
}

// CollabKey derives the CollabRequest key for (artist, requester).
func CollabKey(artist string, requester string) string {
	return DeriveKey(TagCollab, ProfileKey(artist), requester)
}
