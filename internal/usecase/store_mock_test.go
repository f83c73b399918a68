package usecase

import (
	"context"

	"github.com/atelierworks/atelier"
	"github.com/atelierworks/atelier/internal/domain"
)

// memStore is the in-memory Store used across the engine tests. Atomic is
// a plain passthrough: the operations under test are fail-fast, so a
// failed operation has written nothing by the time it returns.
type memStore struct {
	profiles     map[string]domain.ArtistProfile
	vaults       map[string]domain.TipsVault
	followers    map[string]domain.FollowerAccount
	works        map[string]domain.Work
	interactions map[string]domain.Interaction
	collabs      map[string]domain.CollabRequest
	commits      map[string]string
}

func newMemStore() *memStore {
	return &memStore{
		profiles:     map[string]domain.ArtistProfile{},
		vaults:       map[string]domain.TipsVault{},
		followers:    map[string]domain.FollowerAccount{},
		works:        map[string]domain.Work{},
		interactions: map[string]domain.Interaction{},
		collabs:      map[string]domain.CollabRequest{},
		commits:      map[string]string{},
	}
}

func (s *memStore) Atomic(ctx context.Context, fn func(tx Store) error) error {
	return fn(s)
}

func (s *memStore) GetProfile(ctx context.Context, owner string) (domain.ArtistProfile, error) {
	p, ok := s.profiles[owner]
	if !ok {
		return domain.ArtistProfile{}, domain.NotFoundError{Resource: "artist profile"}
	}
	return p, nil
}

func (s *memStore) CreateProfile(ctx context.Context, p domain.ArtistProfile) error {
	if _, ok := s.profiles[p.Owner]; ok {
		return domain.AlreadyExistsError{Resource: "artist profile"}
	}
	s.profiles[p.Owner] = p
	return nil
}

func (s *memStore) UpdateProfile(ctx context.Context, p domain.ArtistProfile) error {
	if _, ok := s.profiles[p.Owner]; !ok {
		return domain.NotFoundError{Resource: "artist profile"}
	}
	s.profiles[p.Owner] = p
	return nil
}

func (s *memStore) DeleteProfile(ctx context.Context, owner string) error {
	delete(s.profiles, owner)
	return nil
}

func (s *memStore) GetVault(ctx context.Context, artist string) (domain.TipsVault, error) {
	v, ok := s.vaults[artist]
	if !ok {
		return domain.TipsVault{}, domain.NotFoundError{Resource: "tips vault"}
	}
	return v, nil
}

func (s *memStore) CreateVault(ctx context.Context, v domain.TipsVault) error {
	if _, ok := s.vaults[v.Artist]; ok {
		return domain.AlreadyExistsError{Resource: "tips vault"}
	}
	s.vaults[v.Artist] = v
	return nil
}

func (s *memStore) UpdateVault(ctx context.Context, v domain.TipsVault) error {
	s.vaults[v.Artist] = v
	return nil
}

func (s *memStore) DeleteVault(ctx context.Context, artist string) error {
	delete(s.vaults, artist)
	return nil
}

func (s *memStore) GetFollower(ctx context.Context, artist, follower string) (domain.FollowerAccount, error) {
	f, ok := s.followers[artist+"/"+follower]
	if !ok {
		return domain.FollowerAccount{}, domain.NotFoundError{Resource: "follower account"}
	}
	return f, nil
}

func (s *memStore) CreateFollower(ctx context.Context, f domain.FollowerAccount) error {
	key := f.Artist + "/" + f.Follower
	if _, ok := s.followers[key]; ok {
		return domain.AlreadyExistsError{Resource: "follower account"}
	}
	s.followers[key] = f
	return nil
}

func (s *memStore) UpdateFollower(ctx context.Context, f domain.FollowerAccount) error {
	s.followers[f.Artist+"/"+f.Follower] = f
	return nil
}

func (s *memStore) GetWork(ctx context.Context, key string) (domain.Work, error) {
	w, ok := s.works[key]
	if !ok {
		return domain.Work{}, domain.NotFoundError{Resource: "work"}
	}
	return w, nil
}

func (s *memStore) CreateWork(ctx context.Context, w domain.Work) error {
	key := atelier.WorkKey(w.Artist, w.Index)
	if _, ok := s.works[key]; ok {
		return domain.AlreadyExistsError{Resource: "work"}
	}
	s.works[key] = w
	return nil
}

func (s *memStore) UpdateWork(ctx context.Context, w domain.Work) error {
	s.works[atelier.WorkKey(w.Artist, w.Index)] = w
	return nil
}

func (s *memStore) RecentWorks(ctx context.Context, artist string, limit int) ([]domain.Work, error) {
	var out []domain.Work
	for _, w := range s.works {
		if w.Artist == artist && len(out) < limit {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *memStore) GetInteraction(ctx context.Context, workKey, actor string) (domain.Interaction, error) {
	i, ok := s.interactions[workKey+"/"+actor]
	if !ok {
		return domain.Interaction{}, domain.NotFoundError{Resource: "interaction"}
	}
	return i, nil
}

func (s *memStore) CreateInteraction(ctx context.Context, i domain.Interaction) error {
	key := i.WorkKey + "/" + i.Actor
	if _, ok := s.interactions[key]; ok {
		return domain.AlreadyExistsError{Resource: "interaction"}
	}
	s.interactions[key] = i
	return nil
}

func (s *memStore) GetCollab(ctx context.Context, artist, requester string) (domain.CollabRequest, error) {
	c, ok := s.collabs[artist+"/"+requester]
	if !ok {
		return domain.CollabRequest{}, domain.NotFoundError{Resource: "collab request"}
	}
	return c, nil
}

func (s *memStore) CreateCollab(ctx context.Context, c domain.CollabRequest) error {
	key := c.Artist + "/" + c.Requester
	if _, ok := s.collabs[key]; ok {
		return domain.AlreadyExistsError{Resource: "collab request"}
	}
	s.collabs[key] = c
	return nil
}

func (s *memStore) UpdateCollab(ctx context.Context, c domain.CollabRequest) error {
	s.collabs[c.Artist+"/"+c.Requester] = c
	return nil
}

func (s *memStore) Resolve(ctx context.Context, key string) (any, error) {
	if w, ok := s.works[key]; ok {
		return w, nil
	}
	return nil, domain.NotFoundError{}
}

func (s *memStore) AppendCommit(ctx context.Context, id, document, proof string) error {
	s.commits[id] = document
	return nil
}

// fakeWallet is the host transfer mechanism used in tests.
type fakeWallet struct {
	balances map[string]uint64
}

func newFakeWallet() *fakeWallet {
	return &fakeWallet{balances: map[string]uint64{}}
}

func (w *fakeWallet) Debit(ctx context.Context, holder string, amount uint64) error {
	if w.balances[holder] < amount {
		return domain.InsufficientFundsError{Source: "wallet"}
	}
	w.balances[holder] -= amount
	return nil
}

func (w *fakeWallet) Credit(ctx context.Context, holder string, amount uint64) error {
	w.balances[holder] += amount
	return nil
}

func (w *fakeWallet) Balance(ctx context.Context, holder string) (uint64, error) {
	return w.balances[holder], nil
}
