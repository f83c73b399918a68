package repository

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atelierworks/atelier"
	"github.com/atelierworks/atelier/internal/domain"
	"github.com/atelierworks/atelier/internal/infra/database/models"
	"github.com/atelierworks/atelier/internal/usecase"
)

// Store persists records in postgres. Every record row carries its at://
// key as primary key so Resolve and the typed accessors hit the same rows.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Atomic runs fn against a transaction-scoped Store. gorm nests inner
// Transaction calls as savepoints, so usecases may call Atomic freely.
func (s *Store) Atomic(ctx context.Context, fn func(tx usecase.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func translate(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFoundError{Resource: resource}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.AlreadyExistsError{Resource: resource}
	}
	return err
}

func (s *Store) GetProfile(ctx context.Context, owner string) (domain.ArtistProfile, error) {
	var model models.ArtistProfile
	err := s.db.WithContext(ctx).Where("owner = ?", owner).Take(&model).Error
	if err != nil {
		return domain.ArtistProfile{}, translate(err, "artist profile")
	}
	return profileFromModel(model), nil
}

func (s *Store) CreateProfile(ctx context.Context, profile domain.ArtistProfile) error {
	err := s.db.WithContext(ctx).Create(profileToModel(profile)).Error
	return translate(err, "artist profile")
}

func (s *Store) UpdateProfile(ctx context.Context, profile domain.ArtistProfile) error {
	model := profileToModel(profile)
	result := s.db.WithContext(ctx).Model(&models.ArtistProfile{}).
		Where("key = ?", model.Key).
		Updates(map[string]any{
			"name":           model.Name,
			"bio":            model.Bio,
			"links":          model.Links,
			"follower_count": model.FollowerCount,
			"total_tips":     model.TotalTips,
			"work_count":     model.WorkCount,
		})
	if result.Error != nil {
		return translate(result.Error, "artist profile")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "artist profile"}
	}
	return nil
}

func (s *Store) DeleteProfile(ctx context.Context, owner string) error {
	err := s.db.WithContext(ctx).
		Delete(&models.ArtistProfile{}, "key = ?", atelier.ProfileKey(owner)).Error
	return translate(err, "artist profile")
}

func (s *Store) GetVault(ctx context.Context, artist string) (domain.TipsVault, error) {
	var model models.TipsVault
	err := s.db.WithContext(ctx).Where("artist = ?", artist).Take(&model).Error
	if err != nil {
		return domain.TipsVault{}, translate(err, "tips vault")
	}
	return domain.TipsVault{Artist: model.Artist, Balance: model.Balance}, nil
}

func (s *Store) CreateVault(ctx context.Context, vault domain.TipsVault) error {
	err := s.db.WithContext(ctx).Create(&models.TipsVault{
		Key:     atelier.VaultKey(vault.Artist),
		Artist:  vault.Artist,
		Balance: vault.Balance,
	}).Error
	return translate(err, "tips vault")
}

func (s *Store) UpdateVault(ctx context.Context, vault domain.TipsVault) error {
	result := s.db.WithContext(ctx).Model(&models.TipsVault{}).
		Where("key = ?", atelier.VaultKey(vault.Artist)).
		Update("balance", vault.Balance)
	if result.Error != nil {
		return translate(result.Error, "tips vault")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "tips vault"}
	}
	return nil
}

func (s *Store) DeleteVault(ctx context.Context, artist string) error {
	err := s.db.WithContext(ctx).
		Delete(&models.TipsVault{}, "key = ?", atelier.VaultKey(artist)).Error
	return translate(err, "tips vault")
}

func (s *Store) GetFollower(ctx context.Context, artist string, follower string) (domain.FollowerAccount, error) {
	var model models.FollowerAccount
	err := s.db.WithContext(ctx).
		Where("artist = ? AND follower = ?", artist, follower).
		Take(&model).Error
	if err != nil {
		return domain.FollowerAccount{}, translate(err, "follower account")
	}
	return domain.FollowerAccount{
		Artist:      model.Artist,
		Follower:    model.Follower,
		IsFollowing: model.IsFollowing,
	}, nil
}

func (s *Store) CreateFollower(ctx context.Context, account domain.FollowerAccount) error {
	err := s.db.WithContext(ctx).Create(&models.FollowerAccount{
		Key:         atelier.FollowerKey(account.Artist, account.Follower),
		Artist:      account.Artist,
		Follower:    account.Follower,
		IsFollowing: account.IsFollowing,
	}).Error
	return translate(err, "follower account")
}

func (s *Store) UpdateFollower(ctx context.Context, account domain.FollowerAccount) error {
	result := s.db.WithContext(ctx).Model(&models.FollowerAccount{}).
		Where("key = ?", atelier.FollowerKey(account.Artist, account.Follower)).
		Update("is_following", account.IsFollowing)
	if result.Error != nil {
		return translate(result.Error, "follower account")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "follower account"}
	}
	return nil
}

func (s *Store) GetWork(ctx context.Context, key string) (domain.Work, error) {
	var model models.Work
	err := s.db.WithContext(ctx).Where("key = ?", key).Take(&model).Error
	if err != nil {
		return domain.Work{}, translate(err, "work")
	}
	return workFromModel(model), nil
}

func (s *Store) CreateWork(ctx context.Context, work domain.Work) error {
	err := s.db.WithContext(ctx).Create(&models.Work{
		Key:          atelier.WorkKey(work.Artist, work.Index),
		Artist:       work.Artist,
		Seq:          work.Index,
		Title:        work.Title,
		Description:  work.Description,
		ContentURL:   work.ContentURL,
		Likes:        work.Likes,
		CommentCount: work.CommentCount,
		PostedAt:     work.PostedAt,
	}).Error
	return translate(err, "work")
}

func (s *Store) UpdateWork(ctx context.Context, work domain.Work) error {
	result := s.db.WithContext(ctx).Model(&models.Work{}).
		Where("key = ?", atelier.WorkKey(work.Artist, work.Index)).
		Updates(map[string]any{
			"likes":         work.Likes,
			"comment_count": work.CommentCount,
		})
	if result.Error != nil {
		return translate(result.Error, "work")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "work"}
	}
	return nil
}

func (s *Store) RecentWorks(ctx context.Context, artist string, limit int) ([]domain.Work, error) {
	query := s.db.WithContext(ctx).Model(&models.Work{}).
		Order("posted_at DESC").
		Limit(limit)
	if artist != "" {
		query = query.Where("artist = ?", artist)
	}

	var rows []models.Work
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	works := make([]domain.Work, 0, len(rows))
	for _, row := range rows {
		works = append(works, workFromModel(row))
	}
	return works, nil
}

func (s *Store) GetInteraction(ctx context.Context, workKey string, actor string) (domain.Interaction, error) {
	var model models.Interaction
	err := s.db.WithContext(ctx).
		Where("work_key = ? AND actor = ?", workKey, actor).
		Take(&model).Error
	if err != nil {
		return domain.Interaction{}, translate(err, "interaction")
	}
	return interactionFromModel(model)
}

func (s *Store) CreateInteraction(ctx context.Context, interaction domain.Interaction) error {
	err := s.db.WithContext(ctx).Create(&models.Interaction{
		Key:       atelier.InteractionKey(interaction.WorkKey, interaction.Actor),
		WorkKey:   interaction.WorkKey,
		Actor:     interaction.Actor,
		Kind:      string(interaction.Kind),
		Comment:   interaction.Comment,
		CreatedAt: interaction.CreatedAt,
	}).Error
	return translate(err, "interaction")
}

func (s *Store) GetCollab(ctx context.Context, artist string, requester string) (domain.CollabRequest, error) {
	var model models.CollabRequest
	err := s.db.WithContext(ctx).
		Where("artist = ? AND requester = ?", artist, requester).
		Take(&model).Error
	if err != nil {
		return domain.CollabRequest{}, translate(err, "collab request")
	}
	return collabFromModel(model)
}

func (s *Store) CreateCollab(ctx context.Context, request domain.CollabRequest) error {
	err := s.db.WithContext(ctx).Create(&models.CollabRequest{
		Key:       atelier.CollabKey(request.Artist, request.Requester),
		Artist:    request.Artist,
		Requester: request.Requester,
		Message:   request.Message,
		Status:    string(request.Status),
		CreatedAt: request.CreatedAt,
	}).Error
	return translate(err, "collab request")
}

func (s *Store) UpdateCollab(ctx context.Context, request domain.CollabRequest) error {
	result := s.db.WithContext(ctx).Model(&models.CollabRequest{}).
		Where("key = ?", atelier.CollabKey(request.Artist, request.Requester)).
		Update("status", string(request.Status))
	if result.Error != nil {
		return translate(result.Error, "collab request")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "collab request"}
	}
	return nil
}

// Resolve looks a record up by its at:// key. The tag picks the table.
func (s *Store) Resolve(ctx context.Context, key string) (any, error) {
	tag, _, err := atelier.ParseRecordURI(key)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)

	switch tag {
	case atelier.TagArtistProfile:
		var model models.ArtistProfile
		if err := db.Where("key = ?", key).Take(&model).Error; err != nil {
			return nil, translate(err, "artist profile")
		}
		return profileFromModel(model), nil
	case atelier.TagTipsVault:
		var model models.TipsVault
		if err := db.Where("key = ?", key).Take(&model).Error; err != nil {
			return nil, translate(err, "tips vault")
		}
		return domain.TipsVault{Artist: model.Artist, Balance: model.Balance}, nil
	case atelier.TagFollower:
		var model models.FollowerAccount
		if err := db.Where("key = ?", key).Take(&model).Error; err != nil {
			return nil, translate(err, "follower account")
		}
		return domain.FollowerAccount{
			Artist:      model.Artist,
			Follower:    model.Follower,
			IsFollowing: model.IsFollowing,
		}, nil
	case atelier.TagWork:
		var model models.Work
		if err := db.Where("key = ?", key).Take(&model).Error; err != nil {
			return nil, translate(err, "work")
		}
		return workFromModel(model), nil
	case atelier.TagInteraction:
		var model models.Interaction
		if err := db.Where("key = ?", key).Take(&model).Error; err != nil {
			return nil, translate(err, "interaction")
		}
		return interactionFromModel(model)
	case atelier.TagCollab:
		var model models.CollabRequest
		if err := db.Where("key = ?", key).Take(&model).Error; err != nil {
			return nil, translate(err, "collab request")
		}
		return collabFromModel(model)
	default:
		return nil, domain.NotFoundError{Resource: "record"}
	}
}

func (s *Store) AppendCommit(ctx context.Context, id string, document string, proof string) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&models.CommitLog{
		ID:       id,
		Document: document,
		Proof:    proof,
	}).Error
}

func profileToModel(profile domain.ArtistProfile) *models.ArtistProfile {
	return &models.ArtistProfile{
		Key:           atelier.ProfileKey(profile.Owner),
		Owner:         profile.Owner,
		Name:          profile.Name,
		Bio:           profile.Bio,
		Links:         pq.StringArray(profile.Links),
		FollowerCount: profile.FollowerCount,
		TotalTips:     profile.TotalTips,
		WorkCount:     profile.WorkCount,
	}
}

func profileFromModel(model models.ArtistProfile) domain.ArtistProfile {
	return domain.ArtistProfile{
		Owner:         model.Owner,
		Name:          model.Name,
		Bio:           model.Bio,
		Links:         []string(model.Links),
		FollowerCount: model.FollowerCount,
		TotalTips:     model.TotalTips,
		WorkCount:     model.WorkCount,
	}
}

func workFromModel(model models.Work) domain.Work {
	return domain.Work{
		Artist:       model.Artist,
		Index:        model.Seq,
		Title:        model.Title,
		Description:  model.Description,
		ContentURL:   model.ContentURL,
		Likes:        model.Likes,
		CommentCount: model.CommentCount,
		PostedAt:     model.PostedAt,
	}
}

func interactionFromModel(model models.Interaction) (domain.Interaction, error) {
	kind, err := domain.ParseInteractionKind(model.Kind)
	if err != nil {
		return domain.Interaction{}, err
	}
	return domain.Interaction{
		WorkKey:   model.WorkKey,
		Actor:     model.Actor,
		Kind:      kind,
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
	}, nil
}

func collabFromModel(model models.CollabRequest) (domain.CollabRequest, error) {
	status, err := domain.ParseCollabStatus(model.Status)
	if err != nil {
		return domain.CollabRequest{}, err
	}
	return domain.CollabRequest{
		Artist:    model.Artist,
		Requester: model.Requester,
		Message:   model.Message,
		Status:    status,
		CreatedAt: model.CreatedAt,
	}, nil
}
