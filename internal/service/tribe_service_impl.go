package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/taskora/internal/contract"
	"github.com/alexanderramin/taskora/internal/db"
	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/alexanderramin/taskora/internal/repository"
	"github.com/google/uuid"
)

// ErrAlreadyMember is returned when a user joins a tribe twice.
var ErrAlreadyMember = errors.New("already a member of this tribe")

type tribeService struct {
	tribes   repository.TribeRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTribeService(tribes repository.TribeRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TribeService {
	return &tribeService{
		tribes:   tribes,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Create inserts the tribe and its owner membership atomically.
func (s *tribeService) Create(ctx context.Context, name, description, ownerID string) (tribe *domain.Tribe, err error) {
	done := observe(ctx, s.observer, "create-tribe", map[string]any{"owner": ownerID})
	defer func() { done(err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, contract.Errorf(contract.ErrInvalidInput, "tribe name is required")
	}
	if ownerID == "" {
		return nil, contract.Errorf(contract.ErrInvalidInput, "tribe owner is required")
	}

	now := time.Now().UTC()
	tribe = &domain.Tribe{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	owner := &domain.TribeMember{
		ID:       uuid.New().String(),
		TribeID:  tribe.ID,
		UserID:   ownerID,
		Role:     domain.RoleOwner,
		JoinedAt: now,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTribeRepo(tx)
		if err := repo.Create(ctx, tribe); err != nil {
			return err
		}
		return repo.AddMember(ctx, owner)
	})
	if err != nil {
		return nil, fmt.Errorf("creating tribe: %w", err)
	}
	return tribe, nil
}

func (s *tribeService) Join(ctx context.Context, tribeID, userID string) (m *domain.TribeMember, err error) {
	done := observe(ctx, s.observer, "join-tribe", map[string]any{"tribe": tribeID, "user": userID})
	defer func() { done(err) }()

	if _, err = s.tribes.GetByID(ctx, tribeID); err != nil {
		return nil, err
	}
	member, err := s.tribes.IsMember(ctx, tribeID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, ErrAlreadyMember
	}

	m = &domain.TribeMember{
		ID:       uuid.New().String(),
		TribeID:  tribeID,
		UserID:   userID,
		Role:     domain.RoleMember,
		JoinedAt: time.Now().UTC(),
	}
	if err = s.tribes.AddMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *tribeService) ListForUser(ctx context.Context, userID string) ([]domain.Tribe, error) {
	return s.tribes.ListForUser(ctx, userID)
}

func (s *tribeService) Members(ctx context.Context, tribeID string) ([]domain.TribeMember, error) {
	if _, err := s.tribes.GetByID(ctx, tribeID); err != nil {
		return nil, err
	}
	return s.tribes.ListMembers(ctx, tribeID)
}
