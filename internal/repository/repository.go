package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"chainflow/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrFlowNotFound error = errors.New("flow not found")

type FlowRepository struct {
	db Storage
}

func NewFlowRepository(db Storage) *FlowRepository {
	return &FlowRepository{
		db: db,
	}
}

// MigrateAndSeed creates the tables and inserts users when none exist yet.
func (r *FlowRepository) MigrateAndSeed(ctx context.Context, users []User) error {
	err := r.db.MigrateModels(&FlowRecord{}, &User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	if len(users) == 0 {
		return nil
	}

	err = r.db.Seed(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *FlowRepository) SaveFlow(ctx context.Context, record FlowRecord) error {
	err := r.db.Upsert(ctx, &record)
	if err != nil {
		return fmt.Errorf("save flow %s: %w", record.ID, err)
	}

	return nil
}

func (r *FlowRepository) GetFlow(ctx context.Context, id string) (FlowRecord, error) {
	var record FlowRecord

	err := r.db.GetOneBy(ctx, "id", id, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return FlowRecord{}, ErrFlowNotFound
		}
		return FlowRecord{}, fmt.Errorf("get flow by id: %w", err)
	}

	return record, nil
}

// GetUserFlows returns the flows started by userID, newest first.
func (r *FlowRepository) GetUserFlows(ctx context.Context, userID string) ([]FlowRecord, error) {
	records := []FlowRecord{}

	err := r.db.GetAllBy(ctx, "user_id", []string{userID}, &records)
	if err != nil {
		return nil, fmt.Errorf("get user flows: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records, nil
}

func (r *FlowRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}
