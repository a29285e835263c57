// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

func newTestUserRepo(t *testing.T) UserRepository {
	return NewUserRepository(newTestBlob(t), logger.Nop())
}

func TestCreateUser_Success(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	user := models.User{
		ID:           "u1",
		Email:        "john@example.com",
		Name:         "John",
		PasswordHash: "hash",
		Plan:         models.PlanFree,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != user.Email || got.PasswordHash != "hash" {
		t.Errorf("unexpected user: %+v", got)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	if err := repo.CreateUser(ctx, models.User{ID: "u1", Email: "john@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := repo.CreateUser(ctx, models.User{ID: "u2", Email: "JOHN@example.com"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestFindUserByEmail_CaseInsensitive(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	if err := repo.CreateUser(ctx, models.User{ID: "u1", Email: "john@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.FindUserByEmail(ctx, "John@Example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "u1" {
		t.Errorf("expected u1, got %s", got.ID)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo := newTestUserRepo(t)

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateUser(t *testing.T) {
	repo := newTestUserRepo(t)
	ctx := context.Background()

	if err := repo.UpdateUser(ctx, models.User{ID: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing user, got %v", err)
	}

	if err := repo.CreateUser(ctx, models.User{ID: "u1", Email: "a@b.c", Plan: models.PlanFree}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.UpdateUser(ctx, models.User{ID: "u1", Email: "a@b.c", Plan: models.PlanPro}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Plan != models.PlanPro {
		t.Errorf("expected plan pro, got %s", got.Plan)
	}
}
