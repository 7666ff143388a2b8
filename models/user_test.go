package models_test

import (
	"context"
	"testing"

	"github.com/bhoumik1804/krsika-backend/models"
	"github.com/bhoumik1804/krsika-backend/utils"
)

func TestLoginIssuesScopedToken(t *testing.T) {
	ctx := newTestMill(t)
	millId, _ := utils.GetMillIdFromContext(ctx)

	_, err := models.CreateUser(ctx, &models.NewUser{
		Username: "manager1",
		Name:     "Mill Manager",
		Password: "secret123",
		Role:     models.RoleManager,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	token, user, err := models.Login(context.Background(), "manager1", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.MillId != millId {
		t.Fatalf("user mill = %s, want %s", user.MillId, millId)
	}

	parsed, err := utils.JwtValidate(token)
	if err != nil || !parsed.Valid {
		t.Fatalf("JwtValidate: %v", err)
	}
	claims, ok := parsed.Claims.(*utils.JwtCustomClaim)
	if !ok {
		t.Fatalf("claims have wrong type")
	}
	if claims.MillId != millId || claims.Role != models.RoleManager {
		t.Fatalf("claims = %+v, want mill %s role manager", claims, millId)
	}

	if _, _, err := models.Login(context.Background(), "manager1", "wrongpass"); !utils.IsValidationError(err) {
		t.Fatalf("expected validation error for wrong password, got %v", err)
	}
	if _, _, err := models.Login(context.Background(), "nobody", "secret123"); !utils.IsNotFoundError(err) {
		t.Fatalf("expected not-found error for unknown user, got %v", err)
	}
}

func TestUsernameUniqueAcrossMills(t *testing.T) {
	ctxA := newTestMill(t)
	millA, _ := utils.GetMillIdFromContext(ctxA)

	if _, err := models.CreateUser(ctxA, &models.NewUser{
		Username: "gateclerk",
		Name:     "Gate Clerk",
		Password: "secret123",
		Role:     models.RoleOperator,
	}); err != nil {
		t.Fatalf("CreateUser (first mill): %v", err)
	}

	millB, err := models.CreateMill(context.Background(), &models.NewMill{Name: "Other Mill " + t.Name()})
	if err != nil {
		t.Fatalf("CreateMill: %v", err)
	}
	ctxB := utils.SetMillIdInContext(context.Background(), millB.ID)

	// Login carries only a username, so a second mill must not be able to
	// register a name that already exists elsewhere.
	if _, err := models.CreateUser(ctxB, &models.NewUser{
		Username: "gateclerk",
		Password: "otherpass1",
		Role:     models.RoleOperator,
	}); !utils.IsValidationError(err) {
		t.Fatalf("expected validation error for username taken in another mill, got %v", err)
	}

	// The original owner is unaffected.
	_, user, err := models.Login(context.Background(), "gateclerk", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.MillId != millA {
		t.Fatalf("login resolved mill %s, want %s", user.MillId, millA)
	}
}

func TestUpdateMillProfile(t *testing.T) {
	ctx := newTestMill(t)
	millId, _ := utils.GetMillIdFromContext(ctx)

	updated, err := models.UpdateMill(ctx, millId, &models.NewMill{
		Name:      "Renamed Mill",
		OwnerName: "New Owner",
		Address:   "Market Road",
	})
	if err != nil {
		t.Fatalf("UpdateMill: %v", err)
	}
	if updated.Name != "Renamed Mill" || updated.OwnerName != "New Owner" {
		t.Fatalf("update not applied: %+v", updated)
	}

	fetched, err := models.GetMillById(ctx, millId)
	if err != nil {
		t.Fatalf("GetMillById: %v", err)
	}
	if fetched.Name != "Renamed Mill" {
		t.Fatalf("fetched name = %s, want Renamed Mill", fetched.Name)
	}

	if _, err := models.UpdateMill(ctx, "no-such-mill", &models.NewMill{Name: "X"}); !utils.IsNotFoundError(err) {
		t.Fatalf("expected not-found error for unknown mill, got %v", err)
	}

	mills, err := models.ListMills(context.Background())
	if err != nil {
		t.Fatalf("ListMills: %v", err)
	}
	found := false
	for _, m := range mills {
		if m.ID == millId {
			found = true
		}
	}
	if !found {
		t.Fatalf("ListMills did not include mill %s", millId)
	}
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	ctx := newTestMill(t)

	input := &models.NewUser{
		Username: "operator1",
		Password: "secret123",
		Role:     models.RoleOperator,
	}
	if _, err := models.CreateUser(ctx, input); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := models.CreateUser(ctx, input); !utils.IsValidationError(err) {
		t.Fatalf("expected validation error for duplicate username, got %v", err)
	}
}
