package services

import (
	"errors"
	"testing"

	"smart_canteen/internal/models"
)

func TestAddCanteen_OnePerOwner(t *testing.T) {
	repo := newFakeCanteenRepo()
	service := NewCanteenService(repo)

	canteen, err := service.AddCanteen(10, "Snack Bar", "Main Block", "08:00", "20:00", "")
	if err != nil {
		t.Fatalf("AddCanteen: %v", err)
	}
	if canteen.Image != models.DefaultCanteenImage {
		t.Errorf("empty image not defaulted: %q", canteen.Image)
	}

	if _, err := service.AddCanteen(10, "Second Stall", "Annex", "09:00", "18:00", ""); !errors.Is(err, ErrCanteenExists) {
		t.Errorf("second canteen for same owner: got %v, want ErrCanteenExists", err)
	}

	if _, err := service.AddCanteen(11, "Juice Corner", "Annex", "09:00", "18:00", "juice.jpg"); err != nil {
		t.Errorf("different owner blocked: %v", err)
	}
}

func TestGetMyCanteen(t *testing.T) {
	repo := newFakeCanteenRepo()
	service := NewCanteenService(repo)
	repo.add(10, "Snack Bar")

	canteen, err := service.GetMyCanteen(10)
	if err != nil {
		t.Fatalf("GetMyCanteen: %v", err)
	}
	if canteen.Name != "Snack Bar" {
		t.Errorf("wrong canteen: %q", canteen.Name)
	}

	if _, err := service.GetMyCanteen(99); !errors.Is(err, ErrCanteenNotFound) {
		t.Errorf("ownerless lookup: got %v, want ErrCanteenNotFound", err)
	}
}
