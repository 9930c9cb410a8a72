package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/hmfarooq/storefront-api/apperr"
	"golang.org/x/sync/errgroup"
)

func TestAddItemAccumulates(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(db, testTimeout)
	ctx := context.Background()

	userID := uuid.NewString()
	p := seedProduct(t, db, "Wireless Mouse", 10)

	if _, err := svc.AddItem(ctx, userID, p.ID, 1); err != nil {
		t.Fatalf("first AddItem failed: %v", err)
	}
	cart, err := svc.AddItem(ctx, userID, p.ID, 2)
	if err != nil {
		t.Fatalf("second AddItem failed: %v", err)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", cart.Items[0].Quantity)
	}
	if cart.Total != 30 {
		t.Fatalf("expected total 30, got %v", cart.Total)
	}
}

func TestAddItemSnapshotPrice(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(db, testTimeout)
	ctx := context.Background()

	userID := uuid.NewString()
	p := seedProduct(t, db, "Desk Lamp", 25.5)

	if _, err := svc.AddItem(ctx, userID, p.ID, 2); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	// A later catalog price change must not reprice the cart.
	if err := db.Model(&p).Update("price", 99).Error; err != nil {
		t.Fatalf("update product price: %v", err)
	}

	cart, err := svc.AddItem(ctx, userID, p.ID, 1)
	if err != nil {
		t.Fatalf("AddItem after price change failed: %v", err)
	}
	if cart.Items[0].Price != 25.5 {
		t.Fatalf("expected snapshot price 25.5, got %v", cart.Items[0].Price)
	}
	if cart.Total != 76.5 {
		t.Fatalf("expected total 76.5, got %v", cart.Total)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(db, testTimeout)

	_, err := svc.AddItem(context.Background(), uuid.NewString(), uuid.NewString(), 1)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(db, testTimeout)
	p := seedProduct(t, db, "Phone Case", 3.25)

	for _, quantity := range []int{0, -2} {
		_, err := svc.AddItem(context.Background(), uuid.NewString(), p.ID, quantity)
		if apperr.KindOf(err) != apperr.InvalidInput {
			t.Fatalf("quantity %d: expected InvalidInput, got %v", quantity, err)
		}
	}
}

func TestSetItemQuantityAbsolute(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(db, testTimeout)
	ctx := context.Background()

	userID := uuid.NewString()
	p := seedProduct(t, db, "Yoga Mat", 10)

	if _, err := svc.AddItem(ctx, userID, p.ID, 5); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	// Absolute set, not a delta.
	cart, err := svc.SetItemQuantity(ctx, userID, p.ID, 2)
	if err != nil {
		t.Fatalf("SetItemQuantity failed: %v", err)
	}
	if cart.Items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
	if cart.Total != 20 {
		t.Fatalf("expected total 20, got %v", cart.Total)
	}
}

func TestSetItemQuantityZeroRemoves(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(db, testTimeout)
	ctx := context.Background()

	userID := uuid.NewString()
	p := seedProduct(t, db, "Hoodie", 12.5)

	for _, quantity := range []int{0, -1} {
		if _, err := svc.AddItem(ctx, userID, p.ID, 3); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}

		cart, err := svc.SetItemQuantity(ctx, userID, p.ID, quantity)
		if err != nil {
			t.Fatalf("SetItemQuantity(%d) failed: %v", quantity, err)
		}
		if len(cart.Items) != 0 {
			t.Fatalf("expected item removed for quantity %d, got %d items", quantity, len(cart.Items))
		}
		if cart.Total != 0 {
			t.Fatalf("expected total 0, got %v", cart.Total)
		}
	}
}

func TestSetItemQuantityMissing(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(db, testTimeout)
	ctx := context.Background()

	userID := uuid.NewString()
	p := seedProduct(t, db, "Sunglasses", 8)

	// No cart at all.
	_, err := svc.SetItemQuantity(ctx, userID, p.ID, 1)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("expected NotFound without a cart, got %v", err)
	}

	// Cart exists, item does not.
	if _, err := svc.AddItem(ctx, userID, p.ID, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	_, err = svc.SetItemQuantity(ctx, userID, uuid.NewString(), 1)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("expected NotFound for missing item, got %v", err)
	}
}

func TestRemoveItemNoop(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(db, testTimeout)
	ctx := context.Background()

	userID := uuid.NewString()
	p := seedProduct(t, db, "Coffee Maker", 40)

	before, err := svc.AddItem(ctx, userID, p.ID, 2)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	// Removing a product that was never added leaves the cart unchanged.
	after, err := svc.RemoveItem(ctx, userID, uuid.NewString())
	if err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	if len(after.Items) != len(before.Items) || after.Total != before.Total {
		t.Fatalf("expected unchanged cart, got %+v", after)
	}
}

func TestRemoveItemWithoutCart(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(db, testTimeout)

	_, err := svc.RemoveItem(context.Background(), uuid.NewString(), uuid.NewString())
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestRemoveItemRecomputesTotal(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(db, testTimeout)
	ctx := context.Background()

	userID := uuid.NewString()
	p1 := seedProduct(t, db, "Keyboard", 30)
	p2 := seedProduct(t, db, "Speaker", 20)

	if _, err := svc.AddItem(ctx, userID, p1.ID, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := svc.AddItem(ctx, userID, p2.ID, 2); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	cart, err := svc.RemoveItem(ctx, userID, p1.ID)
	if err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ProductID != p2.ID {
		t.Fatalf("expected only %s left, got %+v", p2.ID, cart.Items)
	}
	if cart.Total != 40 {
		t.Fatalf("expected total 40, got %v", cart.Total)
	}
}

func TestGetCartCanonicalEmpty(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(db, testTimeout)
	ctx := context.Background()

	userID := uuid.NewString()

	first, err := svc.GetCart(ctx, userID)
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if first.Items == nil || len(first.Items) != 0 || first.Total != 0 {
		t.Fatalf("expected canonical empty cart, got %+v", first)
	}

	// Reading is idempotent and never creates state.
	second, err := svc.GetCart(ctx, userID)
	if err != nil {
		t.Fatalf("second GetCart failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical reads, got %+v then %+v", first, second)
	}

	var count int64
	if err := db.Table("carts").Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count carts: %v", err)
	}
	if count != 0 {
		t.Fatalf("GetCart must not create a cart, found %d", count)
	}
}

func TestConcurrentAddItemMerges(t *testing.T) {
	db := testDB(t)
	svc := NewCartService(db, testTimeout)
	ctx := context.Background()

	userID := uuid.NewString()
	p := seedProduct(t, db, "Running Shoes", 10)

	const n = 30
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := svc.AddItem(gctx, userID, p.ID, 1)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddItem failed: %v", err)
	}

	cart, err := svc.GetCart(ctx, userID)
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected a single merged line item, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != n {
		t.Fatalf("expected quantity %d, got %d", n, cart.Items[0].Quantity)
	}
	if cart.Total != float64(n)*10 {
		t.Fatalf("expected total %v, got %v", float64(n)*10, cart.Total)
	}
}
