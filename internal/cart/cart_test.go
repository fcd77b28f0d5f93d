package cart

import "testing"

func TestAddItem_SameIDIncrementsQuantity(t *testing.T) {
	c := Cart{}
	c.AddItem(Item{ID: "p1", Name: "Oud", Price: 49.99, Quantity: 2})
	c.AddItem(Item{ID: "p1", Name: "Oud", Price: 49.99, Quantity: 3})

	if len(c.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", c.Items[0].Quantity)
	}
}

func TestAddItem_PreservesInsertionOrder(t *testing.T) {
	c := Cart{}
	c.AddItem(Item{ID: "p2", Name: "Amber Musk", Price: 39.99, Quantity: 1})
	c.AddItem(Item{ID: "p1", Name: "Oud", Price: 49.99, Quantity: 1})
	c.AddItem(Item{ID: "p2", Quantity: 1})

	if c.Items[0].ID != "p2" || c.Items[1].ID != "p1" {
		t.Fatalf("unexpected order: %+v", c.Items)
	}
}

func TestUpdateQuantity(t *testing.T) {
	c := Cart{}
	c.AddItem(Item{ID: "p1", Name: "Oud", Price: 49.99, Quantity: 2})

	c.UpdateQuantity("p1", 7)
	if c.Items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", c.Items[0].Quantity)
	}

	// zero removes the entry instead of keeping it around
	c.UpdateQuantity("p1", 0)
	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(c.Items))
	}

	// absent id is a no-op
	c.UpdateQuantity("missing", 3)
	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(c.Items))
	}
}

func TestRemoveItem_AbsentIDIsNoOp(t *testing.T) {
	c := Cart{}
	c.AddItem(Item{ID: "p1", Quantity: 1})
	c.RemoveItem("p2")
	if len(c.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(c.Items))
	}
	c.RemoveItem("p1")
	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(c.Items))
	}
}

func TestClear(t *testing.T) {
	c := Cart{}
	c.AddItem(Item{ID: "p1", Price: 49.99, Quantity: 2})
	c.AddItem(Item{ID: "p2", Price: 39.99, Quantity: 1})

	c.Clear()
	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(c.Items))
	}
	if c.TotalAmount() != 0 {
		t.Fatalf("expected total 0, got %f", c.TotalAmount())
	}
}

func TestDerivedValues(t *testing.T) {
	c := Cart{}
	c.AddItem(Item{ID: "p1", Price: 49.99, Quantity: 2})
	c.AddItem(Item{ID: "p2", Price: 39.99, Quantity: 3})

	if c.ItemCount() != 5 {
		t.Fatalf("expected item count 5, got %d", c.ItemCount())
	}
	if got := c.DisplayTotal(); got != 219.95 {
		t.Fatalf("expected display total 219.95, got %v", got)
	}
}

func TestVisibilityFlag(t *testing.T) {
	c := Cart{}
	c.Toggle()
	if !c.Open {
		t.Fatal("expected cart open after toggle")
	}
	c.Toggle()
	if c.Open {
		t.Fatal("expected cart closed after second toggle")
	}
	c.OpenDrawer()
	c.CloseDrawer()
	if c.Open {
		t.Fatal("expected cart closed")
	}
}
