package mysql

import (
	"context"
	"testing"

	bookmarkDomain "hse-backend/internal/domain/bookmark"
	investmentDomain "hse-backend/internal/domain/investment"
	"hse-backend/pkg/id"
)

func TestInvestmentRepository_CreateAndListByProperty(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	props := NewPropertyRepository(db)
	invs := NewInvestorRepository(db)
	repo := NewInvestmentRepository(db)

	p := makeTestProperty(id.NewID32())
	if err := props.Create(ctx, p); err != nil {
		t.Fatalf("create property: %v", err)
	}
	alice := makeTestInvestor(id.NewID32(), 1_000)
	bob := makeTestInvestor(id.NewID32(), 1_000)
	if err := invs.Create(ctx, alice); err != nil {
		t.Fatalf("create alice: %v", err)
	}
	if err := invs.Create(ctx, bob); err != nil {
		t.Fatalf("create bob: %v", err)
	}

	// Alice invests twice, Bob once; pairs may repeat.
	for _, rec := range []*investmentDomain.PropertyInvestment{
		{InvestmentID: id.NewID32(), PropertyID: p.ID, InvestorID: alice.ID, Amount: 100, Tokens: 1, Percent: 0.1, TokenPrice: 100},
		{InvestmentID: id.NewID32(), PropertyID: p.ID, InvestorID: bob.ID, Amount: 200, Tokens: 2, Percent: 0.2, TokenPrice: 100},
		{InvestmentID: id.NewID32(), PropertyID: p.ID, InvestorID: alice.ID, Amount: 300, Tokens: 3, Percent: 0.3, TokenPrice: 100},
	} {
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	rows, err := repo.ListByPropertyID(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListByPropertyID: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for _, row := range rows {
		if row.Investor == nil {
			t.Fatalf("Investor not preloaded on row %s", row.InvestmentID)
		}
	}
	if rows[0].Investor.InvestorID != alice.InvestorID {
		t.Errorf("first row investor = %s, want alice", rows[0].Investor.InvestorID)
	}
}

func TestInvestmentRepository_ListByInvestorPreloadsProperty(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	props := NewPropertyRepository(db)
	invstors := NewInvestorRepository(db)
	repo := NewInvestmentRepository(db)

	p := makeTestProperty(id.NewID32())
	if err := props.Create(ctx, p); err != nil {
		t.Fatalf("create property: %v", err)
	}
	inv := makeTestInvestor(id.NewID32(), 1_000)
	if err := invstors.Create(ctx, inv); err != nil {
		t.Fatalf("create investor: %v", err)
	}

	rec := &investmentDomain.PropertyInvestment{
		InvestmentID: id.NewID32(),
		PropertyID:   p.ID, InvestorID: inv.ID,
		Amount: 500, Tokens: 5, Percent: 0.5, TokenPrice: 100,
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.ListByInvestorID(ctx, inv.ID)
	if err != nil {
		t.Fatalf("ListByInvestorID: %v", err)
	}
	if len(rows) != 1 || rows[0].Property == nil {
		t.Fatalf("rows = %+v, want 1 row with Property preloaded", rows)
	}
	if rows[0].Property.PropertyName != "Dockside Flats" {
		t.Errorf("property name = %q", rows[0].Property.PropertyName)
	}
}

func TestBookmarkRepository_UniquePerPair(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	props := NewPropertyRepository(db)
	invstors := NewInvestorRepository(db)
	repo := NewBookmarkRepository(db)

	p := makeTestProperty(id.NewID32())
	if err := props.Create(ctx, p); err != nil {
		t.Fatalf("create property: %v", err)
	}
	inv := makeTestInvestor(id.NewID32(), 0)
	if err := invstors.Create(ctx, inv); err != nil {
		t.Fatalf("create investor: %v", err)
	}

	if err := repo.Create(ctx, &bookmarkDomain.Bookmark{InvestorID: inv.ID, PropertyID: p.ID}); err != nil {
		t.Fatalf("first bookmark: %v", err)
	}
	if err := repo.Create(ctx, &bookmarkDomain.Bookmark{InvestorID: inv.ID, PropertyID: p.ID}); err == nil {
		t.Fatal("duplicate bookmark should violate the unique pair index")
	}

	rows, err := repo.ListByInvestorID(ctx, inv.ID)
	if err != nil {
		t.Fatalf("ListByInvestorID: %v", err)
	}
	if len(rows) != 1 || rows[0].Property == nil {
		t.Fatalf("rows = %+v", rows)
	}
}
