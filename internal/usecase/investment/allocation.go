package investment

import (
	"fmt"

	"hse-backend/internal/domain/investment"
	"hse-backend/internal/domain/investor"
	"hse-backend/internal/domain/property"
)

// Allocation is the outcome of accepting a bid: the marginal price paid per
// token, the fractional tokens bought, and the share of total supply that
// represents. Apply turns it into the state deltas committed by the
// transaction.
type Allocation struct {
	Amount     float64
	TokenPrice float64
	Tokens     float64
	Percent    float64
}

// Allocate converts a monetary bid into a token allocation against the
// property's remaining pool. It is a pure function over the two snapshots:
// nothing is mutated and no I/O happens here.
//
// The token price is re-derived from whatever value and tokens remain, not
// from the original listing price, so it drifts as the pool is depleted
// unevenly. Precondition checks run in a fixed order and the first failure
// wins.
func Allocate(p *property.Property, inv *investor.Investor, amount float64) (*Allocation, error) {
	if amount <= 0 {
		return nil, reject(KindInvalidAmount, "investment amount must be positive")
	}
	if amount > inv.FundsAvailable {
		return nil, reject(KindInsufficientFunds, "insufficient funds for investment")
	}
	if p.TokenLeft <= 0 {
		return nil, reject(KindSoldOut, "property is already fully invested")
	}

	tokenPrice := p.TotalAssetValueLeft / p.TokenLeft
	tokens := amount / tokenPrice
	percent := tokens / p.TotalToken * 100

	// A bid may clear the zero-tokens gate yet still ask for more tokens
	// than remain (tokenPrice 0 degenerates to +Inf tokens and lands here
	// too). Rejecting keeps TokenLeft from ever going negative.
	if tokens > p.TokenLeft {
		return nil, reject(KindOverallocation,
			fmt.Sprintf("bid requires %.8f tokens but only %.8f remain", tokens, p.TokenLeft))
	}

	return &Allocation{
		Amount:     amount,
		TokenPrice: tokenPrice,
		Tokens:     tokens,
		Percent:    percent,
	}, nil
}

// Apply mutates the two snapshots with the allocation's deltas and returns
// the join record to insert. All three must be persisted in one transaction.
func (a *Allocation) Apply(p *property.Property, inv *investor.Investor) *investment.PropertyInvestment {
	p.TokenLeft -= a.Tokens
	p.TotalAssetValueLeft -= a.Amount
	p.TokensSold += a.Tokens
	p.PercentSold += a.Percent
	p.PercentWeightedInvested += a.Percent
	inv.FundsAvailable -= a.Amount

	return &investment.PropertyInvestment{
		PropertyID: p.ID,
		InvestorID: inv.ID,
		Amount:     a.Amount,
		Tokens:     a.Tokens,
		Percent:    a.Percent,
		TokenPrice: a.TokenPrice,
	}
}
