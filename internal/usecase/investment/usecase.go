package investment

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"hse-backend/internal/domain/investment"
	domainInvestor "hse-backend/internal/domain/investor"
	domainProperty "hse-backend/internal/domain/property"
	"hse-backend/internal/domain/uow"
	"hse-backend/pkg/id"
)

type Usecase struct {
	uow         uow.UnitOfWork
	properties  domainProperty.Repository
	investors   domainInvestor.Repository
	investments investment.Repository
	log         *logrus.Logger
}

// NewUsecase: repos are used for read paths; all mutations go through the UoW.
func NewUsecase(u uow.UnitOfWork, properties domainProperty.Repository, investors domainInvestor.Repository, investments investment.Repository, log *logrus.Logger) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Usecase{uow: u, properties: properties, investors: investors, investments: investments, log: log}
}

// Invest runs the allocation engine inside a serialized transaction. The UoW
// locks the property and investor rows before the closure runs, so two
// concurrent bids against the same property see each other's committed state.
// Any error aborts the whole transaction; no partial mutation survives.
func (u *Usecase) Invest(ctx context.Context, in InvestInput) (*InvestmentDTO, error) {
	var dto *InvestmentDTO

	err := u.uow.WithinInvestmentTx(ctx, in.PropertyID, in.InvestorID,
		func(r uow.Repos, p *domainProperty.Property, inv *domainInvestor.Investor) error {
			alloc, err := Allocate(p, inv, in.Amount)
			if err != nil {
				return err
			}

			rec := alloc.Apply(p, inv)
			rec.InvestmentID = id.NewID32()

			if err := r.Properties.Save(ctx, p); err != nil {
				return err
			}
			if err := r.Investors.Save(ctx, inv); err != nil {
				return err
			}
			if err := r.Investments.Create(ctx, rec); err != nil {
				return err
			}

			dto = &InvestmentDTO{
				InvestmentID: rec.InvestmentID,
				PropertyID:   p.PropertyID,
				Amount:       rec.Amount,
				Tokens:       rec.Tokens,
				Percent:      rec.Percent,
				TokenPrice:   rec.TokenPrice,
				CreatedAt:    rec.CreatedAt,
			}
			return nil
		})

	if err != nil {
		return nil, u.mapInvestError(in, err)
	}
	return dto, nil
}

// mapInvestError folds store-level failures into the rejection taxonomy.
// Rejections pass through untouched.
func (u *Usecase) mapInvestError(in InvestInput, err error) error {
	if _, ok := AsRejection(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rejectWrap(KindNotFound, "invalid property or investor ID", err)
	}
	if isLockConflict(err) {
		u.log.WithFields(logrus.Fields{
			"property_id": in.PropertyID,
			"investor_id": in.InvestorID,
		}).Warn("investment transaction conflict")
		return rejectWrap(KindTxConflict, "concurrent investment, retry with current state", err)
	}
	u.log.WithError(err).Error("investment commit failed")
	return rejectWrap(KindStoreUnavailable, "investment could not be committed", err)
}

// isLockConflict recognizes MySQL deadlock (1213) and lock-wait timeout
// (1205), the two ways a serialized commit loses to a concurrent one.
func isLockConflict(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1213 || me.Number == 1205
	}
	return false
}

// PropertyInvestors returns the distinct investors holding a stake in the
// property. Join rows repeat per purchase; identity is deduped by investor
// id while amounts and tokens are summed per investor.
func (u *Usecase) PropertyInvestors(ctx context.Context, propertyID string) ([]InvestorSummary, error) {
	p, err := u.properties.GetByPropertyID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainProperty.ErrNotFound
		}
		return nil, err
	}

	rows, err := u.investments.ListByPropertyID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	index := make(map[uint64]int, len(rows))
	out := make([]InvestorSummary, 0, len(rows))
	for _, pi := range rows {
		if pi.Investor == nil {
			continue
		}
		i, seen := index[pi.InvestorID]
		if !seen {
			index[pi.InvestorID] = len(out)
			out = append(out, InvestorSummary{
				InvestorID:   pi.Investor.InvestorID,
				FullName:     pi.Investor.FullName,
				EmailID:      pi.Investor.EmailID,
				MobileNumber: pi.Investor.MobileNumber,
			})
			i = len(out) - 1
		}
		out[i].TotalAmount += pi.Amount
		out[i].TotalTokens += pi.Tokens
	}
	return out, nil
}

// Portfolio returns the investor's investments with their property data.
func (u *Usecase) Portfolio(ctx context.Context, investorID string) ([]Holding, error) {
	inv, err := u.investors.GetByInvestorID(ctx, investorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainInvestor.ErrNotFound
		}
		return nil, err
	}

	rows, err := u.investments.ListByInvestorID(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	out := make([]Holding, 0, len(rows))
	for _, pi := range rows {
		h := Holding{
			InvestmentID: pi.InvestmentID,
			Amount:       pi.Amount,
			Tokens:       pi.Tokens,
			Percent:      pi.Percent,
			TokenPrice:   pi.TokenPrice,
			CreatedAt:    pi.CreatedAt,
		}
		if pi.Property != nil {
			h.PropertyID = pi.Property.PropertyID
			h.PropertyName = pi.Property.PropertyName
		}
		out = append(out, h)
	}
	return out, nil
}
