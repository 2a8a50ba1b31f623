package repositories

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/publibudget/go-commitment-engine/internal/common/log"
	"github.com/publibudget/go-commitment-engine/internal/models"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func budgetLineComparer() cmp.Option {
	return cmp.Comparer(func(x, y models.BudgetLine) bool {
		return x.ID() == y.ID() &&
			x.MontantModifie().Equal(y.MontantModifie()) &&
			x.MontantReserve().Equal(y.MontantReserve()) &&
			x.MontantEngage().Equal(y.MontantEngage()) &&
			x.MontantPaye().Equal(y.MontantPaye()) &&
			x.Version() == y.Version()
	})
}
